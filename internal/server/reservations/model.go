package reservations

// Reservation is a room booking owned by exactly one user. Date and Time
// are kept as opaque strings; this service does no slot arithmetic or
// overlap checking.
type Reservation struct {
	ID     string
	UserID string
	Date   string
	Time   string
	Room   string
}
