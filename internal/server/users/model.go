package users

import "time"

// User is a registered account. PasswordHash holds the bcrypt hash of the
// password and must never be returned to clients.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
