package reservations

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, reservation *Reservation) (*Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]Reservation, error)
}
