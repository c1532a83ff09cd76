// Package reservations persists room bookings tagged with their owner.
// The owner always comes from the authenticated subject; the service never
// accepts a caller-supplied owner id.
package reservations

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avergara/reservas/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a reservation owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID string, date, timeOfDay, room string) (*Reservation, error) {

	reservation := &Reservation{
		ID:     uuid.NewString(),
		UserID: ownerID,
		Date:   date,
		Time:   timeOfDay,
		Room:   room,
	}

	reservation, err := s.repo.Create(ctx, reservation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return reservation, nil
}

// ListByOwner returns the reservations owned by ownerID.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Reservation, error) {
	result, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return result, nil
}
