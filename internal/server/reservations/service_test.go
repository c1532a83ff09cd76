package reservations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/avergara/reservas/internal/common"
)

type fakeRepo struct {
	stored []Reservation

	createErr error
	listErr   error
}

func (f *fakeRepo) Create(ctx context.Context, r *Reservation) (*Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.stored = append(f.stored, *r)
	return r, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID string) ([]Reservation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Reservation
	for _, r := range f.stored {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestCreate_OwnerIsAuthenticatedSubject(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	res, err := s.Create(context.Background(), "user-alice", "2026-02-15", "10:00", "Sala A")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if res.UserID != "user-alice" {
		t.Fatalf("owner mismatch: got %q", res.UserID)
	}
	if res.ID == "" {
		t.Fatalf("expected generated id")
	}
	if res.Date != "2026-02-15" || res.Time != "10:00" || res.Room != "Sala A" {
		t.Fatalf("unexpected reservation: %+v", res)
	}
}

func TestCreate_RepoErrorKeepsCause(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("db down")}
	s := NewService(repo)

	_, err := s.Create(context.Background(), "u1", "2026-02-15", "10:00", "Sala A")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
	if !strings.Contains(err.Error(), "db down") {
		t.Fatalf("cause dropped from error: %v", err)
	}
}

func TestListByOwner_FiltersByOwner(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	if _, err := s.Create(context.Background(), "u1", "2026-02-15", "10:00", "Sala A"); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := s.Create(context.Background(), "u2", "2026-02-16", "11:00", "Sala B"); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := s.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 1 || got[0].Room != "Sala A" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestListByOwner_RepoErrorKeepsCause(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("db down")}
	s := NewService(repo)

	_, err := s.ListByOwner(context.Background(), "u1")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
	if !strings.Contains(err.Error(), "db down") {
		t.Fatalf("cause dropped from error: %v", err)
	}
}
