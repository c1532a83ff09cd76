// Package db wires the PostgreSQL connection to the repositories and runs
// schema migrations.
package db

import (
	"context"

	"github.com/avergara/reservas/internal/server/reservations"
	"github.com/avergara/reservas/internal/server/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Reservations() reservations.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
