// Package httpapi exposes the service over HTTP: a thin adapter that
// decodes requests, calls the users and reservations services, and maps
// domain errors to status codes and generic JSON bodies.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/avergara/reservas/internal/logging"
	"github.com/avergara/reservas/internal/server/reservations"
	"github.com/avergara/reservas/internal/server/users"
)

type userService interface {
	Register(ctx context.Context, email string, password string) (*users.User, error)
	Login(ctx context.Context, email string, password string) (string, error)
}

type reservationService interface {
	Create(ctx context.Context, ownerID string, date, timeOfDay, room string) (*reservations.Reservation, error)
	ListByOwner(ctx context.Context, ownerID string) ([]reservations.Reservation, error)
}

type Server struct {
	address      string
	logger       logging.Logger
	users        userService
	reservations reservationService
	jwtSecret    []byte
}

func NewServer(address string, l logging.Logger, us userService, rs reservationService, secretKey string) *Server {
	return &Server{
		address:      address,
		logger:       l.With("module", "http_server"),
		users:        us,
		reservations: rs,
		jwtSecret:    []byte(secretKey),
	}
}

// Handler builds the route table. Auth endpoints are public; reservation
// endpoints sit behind the token middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/reservas", s.withAuth(s.handleCreateReservation))
	mux.HandleFunc("GET /api/reservas", s.withAuth(s.handleListReservations))

	return s.withRequestLogging(mux)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
