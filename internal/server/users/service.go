// Package users implements the credential store access and the
// register/login protocol: bcrypt hashing on registration, credential
// verification and JWT issuance on login.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avergara/reservas/internal/common"
	"github.com/avergara/reservas/internal/server/auth"
	"github.com/avergara/reservas/internal/server/config"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.TokenSecret),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account for email with a freshly salted password
// hash. A taken email yields common.ErrorAlreadyExists. The pre-check is a
// courtesy for the common case; the storage unique index decides races.
// Infrastructure failures match common.ErrorInternal via errors.Is while
// the wrapped cause stays available for logging.
func (s *Service) Register(ctx context.Context, email string, password string) (*User, error) {

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return user, nil
}

// Login verifies the email/password pair and, on success, returns a signed
// token for the user's id. An unknown email and a wrong password both yield
// common.ErrorInvalidCredentials so callers cannot tell them apart.
func (s *Service) Login(ctx context.Context, email string, password string) (string, error) {

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return token, nil
}
