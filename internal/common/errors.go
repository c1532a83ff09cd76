// Package common defines shared sentinel errors used across the layers of
// the reservations service. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorAlreadyExists = errors.New("already exists")

	// Login failure. Deliberately covers both an unknown email and a wrong
	// password so callers cannot enumerate registered accounts.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (missing, invalid or expired token).
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Validation errors (missing required fields).
	ErrorValidation = errors.New("validation error")
)
