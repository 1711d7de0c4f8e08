// Package common defines shared constants and sentinel errors used across
// Framez components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration errors.
	ErrEmptyField     = errors.New("all fields are required")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrDuplicateEmail = errors.New("email already registered")

	// Login errors. A single value covers both "email not found" and
	// "wrong password" so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Profile errors.
	ErrInvalidAvatar = errors.New("invalid avatar image reference")
)
