// Package common defines shared sentinel errors used across the portal
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Session errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Store errors. A corrupt document is recovered by reseeding,
	// never treated as fatal.
	ErrCorruptState = errors.New("corrupt stored state")

	// Upload guard errors.
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedFile = errors.New("unsupported file type")
)
