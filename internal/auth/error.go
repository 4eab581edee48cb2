package auth

import "errors"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPasswordMismatch carries the exact client-facing message.
	ErrPasswordMismatch   = errors.New("Passwords do not match.")
	ErrInvalidAccountType = errors.New("please select a valid account type")
)
