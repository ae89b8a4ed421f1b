package auth

import "errors"

var (
	// ErrInvalidCredentials indicates a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput indicates invalid auth input.
	ErrInvalidInput = errors.New("invalid auth input")
)
