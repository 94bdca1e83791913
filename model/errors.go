package model

import "errors"

// Error kinds surfaced by the identity service adapter. Callers switch on
// these with errors.Is instead of matching remote error text.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrConflict           = errors.New("already exists")
	ErrRateLimited        = errors.New("rate limited")
)
