package common

import "errors"

// Expected business outcomes. Services return these (wrapped or bare)
// so handlers can route with errors.Is; anything else is treated as an
// internal failure and mapped to a 500.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrOTPInvalid        = errors.New("invalid OTP")
	ErrOTPExpired        = errors.New("OTP expired")
)
