// Package shared defines sentinel errors used across Notekeeper layers.
// Callers should use errors.Is to match these values.
package shared

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Validation errors.
	ErrMissingField = errors.New("missing required field")
	ErrInvalidInput = errors.New("invalid input")

	// Auth flow errors.
	ErrInvalidOTP        = errors.New("invalid or expired otp")
	ErrNotVerified       = errors.New("account not verified")
	ErrAlreadyVerified   = errors.New("account already verified")
	ErrIncorrectPassword = errors.New("incorrect password")

	// Token errors. Expired is kept distinct from malformed/bad-signature
	// for diagnostics; both map to 401 at the boundary.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Collaborator / generic flow control.
	ErrEmailDelivery = errors.New("email delivery failed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInternal      = errors.New("internal error")
)
