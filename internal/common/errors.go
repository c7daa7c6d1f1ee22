// Package common defines shared constants and sentinel errors used across
// TrendyShop components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Auth provider errors.
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")

	// Directory errors. ErrProfileMissing means the credential authenticated
	// fine but no profile document exists for it, which callers must report
	// distinctly from ErrInvalidCredentials.
	ErrProfileMissing = errors.New("account has no profile data")

	// Validation.
	ErrValidation = errors.New("validation error")
)
