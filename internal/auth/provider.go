// Package auth defines the authentication-provider contract the directory
// consumes, plus a document-store-backed implementation. The provider owns
// credentials and the current session; profile data belongs to the directory.
package auth

import "context"

// Provider verifies email+password credentials and tracks the session of the
// currently authenticated principal. Implementations return an opaque
// identity string on success; that identity keys the profile document.
type Provider interface {
	// Register creates a credential and returns the new identity.
	// Returns common.ErrEmailInUse when the email is already registered.
	Register(ctx context.Context, email string, password []byte) (string, error)

	// Login verifies credentials, opens a session, and returns the identity.
	// Returns common.ErrInvalidCredentials for a bad email or password,
	// without distinguishing which.
	Login(ctx context.Context, email string, password []byte) (string, error)

	// Logout closes the session and returns the email that was signed in.
	// Returns common.ErrNoSession when nobody is.
	Logout(ctx context.Context) (string, error)

	// SendPasswordReset issues a reset token for the email. It reports
	// success whether or not the email is registered, to avoid revealing
	// account existence.
	SendPasswordReset(ctx context.Context, email string) error

	// DeleteCurrentUser removes the credential of the signed-in principal
	// and closes the session. Returns common.ErrNoSession when nobody is
	// signed in.
	DeleteCurrentUser(ctx context.Context) error

	// DeleteIdentity removes a credential by identity without requiring a
	// session. Used for compensating cleanup when a registration half-fails.
	DeleteIdentity(ctx context.Context, identity string) error

	// CurrentIdentity reports the signed-in principal, if any.
	CurrentIdentity() (identity, email string, ok bool)
}
