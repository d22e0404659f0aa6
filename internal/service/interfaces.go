package service

import (
	"context"

	"github.com/jenca-cloud/authentication/models"
)

// AuthService holds the authentication use-cases orchestrated by the HTTP
// handlers: account creation, credential verification, the logout state
// machine, status reflection, and account deletion.
type AuthService interface {
	// Signup registers a new account. The plaintext password is hashed
	// before it reaches the user store.
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies credentials and returns the matching user record.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout validates the logout transition for the given session.
	// Logging out while anonymous is an error, not a no-op.
	Logout(ctx context.Context, sess models.Session) error

	// Status reflects the session state. It never fails.
	Status(ctx context.Context, sess models.Session) models.StatusResponse

	// DeleteUser removes the account registered under email.
	DeleteUser(ctx context.Context, email string) (models.User, error)
}
