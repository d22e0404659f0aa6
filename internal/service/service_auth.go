package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/password"
	"github.com/jenca-cloud/authentication/internal/store"
	"github.com/jenca-cloud/authentication/models"
)

// authService is the concrete implementation of AuthService. It delegates
// persistence to a UserStore and password hashing to a bcrypt Hasher; it
// holds no mutable state of its own and is safe for concurrent use.
type authService struct {
	users  store.UserStore
	hasher *password.Hasher

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given user store and
// password hasher.
func NewAuthService(users store.UserStore, hasher *password.Hasher, log *logger.Logger) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		logger: log,
	}
}

// Signup creates a new user account.
//
// The existence pre-check and the create are two separate storage calls with
// no transaction spanning them, so two concurrent signups for the same email
// can both pass the check. The store's own conflict answer on create is the
// authoritative guard and is returned as-is.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if email or password is blank.
//   - store.ErrUserAlreadyExists if the email is taken.
//   - a wrapped storage error if the store is unavailable.
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.users.GetUserByEmail(ctx, creds.Email)
	if err == nil {
		return models.User{}, store.ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", creds.Email).Msg("signup existence check failed")
		return models.User{}, fmt.Errorf("signup existence check failed: %w", err)
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}

	user, err := a.users.CreateUser(ctx, models.User{Email: creds.Email, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation failed")
		return models.User{}, fmt.Errorf("user creation failed: %w", err)
	}

	log.Info().Str("email", user.Email).Msg("user signed up")
	return user, nil
}

// Login authenticates an existing user.
//
// Returns the stored user record or:
//   - ErrInvalidDataProvided if email or password is blank.
//   - store.ErrUserNotFound if no account exists for the email.
//   - ErrWrongPassword if the password does not verify against the hash.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.users.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, user.PasswordHash) {
		log.Warn().Str("email", creds.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	log.Info().Str("email", user.Email).Msg("user logged in")
	return user, nil
}

// Logout validates the authenticated→anonymous transition. The strictness is
// deliberate: logging out twice fails the second time with
// ErrNotAuthenticated rather than succeeding as a no-op.
func (a *authService) Logout(ctx context.Context, sess models.Session) error {
	if !sess.Authenticated {
		return ErrNotAuthenticated
	}

	logger.FromContext(ctx).Info().Str("email", sess.Email).Msg("user logged out")
	return nil
}

// Status reflects the session state without requiring authentication.
func (a *authService) Status(_ context.Context, sess models.Session) models.StatusResponse {
	if !sess.Authenticated {
		return models.StatusResponse{IsAuthenticated: false}
	}

	return models.StatusResponse{IsAuthenticated: true, Email: sess.Email}
}

// DeleteUser removes the account registered under email.
//
// Returns the deleted user record or:
//   - store.ErrUserNotFound if no account exists for the email.
//   - a wrapped storage error if the store is unavailable.
func (a *authService) DeleteUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err = a.users.DeleteUser(ctx, email); err != nil {
		log.Err(err).Str("email", email).Msg("user deletion failed")
		return models.User{}, fmt.Errorf("user deletion failed: %w", err)
	}

	log.Info().Str("email", email).Msg("user deleted")
	return user, nil
}
