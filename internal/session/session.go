// Package session manages per-client authentication state. A session is an
// explicit value resolved per request from two cookies:
//
//   - "session": a signed token carrying the authenticated email, valid for
//     the configured session duration;
//   - "remember_token": a long-lived, stateless credential derived from the
//     user's identity and current password hash, letting returning clients
//     reauthenticate without a password.
//
// No session state is kept server-side; everything derivable lives in the
// cookies and the user store.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jenca-cloud/authentication/internal/config"
	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/store"
	"github.com/jenca-cloud/authentication/internal/token"
	"github.com/jenca-cloud/authentication/models"
)

// Cookie names presented by clients.
const (
	SessionCookie  = "session"
	RememberCookie = "remember_token"
)

// Manager resolves the current session from request cookies and records
// login/logout transitions by issuing or expiring those cookies. All fields
// are read-only after construction; a Manager is safe for concurrent use.
type Manager struct {
	users   store.UserStore
	deriver *token.Deriver

	signKey     string
	issuer      string
	sessionTTL  time.Duration
	rememberTTL time.Duration

	logger *logger.Logger
}

// NewManager constructs a Manager wired to the given user store and token
// deriver, with signing and lifetime parameters from cfg.
func NewManager(users store.UserStore, deriver *token.Deriver, cfg config.App, log *logger.Logger) *Manager {
	return &Manager{
		users:       users,
		deriver:     deriver,
		signKey:     cfg.SecretKey,
		issuer:      cfg.TokenIssuer,
		sessionTTL:  cfg.SessionDuration,
		rememberTTL: cfg.RememberDuration,
		logger:      log,
	}
}

// Resolve determines who the current user is. It tries the session cookie
// first: a valid signed token resolves to the user it names, provided that
// user still exists. Failing that, it tries the remember token. Any miss
// resolves to the anonymous session; only storage failures return an error.
func (m *Manager) Resolve(r *http.Request) (models.Session, error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		email, parseErr := m.parseSessionToken(c.Value)
		if parseErr != nil {
			log.Debug().Err(parseErr).Msg("session cookie rejected")
		} else {
			user, lookupErr := m.users.GetUserByEmail(ctx, email)
			switch {
			case lookupErr == nil:
				return models.AuthenticatedSession(user.Email), nil
			case errors.Is(lookupErr, store.ErrUserNotFound):
				// User gone since the cookie was issued; fall back to
				// the remember token.
			default:
				return models.Anonymous(), lookupErr
			}
		}
	}

	if c, err := r.Cookie(RememberCookie); err == nil && c.Value != "" {
		user, found, lookupErr := m.resolveRememberToken(ctx, c.Value)
		if lookupErr != nil {
			return models.Anonymous(), lookupErr
		}
		if found {
			return models.AuthenticatedSession(user.Email), nil
		}
	}

	return models.Anonymous(), nil
}

// resolveRememberToken scans all known users, derives each one's token, and
// returns the first whose token matches the presented value under a
// constant-time compare. There is deliberately no token index: the linear
// scan is a documented trade-off, acceptable at this service's user
// population.
func (m *Manager) resolveRememberToken(ctx context.Context, presented string) (models.User, bool, error) {
	users, err := m.users.ListUsers(ctx)
	if err != nil {
		return models.User{}, false, err
	}

	for _, user := range users {
		if token.Equal(m.deriver.Derive(user.Email, user.PasswordHash), presented) {
			return user, true, nil
		}
	}

	return models.User{}, false, nil
}

// Establish records a successful login on the client: it issues the signed
// session cookie and the persistent remember-token cookie for user.
func (m *Manager) Establish(w http.ResponseWriter, user models.User) error {
	sessionToken, err := m.issueSessionToken(user.Email)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.sessionTTL / time.Second),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RememberCookie,
		Value:    m.deriver.Derive(user.Email, user.PasswordHash),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.rememberTTL / time.Second),
	})

	return nil
}

// Clear invalidates the client-held session markers by expiring both cookies.
func (m *Manager) Clear(w http.ResponseWriter) {
	for _, name := range []string{SessionCookie, RememberCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}
