package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenca-cloud/authentication/internal/config"
	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/store"
	"github.com/jenca-cloud/authentication/internal/token"
	"github.com/jenca-cloud/authentication/models"
)

// fakeUserStore implements store.UserStore for unit tests. Each method field
// can be overridden per test case.
type fakeUserStore struct {
	getUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	createUserFn     func(ctx context.Context, user models.User) (models.User, error)
	deleteUserFn     func(ctx context.Context, email string) error
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return f.getUserByEmailFn(ctx, email)
}

func (f *fakeUserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserStore) DeleteUser(ctx context.Context, email string) error {
	return f.deleteUserFn(ctx, email)
}

// storeWithUsers returns a fakeUserStore backed by the given fixed user set.
func storeWithUsers(users ...models.User) *fakeUserStore {
	return &fakeUserStore{
		getUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			for _, u := range users {
				if u.Email == email {
					return u, nil
				}
			}
			return models.User{}, store.ErrUserNotFound
		},
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return users, nil
		},
	}
}

func testAppConfig() config.App {
	return config.App{
		SecretKey:        "test-secret",
		TokenIssuer:      "authentication",
		SessionDuration:  time.Hour,
		RememberDuration: 24 * time.Hour,
	}
}

func newTestManager(users store.UserStore, cfg config.App) *Manager {
	return NewManager(users, token.NewDeriver(cfg.SecretKey), cfg, logger.Nop())
}

// requestWithCookies builds a GET request carrying the cookies issued into rec.
func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

var alice = models.User{Email: "alice@example.com", PasswordHash: "bcrypt-hash-alice"}

func TestResolve_NoCookies(t *testing.T) {
	m := newTestManager(storeWithUsers(alice), testAppConfig())

	sess, err := m.Resolve(httptest.NewRequest(http.MethodGet, "/status", nil))

	require.NoError(t, err)
	assert.Equal(t, models.Anonymous(), sess)
}

func TestEstablishThenResolve(t *testing.T) {
	m := newTestManager(storeWithUsers(alice), testAppConfig())

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(rec, alice))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)

	sess, err := m.Resolve(requestWithCookies(rec))
	require.NoError(t, err)
	assert.Equal(t, models.AuthenticatedSession(alice.Email), sess)
}

func TestEstablish_CookieAttributes(t *testing.T) {
	cfg := testAppConfig()
	m := newTestManager(storeWithUsers(alice), cfg)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(rec, alice))

	byName := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		byName[c.Name] = c
	}

	session := byName[SessionCookie]
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, "/", session.Path)
	assert.Equal(t, int(cfg.SessionDuration/time.Second), session.MaxAge)

	remember := byName[RememberCookie]
	require.NotNil(t, remember)
	assert.True(t, remember.HttpOnly)
	assert.Equal(t, int(cfg.RememberDuration/time.Second), remember.MaxAge)
	assert.Equal(t, token.NewDeriver(cfg.SecretKey).Derive(alice.Email, alice.PasswordHash), remember.Value)
}

func TestResolve_RememberTokenFallback(t *testing.T) {
	cfg := testAppConfig()
	m := newTestManager(storeWithUsers(alice), cfg)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.AddCookie(&http.Cookie{
		Name:  RememberCookie,
		Value: token.NewDeriver(cfg.SecretKey).Derive(alice.Email, alice.PasswordHash),
	})

	sess, err := m.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, models.AuthenticatedSession(alice.Email), sess)
}

func TestResolve_RememberTokenRevokedByPasswordChange(t *testing.T) {
	cfg := testAppConfig()
	// Alice changed her password after the remember cookie was issued.
	changed := models.User{Email: alice.Email, PasswordHash: "bcrypt-hash-new"}
	m := newTestManager(storeWithUsers(changed), cfg)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.AddCookie(&http.Cookie{
		Name:  RememberCookie,
		Value: token.NewDeriver(cfg.SecretKey).Derive(alice.Email, alice.PasswordHash),
	})

	sess, err := m.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, models.Anonymous(), sess)
}

func TestResolve_GarbageSessionCookie(t *testing.T) {
	m := newTestManager(storeWithUsers(alice), testAppConfig())

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not.a.token"})

	sess, err := m.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, models.Anonymous(), sess)
}

func TestResolve_SessionTokenSignedWithOtherKey(t *testing.T) {
	cfg := testAppConfig()
	m := newTestManager(storeWithUsers(alice), cfg)

	otherCfg := cfg
	otherCfg.SecretKey = "some-other-secret"
	other := newTestManager(storeWithUsers(alice), otherCfg)

	rec := httptest.NewRecorder()
	require.NoError(t, other.Establish(rec, alice))

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			req.AddCookie(c)
		}
	}

	sess, err := m.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, models.Anonymous(), sess)
}

func TestResolve_ExpiredSessionFallsThrough(t *testing.T) {
	cfg := testAppConfig()
	cfg.SessionDuration = -time.Minute
	m := newTestManager(storeWithUsers(alice), cfg)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(rec, alice))

	// The expired session cookie is rejected, but the remember token issued
	// alongside it still resolves the user.
	sess, err := m.Resolve(requestWithCookies(rec))
	require.NoError(t, err)
	assert.Equal(t, models.AuthenticatedSession(alice.Email), sess)
}

func TestResolve_UserDeletedSinceIssue(t *testing.T) {
	m := newTestManager(storeWithUsers(alice), testAppConfig())

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(rec, alice))

	// Alice's account disappears between login and the next request.
	empty := newTestManager(storeWithUsers(), testAppConfig())

	sess, err := empty.Resolve(requestWithCookies(rec))
	require.NoError(t, err)
	assert.Equal(t, models.Anonymous(), sess)
}

func TestResolve_StorageErrorPropagates(t *testing.T) {
	storageDown := errors.New("storage exploded")
	failing := &fakeUserStore{
		getUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, storageDown
		},
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, storageDown
		},
	}
	m := newTestManager(failing, testAppConfig())

	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(rec, alice))

	_, err := m.Resolve(requestWithCookies(rec))
	require.ErrorIs(t, err, storageDown)
}

func TestClear_ExpiresBothCookies(t *testing.T) {
	m := newTestManager(storeWithUsers(alice), testAppConfig())

	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)

	names := map[string]bool{}
	for _, c := range cookies {
		names[c.Name] = true
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
	}
	assert.True(t, names[SessionCookie])
	assert.True(t, names[RememberCookie])
}
