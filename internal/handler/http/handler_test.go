package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jenca-cloud/authentication/internal/config"
	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/password"
	"github.com/jenca-cloud/authentication/internal/service"
	"github.com/jenca-cloud/authentication/internal/session"
	"github.com/jenca-cloud/authentication/internal/store"
	"github.com/jenca-cloud/authentication/internal/token"
	"github.com/jenca-cloud/authentication/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn     func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn      func(ctx context.Context, creds models.Credentials) (models.User, error)
	logoutFn     func(ctx context.Context, sess models.Session) error
	statusFn     func(ctx context.Context, sess models.Session) models.StatusResponse
	deleteUserFn func(ctx context.Context, email string) (models.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.signupFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) Logout(ctx context.Context, sess models.Session) error {
	return m.logoutFn(ctx, sess)
}

func (m *mockAuthService) Status(ctx context.Context, sess models.Session) models.StatusResponse {
	return m.statusFn(ctx, sess)
}

func (m *mockAuthService) DeleteUser(ctx context.Context, email string) (models.User, error) {
	return m.deleteUserFn(ctx, email)
}

// memoryUserStore is an in-memory store.UserStore for handler tests.
type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemoryUserStore(users ...models.User) *memoryUserStore {
	s := &memoryUserStore{users: make(map[string]models.User)}
	for _, u := range users {
		s.users[u.Email] = u
	}
	return s
}

func (s *memoryUserStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (s *memoryUserStore) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (s *memoryUserStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return models.User{}, store.ErrUserAlreadyExists
	}
	s.users[user.Email] = user
	return user, nil
}

func (s *memoryUserStore) DeleteUser(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, email)
	return nil
}

func testAppConfig() config.App {
	return config.App{
		SecretKey:        "test-secret",
		TokenIssuer:      "authentication",
		SessionDuration:  time.Hour,
		RememberDuration: 24 * time.Hour,
	}
}

func newSessionManager(users store.UserStore) *session.Manager {
	cfg := testAppConfig()
	return session.NewManager(users, token.NewDeriver(cfg.SecretKey), cfg, logger.Nop())
}

// newHandlerWithAuth builds a Handler over the given AuthService mock and a
// session manager backed by users.
func newHandlerWithAuth(auth service.AuthService, users store.UserStore) *Handler {
	return NewHandler(auth, newSessionManager(users), logger.Nop())
}

// newRealHandler wires the full stack over an in-memory store: real service,
// real hashing, real session manager.
func newRealHandler(users store.UserStore) *Handler {
	auth := service.NewAuthService(users, password.NewHasher(bcrypt.MinCost), logger.Nop())
	return NewHandler(auth, newSessionManager(users), logger.Nop())
}

// jsonRequest builds a request with an application/json content type.
func jsonRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// credentialsBody serialises a credentials pair to a JSON body string.
func credentialsBody(t *testing.T, email, pw string) string {
	t.Helper()
	b, err := json.Marshal(models.Credentials{Email: email, Password: pw})
	require.NoError(t, err)
	return string(b)
}

// decodeAPIError reads the {title, detail} error body out of rec.
func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) models.APIError {
	t.Helper()
	var apiErr models.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

// loginCookies performs a login through the router and returns the cookies it
// issued.
func loginCookies(t *testing.T, router http.Handler, email, pw string) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/login", credentialsBody(t, email, pw)))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	return cookies
}
