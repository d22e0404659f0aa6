package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jenca-cloud/authentication/internal/config"
	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/models"
)

// httpUserStore is the HTTP/REST implementation of [UserStore]. It treats the
// storage service as an opaque keyed-record collaborator: every call is a
// single synchronous request with the configured timeout and no retries.
type httpUserStore struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPUserStore constructs a [UserStore] backed by the storage service at
// cfg.URL. It normalises and validates the base URL and bounds every request
// with cfg.RequestTimeout.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPUserStore(cfg config.Storage, log *logger.Logger) (UserStore, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid storage url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpUserStore{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetUserByEmail implements [UserStore]. It GETs /users/{email} and decodes
// the record. A 404 maps to ErrUserNotFound.
func (s *httpUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User

	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/users/" + url.PathEscape(email))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: get user request: %w", ErrStorageUnavailable, err)
	}
	if err = mapStorageError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListUsers implements [UserStore]. It GETs /users and decodes the full user
// list.
func (s *httpUserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("%w: list users request: %w", ErrStorageUnavailable, err)
	}
	if err = mapStorageError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("%w: decode users response: %w", ErrStorageUnavailable, err)
	}

	return users, nil
}

// CreateUser implements [UserStore]. It POSTs the record to /users. A 409
// maps to ErrUserAlreadyExists; that answer is authoritative even when a
// prior existence check saw no user.
func (s *httpUserStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("%w: create user request: %w", ErrStorageUnavailable, err)
	}
	if err = mapStorageError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DeleteUser implements [UserStore]. It DELETEs /users/{email}. A 404 maps
// to ErrUserNotFound.
func (s *httpUserStore) DeleteUser(ctx context.Context, email string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		Delete("/users/" + url.PathEscape(email))
	if err != nil {
		return fmt.Errorf("%w: delete user request: %w", ErrStorageUnavailable, err)
	}

	return mapStorageError(resp)
}

// mapStorageError converts a non-2xx storage response into the corresponding
// package sentinel. Anything that is neither a 404 nor a 409 means the
// collaborator misbehaved and surfaces as ErrStorageUnavailable.
func mapStorageError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrUserNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrUserAlreadyExists, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrStorageUnavailable, resp.StatusCode(), body)
	}
}
