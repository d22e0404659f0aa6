package store

import "errors"

// Sentinel errors returned by UserStore implementations to signal well-known
// failure conditions. Callers should use [errors.Is] to match against them.
var (
	// ErrUserNotFound is returned when no user record exists for the
	// requested email.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when creating a user whose email is
	// already registered.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrStorageUnavailable is returned when the storage collaborator is
	// unreachable, times out, or fails unexpectedly. The core performs no
	// retries; the condition propagates to the caller as a service error.
	ErrStorageUnavailable = errors.New("storage service unavailable")
)
