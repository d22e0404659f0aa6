package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_store_mock.go -package=mock

import (
	"context"

	"github.com/jenca-cloud/authentication/models"
)

// UserStore is the contract the authentication core consumes for durable
// user records. The canonical implementation talks to the storage service
// over HTTP; the storage server itself fulfils the same contract directly
// against SQL.
//
// All operations are synchronous and carry a bounded timeout through ctx.
// Implementations signal well-known conditions with the package sentinels
// ([ErrUserNotFound], [ErrUserAlreadyExists], [ErrStorageUnavailable]);
// callers match with errors.Is.
type UserStore interface {
	// GetUserByEmail fetches the record for email, or ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsers returns every known user. It backs remember-token
	// resolution, which scans all users for a token match.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUser persists a new record, or ErrUserAlreadyExists when the
	// email is already taken. The store's conflict answer is authoritative;
	// callers must not rely on a prior existence check alone.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the record for email, or ErrUserNotFound.
	DeleteUser(ctx context.Context, email string) error
}
