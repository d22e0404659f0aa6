// Package storage exposes a UserStore over HTTP. It is the server side of
// the wire protocol the authentication service's storage client speaks:
// plain JSON resources under /users keyed by email.
package storage

import (
	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/store"
)

// Handler serves user records from the backing store.
type Handler struct {
	users  store.UserStore
	logger *logger.Logger
}

func NewHandler(users store.UserStore, log *logger.Logger) *Handler {
	log.Info().Msg("storage handler created")

	return &Handler{
		users:  users,
		logger: log,
	}
}
