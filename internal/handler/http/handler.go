package http

import (
	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/service"
	"github.com/jenca-cloud/authentication/internal/session"
)

// Handler bundles the authentication use-cases and the session manager
// behind the service's HTTP surface.
type Handler struct {
	auth     service.AuthService
	sessions *session.Manager

	logger *logger.Logger
}

func NewHandler(auth service.AuthService, sessions *session.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		auth:     auth,
		sessions: sessions,
		logger:   logger,
	}
}
