package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router for the authentication API. The content-type gate
// runs before everything else: every route, including GET /status, rejects
// non-JSON requests with 415 before any business logic.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(requireJSON)

	router.Post("/signup", h.signup)
	router.Post("/login", h.login)
	router.Post("/logout", h.logout)
	router.Get("/status", h.status)
	router.Delete("/users/{email}", h.deleteUser)

	return router
}
