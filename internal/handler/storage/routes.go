package storage

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the storage service's route table.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/users", h.listUsers)
	router.Get("/users/{email}", h.getUser)
	router.Post("/users", h.createUser)
	router.Delete("/users/{email}", h.deleteUser)

	return router
}
