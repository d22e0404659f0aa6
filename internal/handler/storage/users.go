package storage

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/store"
	"github.com/jenca-cloud/authentication/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Msg("listing users failed")
		writeError(w, http.StatusInternalServerError, "Listing users failed.")
		return
	}

	// An empty store serves [] rather than null.
	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	email := chi.URLParam(r, "email")

	user, err := h.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "The requested user does not exist.")
			return
		}

		log.Err(err).Msg("fetching user failed")
		writeError(w, http.StatusInternalServerError, "Fetching the user failed.")
		return
	}

	writeJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "The request body is not valid JSON.")
		return
	}
	if user.Email == "" || user.PasswordHash == "" {
		writeError(w, http.StatusBadRequest, "Both email and password_hash are required.")
		return
	}

	created, err := h.users.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			writeError(w, http.StatusConflict, "There is already a user with the given email address.")
			return
		}

		log.Err(err).Msg("creating user failed")
		writeError(w, http.StatusInternalServerError, "Creating the user failed.")
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	email := chi.URLParam(r, "email")

	if err := h.users.DeleteUser(r.Context(), email); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "The requested user does not exist.")
			return
		}

		log.Err(err).Msg("deleting user failed")
		writeError(w, http.StatusInternalServerError, "Deleting the user failed.")
		return
	}

	writeJSON(w, models.DeletedUserResponse{Email: email}, http.StatusOK)
}
