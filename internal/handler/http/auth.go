package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/service"
	"github.com/jenca-cloud/authentication/internal/store"
)

// signup registers a new account.
//
// The response deliberately echoes the submitted plaintext credentials with
// 201 Created: existing API consumers depend on that body shape.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, titleValidation, "The request body is not valid JSON.")
		return
	}
	if err := req.Validate(); err != nil {
		log.Err(err).Msg("signup request failed validation")
		writeError(w, http.StatusBadRequest, titleValidation, err.Error())
		return
	}

	_, err := h.auth.Signup(ctx, req.credentials())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, http.StatusBadRequest, titleValidation, err.Error())
		case errors.Is(err, store.ErrUserAlreadyExists):
			writeError(w, http.StatusConflict, titleUserConflict, detailUserExists(req.Email))
		case errors.Is(err, store.ErrStorageUnavailable):
			log.Err(err).Msg("storage unavailable during signup")
			writeError(w, http.StatusServiceUnavailable, titleStorageDown,
				"The user store could not be reached. Try again later.")
		default:
			log.Err(err).Msg("unexpected error during signup")
			writeError(w, http.StatusInternalServerError,
				http.StatusText(http.StatusInternalServerError), "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, req, http.StatusCreated)
}

// login verifies credentials and establishes an authenticated session: a
// signed session cookie plus a persistent remember-token cookie whose value
// is the MAC over (email, passwordHash).
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, titleValidation, "The request body is not valid JSON.")
		return
	}
	if err := req.Validate(); err != nil {
		log.Err(err).Msg("login request failed validation")
		writeError(w, http.StatusBadRequest, titleValidation, err.Error())
		return
	}

	user, err := h.auth.Login(ctx, req.credentials())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, http.StatusBadRequest, titleValidation, err.Error())
		case errors.Is(err, store.ErrUserNotFound):
			writeError(w, http.StatusNotFound, titleUserNotFound, detailNoUser(req.Email))
		case errors.Is(err, service.ErrWrongPassword):
			writeError(w, http.StatusUnauthorized, titleWrongPassword, detailWrongPassword(req.Email))
		case errors.Is(err, store.ErrStorageUnavailable):
			log.Err(err).Msg("storage unavailable during login")
			writeError(w, http.StatusServiceUnavailable, titleStorageDown,
				"The user store could not be reached. Try again later.")
		default:
			log.Err(err).Msg("unexpected error during login")
			writeError(w, http.StatusInternalServerError,
				http.StatusText(http.StatusInternalServerError), "An unexpected error occurred.")
		}
		return
	}

	if err = h.sessions.Establish(w, user); err != nil {
		log.Err(err).Msg("establishing session failed")
		writeError(w, http.StatusInternalServerError,
			http.StatusText(http.StatusInternalServerError), "An unexpected error occurred.")
		return
	}

	writeJSON(w, req, http.StatusOK)
}

// logout tears down the current session. Calling it without an authenticated
// session is a 401, not a no-op; logging out twice fails the second time.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, err := h.sessions.Resolve(r)
	if err != nil {
		log.Err(err).Msg("storage unavailable during session resolution")
		writeError(w, http.StatusServiceUnavailable, titleStorageDown,
			"The user store could not be reached. Try again later.")
		return
	}

	if err = h.auth.Logout(ctx, sess); err != nil {
		writeError(w, http.StatusUnauthorized, titleNotLoggedIn,
			"Logging out requires an authenticated session.")
		return
	}

	h.sessions.Clear(w)
	writeJSON(w, struct{}{}, http.StatusOK)
}

// status reflects the current session state. It requires no authentication
// and never fails except when the user store is unreachable.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, err := h.sessions.Resolve(r)
	if err != nil {
		log.Err(err).Msg("storage unavailable during session resolution")
		writeError(w, http.StatusServiceUnavailable, titleStorageDown,
			"The user store could not be reached. Try again later.")
		return
	}

	writeJSON(w, h.auth.Status(ctx, sess), http.StatusOK)
}
