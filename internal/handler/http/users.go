package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jenca-cloud/authentication/internal/logger"
	"github.com/jenca-cloud/authentication/internal/store"
	"github.com/jenca-cloud/authentication/models"
)

// deleteUser removes the account named by the path parameter. There is no
// ownership check against the caller's session; the service trusts its
// internal callers.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := chi.URLParam(r, "email")

	user, err := h.auth.DeleteUser(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			writeError(w, http.StatusNotFound, titleUserNotFound, detailNoUser(email))
		case errors.Is(err, store.ErrStorageUnavailable):
			log.Err(err).Msg("storage unavailable during user deletion")
			writeError(w, http.StatusServiceUnavailable, titleStorageDown,
				"The user store could not be reached. Try again later.")
		default:
			log.Err(err).Msg("unexpected error during user deletion")
			writeError(w, http.StatusInternalServerError,
				http.StatusText(http.StatusInternalServerError), "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, models.DeletedUserResponse{Email: user.Email}, http.StatusOK)
}
