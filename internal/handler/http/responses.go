package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jenca-cloud/authentication/models"
)

// Error titles shared across handlers. The detail line names the offending
// value; the title identifies the failure class.
const (
	titleValidation    = "There was an error validating the given arguments."
	titleUserNotFound  = "The requested user does not exist."
	titleUserConflict  = "There is already a user with the given email address."
	titleWrongPassword = "An incorrect password was provided."
	titleNotLoggedIn   = "No user is currently logged in."
	titleWrongMedia    = "The request content type is not supported."
	titleStorageDown   = "The storage service is unavailable."
)

// writeJSON serialises data and writes it with the given status code. A
// marshalling failure degrades to a plain 500; it cannot happen for the
// fixed response shapes this package emits.
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

// writeError emits the shared {title, detail} error body.
func writeError(w http.ResponseWriter, statusCode int, title, detail string) {
	writeJSON(w, models.APIError{Title: title, Detail: detail}, statusCode)
}

func detailNoUser(email string) string {
	return fmt.Sprintf("No user exists with the email %q", email)
}

func detailUserExists(email string) string {
	return fmt.Sprintf("A user already exists with the email %q", email)
}

func detailWrongPassword(email string) string {
	return fmt.Sprintf("The password for the user %q does not match the password provided.", email)
}
