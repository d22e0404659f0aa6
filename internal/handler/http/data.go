package http

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/jenca-cloud/authentication/models"
)

// credentialsRequest is the body of the signup and login endpoints. Both
// fields are required; validation runs before any storage work.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r credentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r credentialsRequest) credentials() models.Credentials {
	return models.Credentials{Email: r.Email, Password: r.Password}
}
