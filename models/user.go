package models

// User represents one registered account. The email address is the primary
// key: the storage service guarantees at most one record per email.
// PasswordHash is a bcrypt digest with the salt embedded; the plaintext
// password never crosses the storage boundary.
type User struct {
	// Email is the unique, case-sensitive account identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is transmitted between the authentication and storage services
	// but must never be returned to end clients.
	PasswordHash string `json:"password_hash"`
}

// Credentials is the request body accepted by the signup and login endpoints.
// For compatibility with existing API consumers it is also their response
// body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
