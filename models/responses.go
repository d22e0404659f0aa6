package models

// APIError is the JSON error body shared by every failing endpoint:
// a short human-readable title plus a detail naming the offending value.
type APIError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// StatusResponse is the body of GET /status. Email is omitted entirely for
// anonymous sessions.
type StatusResponse struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	Email           string `json:"email,omitempty"`
}

// DeletedUserResponse is the body returned after a successful user deletion.
type DeletedUserResponse struct {
	Email string `json:"email"`
}
