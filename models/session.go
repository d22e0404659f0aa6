package models

// Session is the per-request authentication context. It is an explicit value
// threaded through handler calls rather than ambient request-local state: a
// session is either anonymous or bound to exactly one existing user's email.
type Session struct {
	// Email is the identity of the authenticated user. Empty when anonymous.
	Email string

	// Authenticated reports whether Email is bound to a verified user.
	Authenticated bool
}

// Anonymous returns the unauthenticated session value.
func Anonymous() Session {
	return Session{}
}

// AuthenticatedSession returns a session bound to the given user email.
func AuthenticatedSession(email string) Session {
	return Session{Email: email, Authenticated: true}
}
