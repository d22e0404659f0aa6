package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required request fields are
	// missing or blank. Handlers normally reject such requests before the
	// service runs; this guard keeps the service safe when called directly.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the presented password does not
	// verify against the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotAuthenticated is returned when an operation requiring an
	// authenticated session runs against an anonymous one.
	ErrNotAuthenticated = errors.New("not authenticated")
)
