package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	ErrNoSecretKey       = errors.New("secret key must not be empty")
	ErrNoServerAddress   = errors.New("server address must not be empty")
	ErrNoSessionDuration = errors.New("session duration must be positive")
)

// validate checks the invariants every deployment must satisfy regardless of
// role. Role-specific requirements (storage URL for the auth server, database
// DSN for the storage server) are checked by the respective entrypoints.
func (c *StructuredConfig) validate() error {
	if c.App.SecretKey == "" {
		return ErrNoSecretKey
	}
	if c.Server.HTTPAddress == "" {
		return ErrNoServerAddress
	}
	if c.App.SessionDuration <= 0 {
		return ErrNoSessionDuration
	}

	return nil
}
