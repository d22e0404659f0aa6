package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issueSessionToken creates the signed HMAC-SHA256 token stored in the
// session cookie. The token carries the following standard claims:
//   - Issuer    (iss): this service's configured issuer name
//   - Subject   (sub): the authenticated email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the session duration
func (m *Manager) issueSessionToken(email string) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.signKey))
	if err != nil {
		return "", fmt.Errorf("error signing session token: %w", err)
	}

	return signed, nil
}

// parseSessionToken validates raw (signature, issuer, expiry) and returns the
// email it names. Any validation failure yields an error; callers treat that
// as an anonymous session, not a request failure.
func (m *Manager) parseSessionToken(raw string) (string, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(m.signKey), nil
	}, jwt.WithIssuer(m.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("error validating session token: %w", err)
	}

	email, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error reading session token subject: %w", err)
	}
	if email == "" {
		return "", errors.New("empty subject in session token")
	}

	return email, nil
}
