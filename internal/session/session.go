// Package session issues and validates signed session tokens.
package session

import (
	"fmt"
	"time"

	"mojicode/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs HS256 session tokens carrying the account email as the
// subject claim.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager signing with secret; ttl bounds token life.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the account.
func (m *Manager) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return signed, nil
}

// Validate parses the token and returns the subject email. Expired or
// malformed tokens fail with InvalidCredentials.
func (m *Manager) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", models.NewInvalidCredentialsError()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", models.NewInvalidCredentialsError()
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", models.NewInvalidCredentialsError()
	}
	return sub, nil
}

// Refresh re-issues a token for the same subject with a fresh expiry.
func (m *Manager) Refresh(tokenString string) (string, error) {
	email, err := m.Validate(tokenString)
	if err != nil {
		return "", err
	}
	return m.Issue(email)
}
