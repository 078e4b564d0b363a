// Package token issues and verifies the bearer tokens used on protected
// routes. The signing secret and expiry window are injected at construction,
// never read from the environment mid-request.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidOrExpired covers every verification failure. Callers must not
// distinguish a bad signature from an expired token in their responses.
var ErrInvalidOrExpired = errors.New("token: invalid or expired")

// Claims is the identity data carried inside a signed token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the claim set with HS256. Tokens expire after the configured
// TTL (24h by default, see config).
func (m *Manager) Issue(c Claims) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": c.UserID,
		"email":   c.Email,
		"role":    c.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify validates signature and expiry and returns the decoded claims.
func (m *Manager) Verify(raw string) (Claims, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidOrExpired
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return Claims{}, ErrInvalidOrExpired
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidOrExpired
	}

	userID, _ := mc["user_id"].(string)
	if userID == "" {
		return Claims{}, ErrInvalidOrExpired
	}
	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)

	return Claims{UserID: userID, Email: email, Role: role}, nil
}
