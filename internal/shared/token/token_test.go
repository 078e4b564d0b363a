package token_test

import (
	"testing"
	"time"

	"go-assetms/internal/shared/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	claims := token.Claims{
		UserID: uuid.New().String(),
		Email:  "ada@example.com",
		Role:   "USER",
	}

	raw, err := m.Issue(claims)
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	decoded, err := m.Verify(raw)
	assert.NoError(t, err)
	assert.Equal(t, claims, decoded)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := token.NewManager("secret-a", time.Hour)
	verifier := token.NewManager("secret-b", time.Hour)

	raw, err := issuer.Issue(token.Claims{UserID: "u-1", Email: "a@b.c", Role: "USER"})
	assert.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, token.ErrInvalidOrExpired)
}

func TestVerify_Expired(t *testing.T) {
	m := token.NewManager("test-secret", -time.Minute)

	raw, err := m.Issue(token.Claims{UserID: "u-1", Email: "a@b.c", Role: "USER"})
	assert.NoError(t, err)

	_, err = m.Verify(raw)
	assert.ErrorIs(t, err, token.ErrInvalidOrExpired)
}

func TestVerify_Garbage(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(raw)
		assert.ErrorIs(t, err, token.ErrInvalidOrExpired)
	}
}
