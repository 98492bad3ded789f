package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) *Authenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthenticator(string(hash), "test-secret", time.Hour)
}

func TestLoginAndVerify(t *testing.T) {
	a := newTestAuth(t)

	tok, err := a.Login("rahasia")
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Value)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, time.Minute)

	claims, err := a.Verify(tok.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	a := newTestAuth(t)
	_, err := a.Login("salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NotConfigured(t *testing.T) {
	a := NewAuthenticator("", "", 0)
	assert.False(t, a.Configured())
	_, err := a.Login("anything")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerify_Rejects(t *testing.T) {
	a := newTestAuth(t)
	tok, err := a.Login("rahasia")
	require.NoError(t, err)

	other := NewAuthenticator(string(a.hash), "other-secret", time.Hour)
	_, err = other.Verify(tok.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	a.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = a.Verify(tok.Value)
	assert.True(t, errors.Is(err, ErrInvalidToken), "expired token should be rejected: %v", err)
}

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("abc")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("abc")))

	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestLimiter(t *testing.T) {
	l := NewLimiter(time.Minute, 2)
	base := time.Now()
	l.now = func() time.Time { return base }

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("5.6.7.8"), "other clients are independent")

	l.now = func() time.Time { return base.Add(time.Minute + time.Second) }
	assert.True(t, l.Allow("1.2.3.4"))
}
