package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub/backend/internal/config"
)

func newTestManager(t *testing.T, ttl string) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(config.AuthConfig{JWTSecret: "test-secret", JWTTTL: ttl})
	require.NoError(t, err)
	return m
}

func TestJWTManagerRoundTrip(t *testing.T) {
	m := newTestManager(t, "1h")
	userID := uuid.New()

	token, err := m.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTManagerRejectsExpired(t *testing.T) {
	m := newTestManager(t, "-1m")

	token, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTManagerRejectsTampered(t *testing.T) {
	m := newTestManager(t, "1h")

	token, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Verify(token + "x")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTManagerRejectsForeignSecret(t *testing.T) {
	m := newTestManager(t, "1h")
	other, err := NewJWTManager(config.AuthConfig{JWTSecret: "other-secret", JWTTTL: "1h"})
	require.NoError(t, err)

	token, err := other.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTManagerRejectsGarbage(t *testing.T) {
	m := newTestManager(t, "1h")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
}

func TestNewJWTManagerConfig(t *testing.T) {
	_, err := NewJWTManager(config.AuthConfig{JWTSecret: "", JWTTTL: "1h"})
	assert.ErrorIs(t, err, ErrMisconfigured)

	_, err = NewJWTManager(config.AuthConfig{JWTSecret: "s", JWTTTL: "soon"})
	assert.ErrorIs(t, err, ErrMisconfigured)
}
