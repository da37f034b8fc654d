package service_jwt_auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	s := New("test-secret", "connect4", time.Hour)

	token, err := s.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.JTI)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestEveryTokenGetsItsOwnID(t *testing.T) {
	t.Parallel()

	s := New("test-secret", "connect4", time.Hour)

	first, err := s.Issue("alice")
	require.NoError(t, err)
	second, err := s.Issue("alice")
	require.NoError(t, err)

	firstClaims, err := s.Parse(first)
	require.NoError(t, err)
	secondClaims, err := s.Parse(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.JTI, secondClaims.JTI)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	token, err := New("one-secret", "connect4", time.Hour).Issue("alice")
	require.NoError(t, err)

	_, err = New("another-secret", "connect4", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := &Service{secret: []byte("test-secret"), issuer: "connect4", ttl: -time.Minute}
	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = New("test-secret", "connect4", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := New("test-secret", "connect4", time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
