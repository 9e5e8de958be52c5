package security

import (
	"testing"
	"time"

	"authstack/internal/common"

	"github.com/stretchr/testify/require"
)

var testClaims = SessionClaims{
	UserID:   "user-123",
	Username: "alice",
	Email:    "a@x.com",
}

func TestSessionToken_RoundTrip(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), 24*time.Hour)

	token, err := tm.IssueSessionToken(testClaims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := tm.ParseSessionToken(token)
	require.NoError(t, err)
	require.Equal(t, testClaims, got)
}

func TestSessionToken_Expired(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), -time.Second)

	token, err := tm.IssueSessionToken(testClaims)
	require.NoError(t, err)

	_, err = tm.ParseSessionToken(token)
	require.ErrorIs(t, err, common.ErrExpiredToken)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	issuer := NewTokenManager([]byte("right-secret"), time.Hour)
	verifier := NewTokenManager([]byte("wrong-secret"), time.Hour)

	token, err := issuer.IssueSessionToken(testClaims)
	require.NoError(t, err)

	_, err = verifier.ParseSessionToken(token)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestSessionToken_Malformed(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	_, err := tm.ParseSessionToken("not.a.jwt")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestClaimsFromMap_MissingUserID(t *testing.T) {
	_, err := ClaimsFromMap(map[string]interface{}{"username": "alice"})
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
