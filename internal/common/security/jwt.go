package security

import (
	"errors"
	"time"

	"authstack/internal/common"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the identity payload carried by a session token. It never
// includes the password digest.
type SessionClaims struct {
	UserID   string
	Username string
	Email    string
}

// TokenManager signs and verifies session tokens with a server-held secret.
type TokenManager struct {
	auth *jwtauth.JWTAuth
	exp  time.Duration
}

func NewTokenManager(key []byte, exp time.Duration) *TokenManager {
	return &TokenManager{
		auth: jwtauth.New("HS256", key, nil),
		exp:  exp,
	}
}

// Auth exposes the underlying verifier for the router's request middleware.
func (m *TokenManager) Auth() *jwtauth.JWTAuth {
	return m.auth
}

// Exp is the validity window applied to issued tokens.
func (m *TokenManager) Exp() time.Duration {
	return m.exp
}

func (m *TokenManager) IssueSessionToken(c SessionClaims) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  c.UserID,
		"username": c.Username,
		"email":    c.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(m.exp).Unix(),
	}
	_, tokenString, err := m.auth.Encode(claims)
	return tokenString, err
}

// ParseSessionToken verifies signature and expiry, returning
// common.ErrExpiredToken past the validity window and common.ErrInvalidToken
// for every other failure.
func (m *TokenManager) ParseSessionToken(tokenString string) (SessionClaims, error) {
	token, err := jwtauth.VerifyToken(m.auth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return SessionClaims{}, common.ErrExpiredToken
		}
		return SessionClaims{}, common.ErrInvalidToken
	}
	return ClaimsFromMap(token.PrivateClaims())
}

// ClaimsFromMap extracts the identity claims from a decoded token payload.
func ClaimsFromMap(claims map[string]interface{}) (SessionClaims, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return SessionClaims{}, common.ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	return SessionClaims{UserID: userID, Username: username, Email: email}, nil
}
