package middleware

import (
	"net/http"
	"time"

	"authstack/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

// SessionCookieName is the cookie carrying the session credential. The
// cookie is the sole proof of identity on each request.
const SessionCookieName = "token"

// SessionTokenFromCookie extracts the session token from the request cookie.
func SessionTokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Verifier decodes and validates the session credential on every request,
// leaving the token (or the verification error) in the request context for
// the Authenticator and the SessionGate. The decision is re-made per
// request; nothing is cached.
func Verifier(tm *security.TokenManager) func(http.Handler) http.Handler {
	return jwtauth.Verify(tm.Auth(), SessionTokenFromCookie, jwtauth.TokenFromHeader)
}

// SetSessionCookie installs the HTTP-only session cookie, expiring in step
// with the token's own validity window.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
