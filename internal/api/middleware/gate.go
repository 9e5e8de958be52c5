package middleware

import (
	"net/http"

	"authstack/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

// GateDecision is the outcome of evaluating a request against the gate.
type GateDecision int

const (
	GateAllow GateDecision = iota
	GateRedirectHome
	GateRedirectLogin
)

// GateConfig describes which page paths the session gate watches. Public
// paths bounce authenticated visitors home; gated paths bounce anonymous
// visitors to login. Paths in neither set pass through unchanged.
type GateConfig struct {
	PublicPaths map[string]bool
	GatedPaths  map[string]bool
	HomePath    string
	LoginPath   string
}

// DefaultGateConfig watches the page paths of the auth flow: login and
// signup are public, the home and profile pages require a session.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		PublicPaths: map[string]bool{"/login": true, "/signup": true},
		GatedPaths:  map[string]bool{"/": true, "/profile": true},
		HomePath:    "/",
		LoginPath:   "/login",
	}
}

// Evaluate is the pure request-time decision. It depends on nothing beyond
// the path and the presented credential's validity.
func (c GateConfig) Evaluate(path string, hasValidSession bool) GateDecision {
	switch {
	case c.PublicPaths[path] && hasValidSession:
		return GateRedirectHome
	case c.GatedPaths[path] && !hasValidSession:
		return GateRedirectLogin
	default:
		return GateAllow
	}
}

// SessionGate routes page requests based on path sensitivity and credential
// validity. An expired or tampered token counts as no session, and the check
// runs on every request. Requires Verifier upstream.
func SessionGate(cfg GateConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			valid := err == nil && token != nil
			if valid {
				if _, cerr := security.ClaimsFromMap(claims); cerr != nil {
					valid = false
				}
			}

			switch cfg.Evaluate(r.URL.Path, valid) {
			case GateRedirectHome:
				http.Redirect(w, r, cfg.HomePath, http.StatusSeeOther)
			case GateRedirectLogin:
				http.Redirect(w, r, cfg.LoginPath, http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
