package api

import (
	"net/http"
	"time"

	"authstack/internal/api/handler"
	"authstack/internal/api/middleware"
	"authstack/internal/app/service"
	"authstack/internal/common/security"
	"authstack/internal/platform/config"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

func NewRouter(
	cfg *config.Config,
	tokens *security.TokenManager,
	authService *service.AuthService,
	verificationService *service.VerificationService,
	rdb *redis.Client,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Decode the session cookie on every request; the gate and the
	// authenticator read the result from the request context.
	r.Use(middleware.Verifier(tokens))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// JSON API
	r.Route("/api/users", func(users chi.Router) {
		users.Use(middleware.RateLimit(rdb, cfg.RateLimitPerMinute))
		authHandler := handler.NewAuthHandler(authService, verificationService, tokens.Exp())
		authHandler.RegisterRoutes(users)
	})

	// Page paths watched by the session gate. Rendering belongs to the
	// frontend; these handlers only anchor the gate's routing decisions.
	r.Group(func(pages chi.Router) {
		pages.Use(middleware.SessionGate(middleware.DefaultGateConfig()))
		for _, path := range []string{"/", "/profile", "/login", "/signup"} {
			pages.Get(path, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("OK"))
			})
		}
	})

	return r
}
