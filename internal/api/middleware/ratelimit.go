package middleware

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"authstack/internal/common"

	"github.com/redis/go-redis/v9"
)

// RateLimit throttles a route with a fixed-window counter in Redis, keyed by
// client IP and path. With no Redis client configured it is a no-op. Counter
// failures let the request through; throttling is hardening, not a
// correctness gate for auth itself.
func RateLimit(rdb *redis.Client, perMinute int) func(http.Handler) http.Handler {
	if rdb == nil || perMinute <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("ratelimit:%s:%s", clientIP(r), r.URL.Path)

			count, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				log.Printf("rate limit counter unavailable: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(r.Context(), key, time.Minute)
			}
			if count > int64(perMinute) {
				common.RespondWithError(w, http.StatusTooManyRequests, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	// chi's RealIP middleware rewrites RemoteAddr from X-Forwarded-For.
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
