package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
)

const msgTooManyRequests = "För många förfrågningar, försök igen senare"

// RateLimit ограничивает частоту запросов по ключу ip + маршрут.
// Без limiter или при ошибке redis запросы пропускаются.
// Заголовки X-Forwarded-For и X-Real-IP учитываются только при trustProxy.
func RateLimit(limiter RateLimiter, trustProxy bool, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rateKey(r, trustProxy)

			decision, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("RateLimit - limiter unavailable, passing through: key=%s, error=%v", key, err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

			if !decision.Allowed {
				secs := int(math.Ceil(decision.RetryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				logger.Warn("RateLimit - Too many requests: key=%s, retry_after=%ds", key, secs)
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rateKey(r *http.Request, trustProxy bool) string {
	return "ip:" + clientIP(r, trustProxy) + ":route:" + r.Method + " " + routeTemplate(r)
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
				return ip
			}
		}
		if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return "unknown"
	}
	return host
}
