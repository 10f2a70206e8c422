package httpadapter

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
)

// rateLimit throttles admin API requests per client IP. When the limiter is
// nil or Redis is unreachable the request is allowed through (fail open);
// losing rate limiting is better than taking the admin API down with it.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		ok, err := h.limiter.Allow(r.Context(), clientIP(r))
		if err != nil {
			h.logger.Warn("rate limit check failed", slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i > 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
