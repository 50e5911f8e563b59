package clientip

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/attestkit/pkg/logger"
)

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the stored client address or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the client address once and stores it in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
	})
}

// KeyFunc returns the stored client address, resolving it if the middleware
// did not run. Suitable as a rate limiter key.
func (res *Resolver) KeyFunc() func(*http.Request) string {
	return func(r *http.Request) string {
		if ip := FromContext(r.Context()); ip != "" {
			return ip
		}
		return res.IP(r)
	}
}

// LoggerExtractor adds client_ip to log records made with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return logger.ClientIP(ip), true
		}
		return slog.Attr{}, false
	}
}
