package twofa

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/attestkit/pkg/clientip"
	"github.com/dmitrymomot/attestkit/pkg/httpserver"
	"github.com/dmitrymomot/attestkit/pkg/logger"
	"github.com/dmitrymomot/attestkit/pkg/metrics"
	"github.com/dmitrymomot/attestkit/pkg/ratelimiter"
	"github.com/dmitrymomot/attestkit/pkg/requestid"
)

// RouterConfig collects the collaborators of the service router. Only
// Service is required.
type RouterConfig struct {
	Service  *Service
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	ClientIP *clientip.Resolver
	// ReadyChecks back /health/ready, usually the seed store probe.
	ReadyChecks []httpserver.Check
}

// Router builds the full HTTP surface: health probes, metrics and the twofa
// endpoints mounted at the root.
func Router(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	resolver := cfg.ClientIP
	if resolver == nil {
		resolver = clientip.New()
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(resolver.Middleware)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, cfg.ReadyChecks...))
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Mount("/", cfg.Service.Handle())
	return r
}

// VerifyLimiter rate limits /verify-2fa per client IP and answers denied
// requests with 429 {"status":"error","error":"Too many attempts"}.
func VerifyLimiter(b *ratelimiter.Bucket, resolver *clientip.Resolver, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return ratelimiter.Middleware(b, ratelimiter.KeyFunc(resolver.KeyFunc()), DenyTooManyAttempts,
		func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "rate limiter unavailable", logger.Component("ratelimiter"), logger.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"status":"error","error":"Internal error"}`))
		})
}
