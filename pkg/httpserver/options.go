package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server. Invalid values are ignored and the default is
// kept.
type Option func(*Server)

// WithAddr sets the listen address, e.g. ":8080".
func WithAddr(addr string) Option {
	return func(s *Server) { s.cfg.Addr = addr }
}

// WithReadTimeout bounds reading a whole request.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) { s.cfg.ReadTimeout = d }
}

// WithWriteTimeout bounds writing a response.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) { s.cfg.WriteTimeout = d }
}

// WithIdleTimeout bounds keep-alive idle time.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) { s.cfg.IdleTimeout = d }
}

// WithShutdownTimeout bounds how long in-flight requests may take to drain.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.cfg.ShutdownTimeout = d }
}

// WithLogger sets the lifecycle logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}
