package codelog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/attestkit/pkg/logger"
	"github.com/dmitrymomot/attestkit/pkg/seedstore"
	"github.com/dmitrymomot/attestkit/pkg/totp"
	"github.com/dmitrymomot/attestkit/svc/attest"
)

// TimeLayout formats the UTC timestamp prefix of each line.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultInterval is the tick period of Run.
const DefaultInterval = time.Minute

// Generator produces the current code. *attest.Service satisfies it.
type Generator interface {
	Generate(ctx context.Context) (totp.Code, error)
}

// Logger appends one "YYYY-MM-DD HH:MM:SS - 2FA Code: NNNNNN" line per run.
type Logger struct {
	gen      Generator
	out      io.Writer
	now      func() time.Time
	interval time.Duration
	log      *slog.Logger

	mu sync.Mutex
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock overrides the timestamp source. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithInterval sets the Run period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(l *Logger) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithLogger sets where failed ticks are reported.
func WithLogger(log *slog.Logger) Option {
	return func(l *Logger) {
		if log != nil {
			l.log = log
		}
	}
}

// New returns a Logger writing to out. Run ticks every DefaultInterval unless
// WithInterval says otherwise.
func New(gen Generator, out io.Writer, opts ...Option) (*Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}
	l := &Logger{
		gen:      gen,
		out:      out,
		now:      time.Now,
		interval: DefaultInterval,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With(logger.Component("codelog"))
	return l, nil
}

// RunOnce writes a single line for the current code.
func (l *Logger) RunOnce(ctx context.Context) error {
	code, err := l.gen.Generate(ctx)
	if errors.Is(err, attest.ErrSeedNotProvisioned) || errors.Is(err, seedstore.ErrNotFound) {
		return ErrSeedMissing
	}
	if err != nil {
		return err
	}

	line := Format(l.now(), code.Code)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := io.WriteString(l.out, line); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Run calls RunOnce at every interval boundary until ctx is done. Failed runs
// are logged and do not stop the loop.
func (l *Logger) Run(ctx context.Context) error {
	first := time.NewTimer(untilNext(l.now(), l.interval))
	defer first.Stop()

	select {
	case <-ctx.Done():
		return nil
	case <-first.C:
	}
	l.tick(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.tick(ctx)
		}
	}
}

func (l *Logger) tick(ctx context.Context) {
	if err := l.RunOnce(ctx); err != nil {
		if errors.Is(err, ErrSeedMissing) {
			l.log.WarnContext(ctx, "no seed provisioned yet")
			return
		}
		l.log.ErrorContext(ctx, "failed to log code", logger.Error(err))
	}
}

// Format renders one log line, timestamp in UTC.
func Format(t time.Time, code string) string {
	return fmt.Sprintf("%s - 2FA Code: %s\n", t.UTC().Format(TimeLayout), code)
}

// untilNext returns the delay to the next multiple of interval since the
// epoch, so minute ticks land on :00.
func untilNext(now time.Time, interval time.Duration) time.Duration {
	next := now.Truncate(interval).Add(interval)
	return next.Sub(now)
}
