package totp

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrymomot/attestkit/pkg/seed"
)

// Code is a generated one-time password and the seconds left in its window.
type Code struct {
	Code             string
	SecondsRemaining int
}

// Engine derives and verifies codes from hex seeds.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine returns an Engine using the wall clock unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate returns the code for the current window. SecondsRemaining is the
// time left in the current window, so it is always in (0, DefaultPeriod].
func (e *Engine) Generate(hexSeed string) (Code, error) {
	secret, err := seedSecret(hexSeed)
	if err != nil {
		return Code{}, err
	}

	now := e.now()
	code, err := GenerateTOTPWithTime(secret, now)
	if err != nil {
		return Code{}, errors.Join(ErrFailedToGenerateTOTP, err)
	}

	return Code{
		Code:             code,
		SecondsRemaining: SecondsRemaining(now),
	}, nil
}

// Verify reports whether code matches the previous, current or next window.
// A malformed code is simply not valid; a malformed seed is an error.
func (e *Engine) Verify(hexSeed, code string) (bool, error) {
	secret, err := seedSecret(hexSeed)
	if err != nil {
		return false, err
	}

	ok, err := ValidateTOTPWithTime(secret, code, e.now())
	if errors.Is(err, ErrInvalidOTP) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrFailedToValidateTOTP, err)
	}
	return ok, nil
}

// SecondsRemaining returns the seconds left in the window containing t.
func SecondsRemaining(t time.Time) int {
	return DefaultPeriod - int(t.Unix()%DefaultPeriod)
}

func seedSecret(hexSeed string) (string, error) {
	s, err := seed.Parse(hexSeed)
	if err != nil {
		return "", errors.Join(ErrInvalidSeed, err)
	}
	b32, err := s.Base32()
	if err != nil {
		return "", errors.Join(ErrInvalidSeed, err)
	}
	return b32, nil
}

// VerifyDigits reports whether s looks like a code; cheap pre-check for request validation.
func VerifyDigits(s string) bool {
	return otpRegex.MatchString(strings.TrimSpace(s))
}
