package seedstore

import (
	"bytes"
	"context"
	"errors"

	"github.com/dmitrymomot/attestkit/pkg/secrets"
	"github.com/dmitrymomot/attestkit/pkg/seed"
)

// Backend persists raw seed bytes. Write must be durable before it returns.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// checker is implemented by backends that can report readiness.
type checker interface {
	Check(ctx context.Context) error
}

// Store validates seeds on the way in and out of a Backend, optionally
// sealing them at rest.
type Store struct {
	backend   Backend
	masterKey []byte
	scope     []byte
}

// Option configures a Store.
type Option func(*Store)

// WithSealing seals the seed with AES-GCM under a key derived from masterKey
// and scope. Both must be set for sealing to take effect; a store written
// with sealing can only be read back with the same pair.
func WithSealing(masterKey, scope []byte) Option {
	return func(s *Store) {
		s.masterKey = masterKey
		s.scope = scope
	}
}

// New wraps backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sealed reports whether values are sealed at rest.
func (s *Store) Sealed() bool {
	return len(s.masterKey) > 0 && len(s.scope) > 0
}

// Save validates sd and writes it.
func (s *Store) Save(ctx context.Context, sd seed.Seed) error {
	if err := seed.Validate(sd.String()); err != nil {
		return err
	}

	data := []byte(sd.String())
	if s.Sealed() {
		sealed, err := secrets.SealString(s.masterKey, s.scope, sd.String())
		if err != nil {
			return errors.Join(ErrWriteFailed, err)
		}
		data = []byte(sealed)
	}

	return s.backend.Write(ctx, data)
}

// Load returns the stored seed. ErrNotFound when nothing was provisioned,
// seed.ErrInvalidFormat when the stored value is not a valid seed.
func (s *Store) Load(ctx context.Context) (seed.Seed, error) {
	data, err := s.backend.Read(ctx)
	if err != nil {
		return "", err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", ErrNotFound
	}

	raw := string(data)
	if s.Sealed() {
		raw, err = secrets.OpenString(s.masterKey, s.scope, raw)
		if err != nil {
			return "", errors.Join(ErrUnsealFailed, err)
		}
	}

	return seed.Parse(raw)
}

// Check probes the backend when it supports readiness checks.
func (s *Store) Check(ctx context.Context) error {
	if c, ok := s.backend.(checker); ok {
		return c.Check(ctx)
	}
	return nil
}
