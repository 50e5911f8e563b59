package attest

import (
	"context"
	"crypto/rsa"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/attestkit/pkg/envelope"
	"github.com/dmitrymomot/attestkit/pkg/logger"
	"github.com/dmitrymomot/attestkit/pkg/metrics"
	"github.com/dmitrymomot/attestkit/pkg/seed"
	"github.com/dmitrymomot/attestkit/pkg/seedstore"
	"github.com/dmitrymomot/attestkit/pkg/totp"
)

// SeedStore persists the provisioned seed. *seedstore.Store satisfies it.
type SeedStore interface {
	Load(ctx context.Context) (seed.Seed, error)
	Save(ctx context.Context, s seed.Seed) error
}

// Recorder receives outcome counts. *metrics.Metrics satisfies it.
type Recorder interface {
	SeedProvisioned(result string)
	CodeGenerated(result string)
	CodeVerified(result string)
}

// Service ties the seed owner's private key, the seed store and the TOTP
// engine together.
type Service struct {
	ownerKey *rsa.PrivateKey
	store    SeedStore
	engine   *totp.Engine
	log      *slog.Logger
	rec      Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithEngine replaces the wall-clock TOTP engine. Nil is ignored.
func WithEngine(e *totp.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithLogger sets the service logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder reports outcomes, typically to *metrics.Metrics.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.rec = r
		}
	}
}

// New builds a Service. ownerKey decrypts provisioned seeds and is distinct
// from any key used for commit proofs.
func New(ownerKey *rsa.PrivateKey, store SeedStore, opts ...Option) (*Service, error) {
	if ownerKey == nil {
		return nil, ErrMissingOwnerKey
	}
	if store == nil {
		return nil, ErrMissingStore
	}

	s := &Service{
		ownerKey: ownerKey,
		store:    store,
		engine:   totp.NewEngine(),
		log:      logger.Discard(),
		rec:      noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("attest"))
	return s, nil
}

// ProvisionSeed decrypts a base64 OAEP-encrypted seed and persists it. The
// returned error is one of envelope.ErrDecryption,
// envelope.ErrInvalidSeedFormat or a store error.
func (s *Service) ProvisionSeed(ctx context.Context, encryptedB64 string) error {
	sd, err := envelope.DecryptSeedBase64(encryptedB64, s.ownerKey)
	if err != nil {
		s.rec.SeedProvisioned(metrics.ResultInvalid)
		s.log.WarnContext(ctx, "seed provisioning rejected", logger.Event("seed_rejected"), logger.Error(err))
		return err
	}

	if err := s.store.Save(ctx, sd); err != nil {
		s.rec.SeedProvisioned(metrics.ResultError)
		s.log.ErrorContext(ctx, "failed to persist seed", logger.Error(err))
		return err
	}

	s.rec.SeedProvisioned(metrics.ResultOK)
	s.log.InfoContext(ctx, "seed provisioned", logger.Event("seed_provisioned"))
	return nil
}

// Generate returns the current code for the stored seed.
func (s *Service) Generate(ctx context.Context) (totp.Code, error) {
	sd, err := s.load(ctx)
	if err != nil {
		s.rec.CodeGenerated(metrics.ResultError)
		return totp.Code{}, err
	}

	code, err := s.engine.Generate(sd.String())
	if err != nil {
		s.rec.CodeGenerated(metrics.ResultError)
		return totp.Code{}, err
	}
	s.rec.CodeGenerated(metrics.ResultOK)
	return code, nil
}

// Verify checks code against the stored seed with a one-step tolerance.
func (s *Service) Verify(ctx context.Context, code string) (bool, error) {
	sd, err := s.load(ctx)
	if err != nil {
		s.rec.CodeVerified(metrics.ResultError)
		return false, err
	}

	ok, err := s.engine.Verify(sd.String(), code)
	switch {
	case err != nil:
		s.rec.CodeVerified(metrics.ResultError)
		return false, err
	case ok:
		s.rec.CodeVerified(metrics.ResultOK)
	default:
		s.rec.CodeVerified(metrics.ResultInvalid)
	}
	return ok, nil
}

// ProvisioningURI returns the otpauth:// URI for the stored seed so it can be
// enrolled in an authenticator app.
func (s *Service) ProvisioningURI(ctx context.Context, accountName, issuer string) (string, error) {
	sd, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	secret, err := sd.Base32()
	if err != nil {
		return "", err
	}
	return totp.GetTOTPURI(totp.TOTPParams{
		Secret:      secret,
		AccountName: accountName,
		Issuer:      issuer,
	})
}

// Ready reports whether a valid seed is stored.
func (s *Service) Ready(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

func (s *Service) load(ctx context.Context) (seed.Seed, error) {
	sd, err := s.store.Load(ctx)
	if errors.Is(err, seedstore.ErrNotFound) {
		return "", ErrSeedNotProvisioned
	}
	if err != nil {
		s.log.ErrorContext(ctx, "failed to load seed", logger.Error(err))
		return "", err
	}
	return sd, nil
}

type noopRecorder struct{}

func (noopRecorder) SeedProvisioned(string) {}
func (noopRecorder) CodeGenerated(string)   {}
func (noopRecorder) CodeVerified(string)    {}
