package twofa

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/attestkit/handler"
	"github.com/dmitrymomot/attestkit/pkg/binder"
	"github.com/dmitrymomot/attestkit/pkg/logger"
	"github.com/dmitrymomot/attestkit/pkg/qrcode"
	"github.com/dmitrymomot/attestkit/pkg/totp"
	"github.com/dmitrymomot/attestkit/svc/attest"
)

const (
	msgDecryptionFailed = "Decryption failed"
	msgMissingSeed      = "Missing encrypted_seed"
	msgNoSeed           = "Seed not decrypted yet"
	msgMissingCode      = "Missing code"
	msgInternal         = "Internal error"
	msgTooManyAttempts  = "Too many attempts"
)

// Attestor is the service behind the endpoints. *attest.Service satisfies it.
type Attestor interface {
	ProvisionSeed(ctx context.Context, encryptedB64 string) error
	Generate(ctx context.Context) (totp.Code, error)
	Verify(ctx context.Context, code string) (bool, error)
	ProvisioningURI(ctx context.Context, accountName, issuer string) (string, error)
}

// Service serves the seed provisioning and TOTP endpoints.
type Service struct {
	cfg         Config
	attestor    Attestor
	log         *slog.Logger
	verifyGuard func(http.Handler) http.Handler
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets where request failures are logged.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithVerifyGuard wraps POST /verify-2fa, typically with a rate limiter.
func WithVerifyGuard(mw func(http.Handler) http.Handler) Option {
	return func(s *Service) { s.verifyGuard = mw }
}

// NewService serves attestor over HTTP.
func NewService(cfg Config, attestor Attestor, opts ...Option) *Service {
	s := &Service{cfg: cfg, attestor: attestor, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("twofa"))
	return s
}

// Handle returns the module routes, ready to mount.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/decrypt-seed", handler.Wrap(s.decryptSeed,
		handler.WithBinders(binder.JSON()),
		handler.WithErrorHandler(s.errorHandler(msgMissingSeed)),
	))

	r.Get("/generate-2fa", handler.Wrap(s.generate,
		handler.WithErrorHandler(s.errorHandler("")),
	))

	verify := http.Handler(handler.Wrap(s.verify,
		handler.WithBinders(binder.JSON()),
		handler.WithErrorHandler(s.errorHandler(msgMissingCode)),
	))
	if s.verifyGuard != nil {
		verify = s.verifyGuard(verify)
	}
	r.Method(http.MethodPost, "/verify-2fa", verify)

	if s.cfg.QREnabled {
		r.Get("/provisioning-qr", handler.Wrap(s.provisioningQR,
			handler.WithErrorHandler(s.errorHandler("")),
		))
	}

	return r
}

func (s *Service) decryptSeed(ctx context.Context, req decryptSeedRequest) handler.Response {
	if req.EncryptedSeed == "" {
		return fail(http.StatusBadRequest, msgMissingSeed, nil)
	}
	if err := s.attestor.ProvisionSeed(ctx, req.EncryptedSeed); err != nil {
		return fail(http.StatusInternalServerError, msgDecryptionFailed, err)
	}
	return handler.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

func (s *Service) generate(ctx context.Context, _ struct{}) handler.Response {
	code, err := s.attestor.Generate(ctx)
	if err != nil {
		return seedFailure(err)
	}
	return handler.JSON(http.StatusOK, generateResponse{Code: code.Code, ValidFor: code.SecondsRemaining})
}

func (s *Service) verify(ctx context.Context, req verifyRequest) handler.Response {
	if req.Code == "" {
		return fail(http.StatusBadRequest, msgMissingCode, nil)
	}
	ok, err := s.attestor.Verify(ctx, string(req.Code))
	if err != nil {
		return seedFailure(err)
	}
	return handler.JSON(http.StatusOK, verifyResponse{Valid: ok})
}

func (s *Service) provisioningQR(ctx context.Context, _ struct{}) handler.Response {
	uri, err := s.attestor.ProvisioningURI(ctx, s.cfg.AccountName, s.cfg.Issuer)
	if err != nil {
		return seedFailure(err)
	}
	png, err := qrcode.PNG(uri, s.cfg.QRSize)
	if err != nil {
		return fail(http.StatusInternalServerError, msgInternal, err)
	}
	return handler.Blob("image/png", png)
}

// DenyTooManyAttempts is the rate limiter response for /verify-2fa.
func DenyTooManyAttempts(w http.ResponseWriter, r *http.Request) {
	_ = handler.JSON(http.StatusTooManyRequests, newErrorResponse(msgTooManyAttempts)).Render(w, r)
}

func seedFailure(err error) handler.Response {
	if errors.Is(err, attest.ErrSeedNotProvisioned) {
		return fail(http.StatusInternalServerError, msgNoSeed, err)
	}
	return fail(http.StatusInternalServerError, msgInternal, err)
}

func fail(status int, msg string, cause error) handler.Response {
	return handler.Error(handler.HTTPError{Status: status, Body: newErrorResponse(msg), Cause: cause})
}

// errorHandler renders HTTPErrors as they are and maps bind failures to a 400
// carrying bindMsg. Causes are logged, never returned to the client.
func (s *Service) errorHandler(bindMsg string) handler.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var httpErr handler.HTTPError
		switch {
		case errors.As(err, &httpErr):
			if httpErr.Status >= http.StatusInternalServerError && httpErr.Cause != nil {
				s.log.ErrorContext(r.Context(), "request failed", logger.Error(httpErr.Cause))
			}
		case bindMsg != "" && isBindError(err):
			httpErr = handler.HTTPError{Status: http.StatusBadRequest, Body: newErrorResponse(bindMsg)}
		default:
			s.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
			httpErr = handler.HTTPError{Status: http.StatusInternalServerError, Body: newErrorResponse(msgInternal)}
		}
		handler.DefaultErrorHandler(w, r, httpErr)
	}
}

func isBindError(err error) bool {
	return errors.Is(err, binder.ErrInvalidJSON) ||
		errors.Is(err, binder.ErrUnsupportedMediaType) ||
		errors.Is(err, binder.ErrBodyTooLarge)
}
