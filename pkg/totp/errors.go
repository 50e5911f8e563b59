package totp

import "errors"

var (
	ErrMissingSecret        = errors.New("missing secret")
	ErrInvalidSecret        = errors.New("invalid secret")
	ErrInvalidSeed          = errors.New("invalid TOTP seed")
	ErrMissingAccountName   = errors.New("missing account name")
	ErrMissingIssuer        = errors.New("missing issuer")
	ErrInvalidOTP           = errors.New("invalid OTP format")
	ErrFailedToValidateTOTP = errors.New("failed to validate TOTP")
	ErrFailedToGenerateTOTP = errors.New("failed to generate TOTP")
)
