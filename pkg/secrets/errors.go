package secrets

import "errors"

var (
	// Key validation errors
	ErrInvalidMasterKey = errors.New("invalid master key: must be 32 bytes")
	ErrEmptyScope       = errors.New("sealing scope must not be empty")

	// Sealing errors
	ErrSealFailed        = errors.New("seal failed")
	ErrOpenFailed        = errors.New("open failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")

	// Key derivation errors
	ErrKeyDerivationFailed = errors.New("key derivation failed")
)
