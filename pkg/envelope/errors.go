package envelope

import (
	"errors"

	"github.com/dmitrymomot/attestkit/pkg/seed"
)

var (
	// ErrKeyLoad is returned when a key handle cannot be parsed or is unusable at first use.
	ErrKeyLoad = errors.New("failed to load key")

	// ErrDecryption is returned for every OAEP decryption failure.
	// It intentionally carries no cause: wrong key, corrupted, truncated and
	// oversized ciphertexts are indistinguishable to the caller.
	ErrDecryption = errors.New("decryption failed")

	// ErrInvalidSeedFormat is returned when a decrypted payload is not a valid seed.
	ErrInvalidSeedFormat = seed.ErrInvalidFormat

	// ErrEncryption is returned when the plaintext does not fit the OAEP bound of the recipient key.
	ErrEncryption = errors.New("encryption failed")

	// ErrSigning is returned when PSS signing fails.
	ErrSigning = errors.New("signing failed")

	// ErrSignatureInvalid is returned when a PSS signature does not verify.
	ErrSignatureInvalid = errors.New("signature verification failed")
)
