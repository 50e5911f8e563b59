package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required master key size (AES-256).
	KeySize = 32

	// hkdfInfo provides domain separation for derived sealing keys.
	hkdfInfo = "attestkit-seed-seal-v1"
)

// ValidateKey checks the master key length and that a scope was supplied.
func ValidateKey(masterKey, scope []byte) error {
	if len(masterKey) != KeySize {
		return ErrInvalidMasterKey
	}
	if len(scope) == 0 {
		return ErrEmptyScope
	}
	return nil
}

// deriveKey expands the master key into a per-scope key with HKDF-SHA256,
// using the scope as salt. Callers must clearBytes the result.
func deriveKey(masterKey, scope []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, masterKey, scope, []byte(hkdfInfo))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateKey creates a random master key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// DecodeKey decodes a base64 master key as found in configuration.
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, errors.Join(ErrInvalidMasterKey, err)
	}
	if len(key) != KeySize {
		return nil, ErrInvalidMasterKey
	}
	return key, nil
}
