package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// SealString seals plaintext and returns base64 text suitable for a text store.
func SealString(masterKey, scope []byte, plaintext string) (string, error) {
	sealed, err := Seal(masterKey, scope, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenString reverses SealString.
func OpenString(masterKey, scope []byte, sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	plaintext, err := Open(masterKey, scope, raw)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Seal encrypts data with AES-256-GCM under a key derived for scope.
// Output layout: nonce || ciphertext || tag. The scope is also bound as
// additional data so a blob cannot be replayed into another scope.
func Seal(masterKey, scope, data []byte) ([]byte, error) {
	aead, err := newAEAD(masterKey, scope)
	if err != nil {
		return nil, errors.Join(ErrSealFailed, err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrSealFailed, err)
	}

	return aead.Seal(nonce, nonce, data, scope), nil
}

// Open decrypts a blob produced by Seal with the same master key and scope.
func Open(masterKey, scope, sealed []byte) ([]byte, error) {
	aead, err := newAEAD(masterKey, scope)
	if err != nil {
		return nil, errors.Join(ErrOpenFailed, err)
	}

	nonceSize := aead.NonceSize()
	if len(sealed) < nonceSize+aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, scope)
	if err != nil {
		return nil, errors.Join(ErrOpenFailed, err)
	}
	return plaintext, nil
}

func newAEAD(masterKey, scope []byte) (cipher.AEAD, error) {
	if err := ValidateKey(masterKey, scope); err != nil {
		return nil, err
	}

	key, err := deriveKey(masterKey, scope)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
