package envelope

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/attestkit/pkg/seed"
)

// oaepOptions fixes OAEP to SHA-256 for both the label hash and MGF1, empty label.
var oaepOptions = &rsa.OAEPOptions{
	Hash:    crypto.SHA256,
	MGFHash: crypto.SHA256,
}

// pssOptions uses the largest salt the key and digest allow.
var pssOptions = &rsa.PSSOptions{
	SaltLength: rsa.PSSSaltLengthAuto,
	Hash:       crypto.SHA256,
}

// MaxPlaintextSize returns the largest payload OAEP-SHA256 can carry for pub:
// modulus bytes - 2*hash length - 2. RSA-4096 allows 446 bytes.
func MaxPlaintextSize(pub *rsa.PublicKey) int {
	if pub == nil || pub.N == nil {
		return 0
	}
	return max(pub.Size()-2*sha256.Size-2, 0)
}

// Decrypt opens an OAEP ciphertext with the owner's private key.
// Every failure collapses into ErrDecryption.
func Decrypt(ciphertext []byte, priv *rsa.PrivateKey) ([]byte, error) {
	if err := checkPrivateKey(priv); err != nil {
		return nil, err
	}

	plaintext, err := priv.Decrypt(rand.Reader, ciphertext, oaepOptions)
	if err != nil {
		return nil, ErrDecryption
	}
	return plaintext, nil
}

// DecryptSeed decrypts a seed payload and validates it.
// The plaintext must be UTF-8; surrounding whitespace is stripped before validation.
func DecryptSeed(ciphertext []byte, priv *rsa.PrivateKey) (seed.Seed, error) {
	plaintext, err := Decrypt(ciphertext, priv)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidSeedFormat
	}
	return seed.Parse(string(plaintext))
}

// DecryptSeedBase64 is DecryptSeed for the base64 transport form.
// Undecodable transport text is reported as ErrDecryption.
func DecryptSeedBase64(encoded string, priv *rsa.PrivateKey) (seed.Seed, error) {
	ciphertext, err := DecodeString(encoded)
	if err != nil {
		return "", ErrDecryption
	}
	return DecryptSeed(ciphertext, priv)
}

// Sign produces an RSA-PSS signature over message. The message is hashed
// with SHA-256 here; callers pass the raw bytes being attested.
// Signatures are randomized: repeated calls return different valid signatures.
func Sign(message []byte, priv *rsa.PrivateKey) ([]byte, error) {
	if err := checkPrivateKey(priv); err != nil {
		return nil, err
	}

	digest := sha256.Sum256(message)
	sig, err := rsa.SignPSS(rand.Reader, priv, crypto.SHA256, digest[:], pssOptions)
	if err != nil {
		return nil, errors.Join(ErrSigning, err)
	}
	return sig, nil
}

// Verify checks an RSA-PSS signature produced by Sign.
func Verify(message, signature []byte, pub *rsa.PublicKey) error {
	if err := checkPublicKey(pub); err != nil {
		return err
	}

	digest := sha256.Sum256(message)
	if err := rsa.VerifyPSS(pub, crypto.SHA256, digest[:], signature, pssOptions); err != nil {
		return ErrSignatureInvalid
	}
	return nil
}

// EncryptForRecipient seals data with OAEP so only the holder of the matching
// private key can read it. Data larger than MaxPlaintextSize fails with
// ErrEncryption and is never truncated.
func EncryptForRecipient(data []byte, pub *rsa.PublicKey) ([]byte, error) {
	if err := checkPublicKey(pub); err != nil {
		return nil, err
	}

	if limit := MaxPlaintextSize(pub); len(data) > limit {
		return nil, errors.Join(ErrEncryption,
			fmt.Errorf("payload is %d bytes, RSA-%d with OAEP-SHA256 carries at most %d", len(data), pub.N.BitLen(), limit))
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, data, nil)
	if err != nil {
		return nil, errors.Join(ErrEncryption, err)
	}
	return ciphertext, nil
}

func checkPrivateKey(priv *rsa.PrivateKey) error {
	if priv == nil || priv.N == nil {
		return errors.Join(ErrKeyLoad, errors.New("missing private key"))
	}
	if err := priv.Validate(); err != nil {
		return errors.Join(ErrKeyLoad, err)
	}
	return nil
}

func checkPublicKey(pub *rsa.PublicKey) error {
	if pub == nil || pub.N == nil || pub.N.Sign() <= 0 || pub.E < 2 {
		return errors.Join(ErrKeyLoad, errors.New("missing or malformed public key"))
	}
	return nil
}

// DecodeString decodes standard base64, ignoring surrounding whitespace.
func DecodeString(s string) ([]byte, error) {
	return base64Std.DecodeString(strings.TrimSpace(s))
}

// EncodeToString encodes to standard padded base64.
func EncodeToString(b []byte) string {
	return base64Std.EncodeToString(b)
}
