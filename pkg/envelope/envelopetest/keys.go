// Package envelopetest provides cached RSA keys and PEM helpers for tests.
package envelopetest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"testing"
)

// Key sizes chosen so a signer signature fits the recipient's OAEP bound:
// 256-byte signatures against a 318-byte capacity.
const (
	SignerBits    = 2048
	RecipientBits = 3072
)

var (
	once      sync.Once
	signer    *rsa.PrivateKey
	recipient *rsa.PrivateKey
	stranger  *rsa.PrivateKey
	genErr    error
)

func generate() {
	if signer, genErr = rsa.GenerateKey(rand.Reader, SignerBits); genErr != nil {
		return
	}
	if recipient, genErr = rsa.GenerateKey(rand.Reader, RecipientBits); genErr != nil {
		return
	}
	stranger, genErr = rsa.GenerateKey(rand.Reader, SignerBits)
}

func keys(tb testing.TB) {
	tb.Helper()
	once.Do(generate)
	if genErr != nil {
		tb.Fatalf("generate test keys: %v", genErr)
	}
}

// Signer returns a 2048-bit key playing the student role.
func Signer(tb testing.TB) *rsa.PrivateKey {
	keys(tb)
	return signer
}

// Recipient returns a 3072-bit key playing the instructor role.
func Recipient(tb testing.TB) *rsa.PrivateKey {
	keys(tb)
	return recipient
}

// Stranger returns an unrelated 2048-bit key for negative cases.
func Stranger(tb testing.TB) *rsa.PrivateKey {
	keys(tb)
	return stranger
}

// PrivateKeyPKCS1PEM encodes key as an "RSA PRIVATE KEY" block.
func PrivateKeyPKCS1PEM(key *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
}

// PrivateKeyPKCS8PEM encodes key as a "PRIVATE KEY" block.
func PrivateKeyPKCS8PEM(tb testing.TB, key *rsa.PrivateKey) []byte {
	tb.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		tb.Fatalf("marshal pkcs8: %v", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
}

// PublicKeyPKIXPEM encodes pub as a "PUBLIC KEY" block.
func PublicKeyPKIXPEM(tb testing.TB, pub *rsa.PublicKey) []byte {
	tb.Helper()
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		tb.Fatalf("marshal pkix: %v", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}

// PublicKeyPKCS1PEM encodes pub as an "RSA PUBLIC KEY" block.
func PublicKeyPKCS1PEM(pub *rsa.PublicKey) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PUBLIC KEY", Bytes: x509.MarshalPKCS1PublicKey(pub)})
}
