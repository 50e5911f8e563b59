package envelope

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// PEM block types understood by the parsers.
const (
	pemPKCS1Private = "RSA PRIVATE KEY"
	pemPKCS8Private = "PRIVATE KEY"
	pemEncrypted    = "ENCRYPTED PRIVATE KEY"
	pemPKCS1Public  = "RSA PUBLIC KEY"
	pemPKIXPublic   = "PUBLIC KEY"
)

// ParsePrivateKeyPEM parses an unencrypted RSA private key in PKCS#1 or PKCS#8 form.
func ParsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.Join(ErrKeyLoad, errors.New("no PEM block found"))
	}

	switch block.Type {
	case pemPKCS1Private:
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Join(ErrKeyLoad, err)
		}
		return key, nil
	case pemPKCS8Private:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Join(ErrKeyLoad, err)
		}
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.Join(ErrKeyLoad, fmt.Errorf("unsupported private key type %T", parsed))
		}
		return key, nil
	case pemEncrypted:
		return nil, errors.Join(ErrKeyLoad, errors.New("password-protected keys are not supported"))
	default:
		return nil, errors.Join(ErrKeyLoad, fmt.Errorf("unexpected PEM block %q", block.Type))
	}
}

// ParsePublicKeyPEM parses an RSA public key in PKCS#1 or PKIX (SubjectPublicKeyInfo) form.
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.Join(ErrKeyLoad, errors.New("no PEM block found"))
	}

	switch block.Type {
	case pemPKCS1Public:
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, errors.Join(ErrKeyLoad, err)
		}
		return key, nil
	case pemPKIXPublic:
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, errors.Join(ErrKeyLoad, err)
		}
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, errors.Join(ErrKeyLoad, fmt.Errorf("unsupported public key type %T", parsed))
		}
		return key, nil
	default:
		return nil, errors.Join(ErrKeyLoad, fmt.Errorf("unexpected PEM block %q", block.Type))
	}
}

// LoadPrivateKeyFile reads and parses a PEM private key from disk.
func LoadPrivateKeyFile(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrKeyLoad, err)
	}
	return ParsePrivateKeyPEM(data)
}

// LoadPublicKeyFile reads and parses a PEM public key from disk.
func LoadPublicKeyFile(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrKeyLoad, err)
	}
	return ParsePublicKeyPEM(data)
}
