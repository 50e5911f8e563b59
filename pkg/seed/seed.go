package seed

import (
	"encoding/base32"
	"encoding/hex"
	"errors"
	"strings"
)

const (
	// Length is the number of hex characters in a seed (256 bits).
	Length = 64

	alphabet = "0123456789abcdef"
)

// Seed is a validated 64-character lowercase hex secret.
type Seed string

// Validate reports whether s is a well-formed seed.
// Uppercase hex digits are rejected: the canonical form is lowercase only.
func Validate(s string) error {
	if len(s) != Length {
		return ErrInvalidFormat
	}
	for i := range len(s) {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return ErrInvalidFormat
		}
	}
	return nil
}

// Parse trims surrounding whitespace and validates the result.
func Parse(s string) (Seed, error) {
	s = strings.TrimSpace(s)
	if err := Validate(s); err != nil {
		return "", err
	}
	return Seed(s), nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests and constants.
func MustParse(s string) Seed {
	sd, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sd
}

// ToBase32 decodes a hex string and re-encodes the raw bytes as padded,
// uppercase RFC 4648 base32.
func ToBase32(hexSeed string) (string, error) {
	raw, err := hex.DecodeString(hexSeed)
	if err != nil {
		return "", errors.Join(ErrInvalidFormat, err)
	}
	return base32.StdEncoding.EncodeToString(raw), nil
}

// String returns the hex form.
func (s Seed) String() string {
	return string(s)
}

// Base32 returns the seed in the encoding consumed by the TOTP algorithm.
// A Seed built by conversion instead of Parse is validated first and fails
// with ErrInvalidFormat.
func (s Seed) Base32() (string, error) {
	if err := Validate(string(s)); err != nil {
		return "", err
	}
	return ToBase32(string(s))
}

// Bytes returns the raw 32-byte secret, with the same validation as Base32.
func (s Seed) Bytes() ([]byte, error) {
	if err := Validate(string(s)); err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(string(s))
	if err != nil {
		return nil, errors.Join(ErrInvalidFormat, err)
	}
	return raw, nil
}
