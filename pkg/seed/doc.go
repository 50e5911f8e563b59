// Package seed validates and encodes the per-student TOTP seed.
//
// A seed is a 64-character lowercase hexadecimal string carrying 256 bits of
// entropy. It travels hex-encoded between the provisioning side, the seed store
// and the service, while the TOTP algorithm expects the raw secret as an
// RFC 4648 base32 string. This package is the bridge between the two encodings.
//
// # Usage
//
//	s, err := seed.Parse(" a2f15f10fe07977e1a2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a\n")
//	if err != nil {
//		// errors.Is(err, seed.ErrInvalidFormat)
//	}
//	secret, err := s.Base32() // uppercase, padded
//
// ToBase32 accepts any even-length hex string, which lets callers convert
// secrets that are not full-size seeds:
//
//	b32, err := seed.ToBase32("48656c6c6f")
//
// # Error Handling
//
// Every malformed input is reported as ErrInvalidFormat, whether the length,
// the alphabet or the hex decoder rejected it. The package never checks entropy.
package seed
