// Package secrets seals small values, such as a provisioned TOTP seed, before
// they are written to a shared store.
//
// A per-scope key is derived from a 32-byte master key with HKDF-SHA-256
// (the scope is the salt, typically the store key or the student identifier).
// The derived key drives AES-256-GCM; the random nonce is prepended to the
// output and the scope is bound as additional data.
//
// # Usage
//
//	master, _ := secrets.DecodeKey(os.Getenv("SEED_SEALING_KEY"))
//
//	sealed, err := secrets.SealString(master, []byte("attest:seed"), hexSeed)
//	if err != nil {
//	    // handle error
//	}
//
//	plain, err := secrets.OpenString(master, []byte("attest:seed"), sealed)
//
// # Error Handling
//
// Errors wrap the package sentinels ErrSealFailed, ErrOpenFailed,
// ErrInvalidCiphertext, ErrInvalidMasterKey and ErrEmptyScope; match them
// with errors.Is.
package secrets
