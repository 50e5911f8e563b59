// Package envelope implements the asymmetric envelope used by the commit-proof
// protocol and by seed delivery.
//
// Two directional pairs are provided on top of RSA:
//
//   - Seed delivery: the provisioning side encrypts a 64-hex seed to the
//     seed owner's public key with EncryptForRecipient; the service opens it with
//     DecryptSeed (or DecryptSeedBase64 for the transport form).
//   - Commit proof: the student signs a commit hash with Sign (RSA-PSS) and
//     seals the signature for the instructor with EncryptForRecipient (RSA-OAEP).
//     CommitProof performs both steps and base64-encodes the result;
//     OpenCommitProof reverses it on the instructor side.
//
// OAEP uses SHA-256 for both the hash and MGF1 with an empty label. PSS uses
// SHA-256, MGF1-SHA-256 and the largest salt permitted by the key size.
//
// # Capacity
//
// OAEP carries at most modulus_bytes - 66 bytes. A PSS signature is as long
// as the signer's modulus, so the recipient key must be larger than the
// signer key by at least 66 bytes of modulus. EncryptForRecipient rejects
// oversized payloads with ErrEncryption instead of truncating them.
//
// # Error Handling
//
// All functions return sentinel errors that can be inspected with errors.Is:
// ErrKeyLoad, ErrDecryption, ErrInvalidSeedFormat, ErrEncryption, ErrSigning
// and ErrSignatureInvalid. ErrDecryption never wraps an underlying cause so
// callers cannot leak padding-oracle information by accident.
//
// Key handles are parsed *rsa.PrivateKey / *rsa.PublicKey values. The PEM
// helpers in keys.go exist for binaries that load unencrypted keys from disk.
// Every function is stateless and safe for concurrent use.
package envelope
