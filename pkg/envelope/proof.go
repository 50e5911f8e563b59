package envelope

import (
	"crypto/rsa"
	"encoding/base64"
)

var base64Std = base64.StdEncoding

// CommitProof signs the UTF-8 bytes of commitHash with the student's key, then
// encrypts the signature for the instructor, and returns the base64 artifact.
// Sign-then-encrypt: the recipient can only check authenticity after decrypting.
//
// The signer's signature must fit the recipient's OAEP bound, so an RSA-4096
// signer cannot target an RSA-4096 recipient (512 > 446 bytes). That pairing
// fails with ErrEncryption.
func CommitProof(commitHash string, signer *rsa.PrivateKey, recipient *rsa.PublicKey) (string, error) {
	sig, err := Sign([]byte(commitHash), signer)
	if err != nil {
		return "", err
	}

	sealed, err := EncryptForRecipient(sig, recipient)
	if err != nil {
		return "", err
	}

	return EncodeToString(sealed), nil
}

// OpenCommitProof is the instructor side of CommitProof: it decodes and
// decrypts the artifact, then verifies the signature against commitHash.
func OpenCommitProof(proof, commitHash string, recipient *rsa.PrivateKey, signer *rsa.PublicKey) error {
	sealed, err := DecodeString(proof)
	if err != nil {
		return ErrDecryption
	}

	sig, err := Decrypt(sealed, recipient)
	if err != nil {
		return err
	}

	return Verify([]byte(commitHash), sig, signer)
}
