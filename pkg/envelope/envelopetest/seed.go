package envelopetest

import (
	"crypto/rsa"
	"testing"

	"github.com/dmitrymomot/attestkit/pkg/envelope"
)

// EncryptedSeed encrypts plaintext for pub and returns the base64 transport
// form, as delivered to the service.
func EncryptedSeed(tb testing.TB, plaintext string, pub *rsa.PublicKey) string {
	tb.Helper()
	ct, err := envelope.EncryptForRecipient([]byte(plaintext), pub)
	if err != nil {
		tb.Fatalf("envelopetest: encrypt seed: %v", err)
	}
	return envelope.EncodeToString(ct)
}
