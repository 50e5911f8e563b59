// Package attest is the TOTP liveness service: it accepts a seed encrypted
// for the seed owner's RSA key, stores it, and generates or verifies codes
// derived from it.
//
//	svc, err := attest.New(ownerKey, store, attest.WithLogger(log), attest.WithRecorder(m))
//	if err != nil {
//	    return err
//	}
//	if err := svc.ProvisionSeed(ctx, encryptedSeedB64); err != nil {
//	    // envelope.ErrDecryption or envelope.ErrInvalidSeedFormat
//	}
//	code, err := svc.Generate(ctx)
//
// Operations that need a seed return ErrSeedNotProvisioned until one is stored.
package attest
