package attest

import "errors"

var (
	ErrSeedNotProvisioned = errors.New("seed not provisioned")
	ErrMissingOwnerKey    = errors.New("seed owner key is required")
	ErrMissingStore       = errors.New("seed store is required")
)
