package seed

import "errors"

var (
	// ErrInvalidFormat is returned when a seed or hex secret is malformed.
	ErrInvalidFormat = errors.New("invalid seed format")
)
