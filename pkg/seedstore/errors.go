package seedstore

import "errors"

var (
	ErrNotFound           = errors.New("seed not found")
	ErrReadFailed         = errors.New("failed to read seed")
	ErrWriteFailed        = errors.New("failed to write seed")
	ErrUnsealFailed       = errors.New("failed to unseal stored seed")
	ErrUnsupportedBackend = errors.New("unsupported seed store backend")
)
