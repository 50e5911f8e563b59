package codelog

import "errors"

var (
	ErrSeedMissing = errors.New("seed missing")
	ErrWriteFailed = errors.New("failed to write code line")
	ErrNilWriter   = errors.New("nil output writer")
)
