package redis

import "errors"

var (
	ErrEmptyURL   = errors.New("redis url is empty")
	ErrInvalidURL = errors.New("invalid redis url")
	ErrNotReady   = errors.New("redis not reachable before connect timeout")
	ErrUnhealthy  = errors.New("redis ping failed")
)
