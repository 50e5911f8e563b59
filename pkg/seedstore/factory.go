package seedstore

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/attestkit/pkg/secrets"
)

// FromConfig builds a Store from cfg. client is only required for the redis
// backend. A configured SealingKey enables sealing, scoped to the storage
// location so a blob copied between locations does not open.
func FromConfig(cfg Config, client redis.UniversalClient) (*Store, error) {
	var (
		backend Backend
		scope   string
	)

	switch cfg.BackendName() {
	case BackendFile:
		fb := NewFileBackend(cfg.Path)
		backend, scope = fb, "file:"+fb.Path()
	case BackendRedis:
		if client == nil {
			return nil, errors.Join(ErrUnsupportedBackend, errors.New("redis backend requires a client"))
		}
		rb := NewRedisBackend(client, cfg.RedisKey)
		backend, scope = rb, "redis:"+rb.Key()
	default:
		return nil, errors.Join(ErrUnsupportedBackend, fmt.Errorf("backend %q", cfg.Backend))
	}

	var opts []Option
	if cfg.SealingKey != "" {
		key, err := secrets.DecodeKey(cfg.SealingKey)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSealing(key, []byte(scope)))
	}

	return New(backend, opts...), nil
}
