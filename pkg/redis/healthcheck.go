package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// PingTimeout bounds a ping whose context carries no deadline.
const PingTimeout = 2 * time.Second

// Ping reports ErrUnhealthy unless the server answers within the context
// deadline, or PingTimeout when there is none.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	if client == nil {
		return errors.Join(ErrUnhealthy, errors.New("nil client"))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, PingTimeout)
		defer cancel()
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrUnhealthy, err)
	}
	return nil
}

// Healthcheck adapts Ping to a readiness probe.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error { return Ping(ctx, client) }
}
