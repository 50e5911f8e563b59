// Package redis dials the Redis instance shared by the seed store and the
// rate limiter.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// Ping and Healthcheck give a bounded liveness probe over any
// redis.UniversalClient.
package redis
