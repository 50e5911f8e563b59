// Package ratelimiter is a token bucket limiter with in-memory and Redis
// stores and an HTTP middleware.
//
// The service uses it to cap TOTP verification attempts per client address,
// which keeps brute forcing a six digit code impractical.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//	    return err
//	}
//	r.With(ratelimiter.Middleware(bucket, keyFunc, deny, onError)).Post("/verify-2fa", h)
//
// A denied request does not drain the bucket further.
package ratelimiter
