// Package seedstore persists the provisioned TOTP seed.
//
// Two backends are provided. FileBackend writes a single file atomically and
// suits a single container with a mounted volume. RedisBackend stores the
// seed under one key so several replicas share it.
//
//	store := seedstore.New(seedstore.NewFileBackend("/data/seed.txt"))
//	if err := store.Save(ctx, sd); err != nil {
//	    return err
//	}
//	sd, err := store.Load(ctx)
//	if errors.Is(err, seedstore.ErrNotFound) {
//	    // not provisioned yet
//	}
//
// WithSealing encrypts the value at rest using pkg/secrets.
package seedstore
