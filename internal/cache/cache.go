// Package cache implements the read-through view cache. List and
// aggregate endpoints wrap their queries in Remember; every mutation
// flushes the keys its config.InvalidationSets entry names before
// reporting success. A missed invalidation serves stale data for at
// most the TTL window.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/config"
)

// Coordinator is the shared read-through cache over Redis.
type Coordinator struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(rdb *redis.Client, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		rdb: rdb,
		log: log.With().Str("component", "cache").Logger(),
	}
}

// Remember returns the cached value under key, or invokes producer,
// stores its JSON form with the given TTL and returns it. dest must be
// a pointer; both the hit and miss paths unmarshal into it so callers
// see one shape regardless of where the value came from.
//
// Concurrent misses for the same key each run producer and race the
// SET; last write wins. That is tolerated at this system's scale — the
// values are idempotent query results.
func (c *Coordinator) Remember(ctx context.Context, key string, ttl time.Duration, dest any, producer func(ctx context.Context) (any, error)) error {
	cached, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		if uerr := json.Unmarshal(cached, dest); uerr == nil {
			return nil
		}
		// Corrupt payload: drop it and fall through to recompute.
		c.log.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
		_ = c.rdb.Del(ctx, key).Err()
	} else if !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cache get %s: %w", key, err)
	}

	value, err := producer(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		// Serving a fresh value matters more than caching it.
		c.log.Warn().Err(err).Str("key", key).Msg("Cache set failed")
	}

	return json.Unmarshal(payload, dest)
}

// Invalidate deletes the given keys in one round trip.
func (c *Coordinator) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// InvalidateMutation flushes the dependency-table entry for a mutation.
// Redis being down degrades to bounded staleness (the TTL), so failures
// are logged, not propagated — the write itself already committed.
func (c *Coordinator) InvalidateMutation(ctx context.Context, m config.Mutation, sectionID int) {
	keys := config.KeysFor(m, sectionID)
	if err := c.Invalidate(ctx, keys...); err != nil {
		c.log.Warn().Err(err).Str("mutation", string(m)).Strs("keys", keys).
			Msg("Cache invalidation failed; stale until TTL")
	}
}
