package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator(t *testing.T) (*Coordinator, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCoordinator(rdb, zerolog.Nop()), mr
}

type view struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRememberPopulatesAndHits(t *testing.T) {
	c, _ := newTestCoordinator(t)
	ctx := context.Background()

	calls := 0
	producer := func(ctx context.Context) (any, error) {
		calls++
		return view{Name: "schedules", Count: 3}, nil
	}

	var got view
	require.NoError(t, c.Remember(ctx, "views:test", time.Minute, &got, producer))
	assert.Equal(t, view{Name: "schedules", Count: 3}, got)
	assert.Equal(t, 1, calls)

	// Second read must come from the cache.
	var again view
	require.NoError(t, c.Remember(ctx, "views:test", time.Minute, &again, producer))
	assert.Equal(t, got, again)
	assert.Equal(t, 1, calls)
}

func TestInvalidateForcesRecompute(t *testing.T) {
	c, _ := newTestCoordinator(t)
	ctx := context.Background()

	calls := 0
	producer := func(ctx context.Context) (any, error) {
		calls++
		return view{Name: "v", Count: calls}, nil
	}

	var got view
	require.NoError(t, c.Remember(ctx, "views:inv", time.Minute, &got, producer))
	require.Equal(t, 1, got.Count)

	require.NoError(t, c.Invalidate(ctx, "views:inv"))

	require.NoError(t, c.Remember(ctx, "views:inv", time.Minute, &got, producer))
	assert.Equal(t, 2, got.Count, "invalidated key must re-invoke the producer")
}

func TestRememberRecomputesAfterTTL(t *testing.T) {
	c, mr := newTestCoordinator(t)
	ctx := context.Background()

	calls := 0
	producer := func(ctx context.Context) (any, error) {
		calls++
		return view{Count: calls}, nil
	}

	var got view
	require.NoError(t, c.Remember(ctx, "views:ttl", time.Minute, &got, producer))
	require.Equal(t, 1, calls)

	mr.FastForward(2 * time.Minute)

	require.NoError(t, c.Remember(ctx, "views:ttl", time.Minute, &got, producer))
	assert.Equal(t, 2, calls, "expired key must re-invoke the producer")
}

func TestRememberDropsCorruptEntries(t *testing.T) {
	c, mr := newTestCoordinator(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("views:bad", "{not json"))

	var got view
	err := c.Remember(ctx, "views:bad", time.Minute, &got, func(ctx context.Context) (any, error) {
		return view{Name: "fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Name)
}

func TestInvalidateMutationFlushesDependencyTable(t *testing.T) {
	c, mr := newTestCoordinator(t)
	ctx := context.Background()

	sectionID := 9
	for _, key := range config.KeysFor(config.MutationScheduleCreate, sectionID) {
		require.NoError(t, mr.Set(key, `{"stale":true}`))
	}
	// An unrelated key must survive the flush.
	require.NoError(t, mr.Set(config.CacheKey.SectionRosterKey(123), `{"keep":true}`))

	c.InvalidateMutation(ctx, config.MutationScheduleCreate, sectionID)

	for _, key := range config.KeysFor(config.MutationScheduleCreate, sectionID) {
		assert.False(t, mr.Exists(key), "key %s should be flushed", key)
	}
	assert.True(t, mr.Exists(config.CacheKey.SectionRosterKey(123)))
}
