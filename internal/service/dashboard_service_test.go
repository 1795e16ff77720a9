package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/cache"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/scholara/campus-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedRankingsCache plants a full ranking list in Redis so the service
// reads from the hit path and never touches the repository.
func seedRankingsCache(t *testing.T, n int) *DashboardService {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	rankings := make([]repository.TeacherRanking, n)
	for i := range rankings {
		rankings[i] = repository.TeacherRanking{
			TeacherID:    i + 1,
			TeacherName:  fmt.Sprintf("Teacher %d", i+1),
			AverageScore: 1 + float64(i)*0.1,
			RatingCount:  3,
		}
	}
	payload, err := json.Marshal(rankings)
	require.NoError(t, err)
	require.NoError(t, rdb.Set(context.Background(), config.CacheKey.TeacherRankingsKey(), payload, time.Minute).Err())

	coord := cache.NewCoordinator(rdb, zerolog.Nop())
	return NewDashboardService(nil, coord, time.Minute, zerolog.Nop())
}

func TestLowestRatedTeachersSlicesPerRequest(t *testing.T) {
	svc := seedRankingsCache(t, 20)
	ctx := context.Background()

	// Different limits against the same cached list each get their own
	// prefix; the first caller's limit must not stick.
	five, err := svc.LowestRatedTeachers(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, five, 5)

	ten, err := svc.LowestRatedTeachers(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, ten, 10)
	assert.Equal(t, five, ten[:5])

	// A limit past the cached size returns everything there is.
	all, err := svc.LowestRatedTeachers(ctx, MaxRankingLimit)
	require.NoError(t, err)
	assert.Len(t, all, 20)

	// Worst score first survives the slicing.
	assert.Equal(t, 1, five[0].TeacherID)
	assert.InDelta(t, 1.0, five[0].AverageScore, 1e-9)
}

func TestLowestRatedTeachersRejectsBadLimit(t *testing.T) {
	svc := seedRankingsCache(t, 3)
	ctx := context.Background()

	for _, limit := range []int{0, -1, MaxRankingLimit + 1} {
		_, err := svc.LowestRatedTeachers(ctx, limit)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("LowestRatedTeachers(limit=%d) error = %v, want ErrInvalidInput", limit, err)
		}
	}
}
