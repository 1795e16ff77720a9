package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/cache"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/scholara/campus-backend/internal/repository"
)

// DashboardStats consolidates the portal's headline counts.
type DashboardStats struct {
	TotalSections   int `json:"total_sections"`
	TotalSubjects   int `json:"total_subjects"`
	TotalSchedules  int `json:"total_schedules"`
	TotalStudyLoads int `json:"total_study_loads"`
	ActiveStudents  int `json:"active_students"`
}

// DashboardService serves the cached dashboard aggregates.
type DashboardService struct {
	repo  *repository.DashboardRepository
	cache *cache.Coordinator
	ttl   time.Duration
	log   zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository, cacheCoord *cache.Coordinator, ttl time.Duration, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		repo:  repo,
		cache: cacheCoord,
		ttl:   ttl,
		log:   log.With().Str("component", "dashboard_service").Logger(),
	}
}

// Stats serves the cached headline counts.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	err := s.cache.Remember(ctx, config.CacheKey.DashboardStatsKey(), s.ttl, &stats,
		func(ctx context.Context) (any, error) {
			sections, subjects, schedules, loads, students, err := s.repo.SummaryCounts(ctx)
			if err != nil {
				return nil, err
			}
			return DashboardStats{
				TotalSections:   sections,
				TotalSubjects:   subjects,
				TotalSchedules:  schedules,
				TotalStudyLoads: loads,
				ActiveStudents:  students,
			}, nil
		})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// MaxRankingLimit bounds the rankings page size. The cache always holds
// the full top-MaxRankingLimit list under one key; each request slices
// its own prefix so the first caller's limit never leaks to the next.
const MaxRankingLimit = 100

// LowestRatedTeachers serves the cached evaluation ranking, worst
// average score first, trimmed to limit entries.
func (s *DashboardService) LowestRatedTeachers(ctx context.Context, limit int) ([]repository.TeacherRanking, error) {
	if limit < 1 || limit > MaxRankingLimit {
		return nil, fmt.Errorf("%w: ranking limit %d out of range [1,%d]", ErrInvalidInput, limit, MaxRankingLimit)
	}

	var rankings []repository.TeacherRanking
	err := s.cache.Remember(ctx, config.CacheKey.TeacherRankingsKey(), s.ttl, &rankings,
		func(ctx context.Context) (any, error) {
			loaded, err := s.repo.LowestRatedTeachers(ctx, MaxRankingLimit)
			if err != nil {
				return nil, err
			}
			if loaded == nil {
				loaded = []repository.TeacherRanking{}
			}
			return loaded, nil
		})
	if err != nil {
		return nil, err
	}

	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings, nil
}

// Prewarm populates the dashboard caches before traffic arrives.
func (s *DashboardService) Prewarm(ctx context.Context) error {
	if _, err := s.Stats(ctx); err != nil {
		return err
	}
	if _, err := s.LowestRatedTeachers(ctx, MaxRankingLimit); err != nil {
		return err
	}
	s.log.Info().Msg("Dashboard caches prewarmed")
	return nil
}
