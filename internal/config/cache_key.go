package config

import (
	"fmt"
)

// CacheKeyStruct builds every cache key the portal uses. Keys are only
// ever produced here so invalidation sets and readers cannot drift on
// spelling.
type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SchedulesKey returns the cache key for the resolved schedules list
// (meetings joined with room and building names).
func (r *CacheKeyStruct) SchedulesKey() string {
	return "views:schedules"
}

// SectionsWithLoadKey returns the cache key for the sections list
// aggregated with study-load counts.
func (r *CacheKeyStruct) SectionsWithLoadKey() string {
	return "views:sections_with_load"
}

// DashboardStatsKey returns the cache key for the dashboard aggregate
// statistics.
func (r *CacheKeyStruct) DashboardStatsKey() string {
	return "views:dashboard_stats"
}

// TeacherRankingsKey returns the cache key for the lowest-rated-teacher
// ranking view.
func (r *CacheKeyStruct) TeacherRankingsKey() string {
	return "views:teacher_rankings"
}

// SectionRosterKey returns the cache key for a single section's roster.
func (r *CacheKeyStruct) SectionRosterKey(sectionID int) string {
	return fmt.Sprintf("section:%d:roster", sectionID)
}

// SectionStudyLoadKey returns the cache key for a single section's
// study-load listing.
func (r *CacheKeyStruct) SectionStudyLoadKey(sectionID int) string {
	return fmt.Sprintf("section:%d:study_load", sectionID)
}

var CacheKey = NewCacheKeyStruct()
