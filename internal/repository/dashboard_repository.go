package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository aggregates the counts behind the cached dashboard
// views.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// SummaryCounts retrieves the high-level totals for the dashboard.
func (r *DashboardRepository) SummaryCounts(ctx context.Context) (sections, subjects, schedules, studyLoads, students int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM sections),
			(SELECT COUNT(*) FROM subjects),
			(SELECT COUNT(*) FROM schedules),
			(SELECT COUNT(*) FROM study_loads),
			(SELECT COUNT(*) FROM students WHERE status = 'active')`,
	).Scan(&sections, &subjects, &schedules, &studyLoads, &students)
	return
}

// TeacherRanking is one row of the lowest-rated-teacher view.
type TeacherRanking struct {
	TeacherID    int     `json:"teacher_id"`
	TeacherName  string  `json:"teacher_name"`
	AverageScore float64 `json:"average_score"`
	RatingCount  int     `json:"rating_count"`
}

// LowestRatedTeachers retrieves teachers ranked by ascending average
// evaluation score. Ratings are written by the evaluation system, not
// this portal; teachers without ratings are excluded.
func (r *DashboardRepository) LowestRatedTeachers(ctx context.Context, limit int) ([]TeacherRanking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, TRIM(t.first_name || ' ' || t.last_name),
		        ROUND(AVG(tr.score)::numeric, 2), COUNT(*)
		 FROM teacher_ratings tr
		 JOIN teachers t ON t.id = tr.teacher_id
		 GROUP BY t.id, t.first_name, t.last_name
		 ORDER BY AVG(tr.score) ASC, t.id
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rankings []TeacherRanking
	for rows.Next() {
		var rk TeacherRanking
		if err := rows.Scan(&rk.TeacherID, &rk.TeacherName, &rk.AverageScore, &rk.RatingCount); err != nil {
			return nil, err
		}
		rankings = append(rankings, rk)
	}
	return rankings, rows.Err()
}
