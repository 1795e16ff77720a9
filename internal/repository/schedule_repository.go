package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scholara/campus-backend/internal/model"
)

// Meeting is the slice of a schedule row the conflict detector compares
// against: a weekday plus a half-open [start, end) interval.
type Meeting struct {
	ScheduleID int
	StartTime  string
	EndTime    string
}

// ScheduleRepository handles class meeting data access.
type ScheduleRepository struct {
	db DB
}

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: pool}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *ScheduleRepository) WithTx(tx pgx.Tx) *ScheduleRepository {
	return &ScheduleRepository{db: tx}
}

// MeetingsForTeacher retrieves every meeting on the given weekday whose
// parent assignment resolves to the teacher and is still active.
// Meetings of other teachers are invisible to conflict detection.
func (r *ScheduleRepository) MeetingsForTeacher(ctx context.Context, teacherID int, dayOfWeek string) ([]Meeting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.start_time, s.end_time
		 FROM schedules s
		 JOIN teacher_assignments a ON a.id = s.assignment_id
		 WHERE a.teacher_id = $1 AND a.status = 'active' AND s.day_of_week = $2`,
		teacherID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []Meeting
	for rows.Next() {
		var m Meeting
		if err := rows.Scan(&m.ScheduleID, &m.StartTime, &m.EndTime); err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// Create inserts a new meeting.
func (r *ScheduleRepository) Create(ctx context.Context, s *model.Schedule) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO schedules (assignment_id, day_of_week, start_time, end_time, room_assignment_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.AssignmentID, s.DayOfWeek, s.StartTime, s.EndTime, s.RoomAssignmentID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// ListViews retrieves all meetings resolved with teacher, subject,
// section, room and building names. Backs the cached schedules view.
func (r *ScheduleRepository) ListViews(ctx context.Context) ([]model.ScheduleView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.day_of_week, s.start_time, s.end_time,
		        TRIM(t.first_name || ' ' || t.last_name), sub.code, sub.title,
		        COALESCE(sec.name, ''),
		        COALESCE(b.name, ''), COALESCE(ra.floor, 0), COALESCE(ra.room, '')
		 FROM schedules s
		 JOIN teacher_assignments a ON a.id = s.assignment_id
		 JOIN teachers t ON t.id = a.teacher_id
		 JOIN subjects sub ON sub.id = a.subject_id
		 LEFT JOIN sections sec ON sec.id = a.section_id
		 LEFT JOIN section_room_assignments ra ON ra.id = s.room_assignment_id
		 LEFT JOIN buildings b ON b.id = ra.building_id
		 ORDER BY s.day_of_week, s.start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []model.ScheduleView
	for rows.Next() {
		var v model.ScheduleView
		if err := rows.Scan(&v.ID, &v.DayOfWeek, &v.StartTime, &v.EndTime,
			&v.TeacherName, &v.SubjectCode, &v.SubjectTitle, &v.SectionName,
			&v.BuildingName, &v.Floor, &v.Room); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// Delete removes a meeting by its ID.
func (r *ScheduleRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	return err
}
