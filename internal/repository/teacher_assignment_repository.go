package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scholara/campus-backend/internal/model"
)

// TeacherAssignmentRepository handles teaching assignment data access.
type TeacherAssignmentRepository struct {
	db DB
}

// NewTeacherAssignmentRepository creates a new TeacherAssignmentRepository.
func NewTeacherAssignmentRepository(pool *pgxpool.Pool) *TeacherAssignmentRepository {
	return &TeacherAssignmentRepository{db: pool}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *TeacherAssignmentRepository) WithTx(tx pgx.Tx) *TeacherAssignmentRepository {
	return &TeacherAssignmentRepository{db: tx}
}

const assignmentColumns = `id, teacher_id, subject_id, section_id, semester, school_year, status, created_at, updated_at`

func scanAssignment(row pgx.Row, a *model.TeacherAssignment) error {
	return row.Scan(&a.ID, &a.TeacherID, &a.SubjectID, &a.SectionID, &a.Semester,
		&a.SchoolYear, &a.Status, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID retrieves an assignment by its ID.
func (r *TeacherAssignmentRepository) GetByID(ctx context.Context, id int) (*model.TeacherAssignment, error) {
	a := &model.TeacherAssignment{}
	err := scanAssignment(r.db.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM teacher_assignments WHERE id = $1`, id), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindActiveForSection retrieves the active assignment scoped to both
// the subject and the exact section, newest first.
func (r *TeacherAssignmentRepository) FindActiveForSection(ctx context.Context, subjectID, sectionID int) (*model.TeacherAssignment, error) {
	a := &model.TeacherAssignment{}
	err := scanAssignment(r.db.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM teacher_assignments
		 WHERE subject_id = $1 AND section_id = $2 AND status = 'active'
		 ORDER BY id DESC LIMIT 1`, subjectID, sectionID), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindActiveFloating retrieves any active assignment for the subject
// regardless of section — the fallback for teachers covering a subject
// across multiple sections.
func (r *TeacherAssignmentRepository) FindActiveFloating(ctx context.Context, subjectID int) (*model.TeacherAssignment, error) {
	a := &model.TeacherAssignment{}
	err := scanAssignment(r.db.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM teacher_assignments
		 WHERE subject_id = $1 AND status = 'active'
		 ORDER BY id DESC LIMIT 1`, subjectID), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List retrieves all assignments joined with teacher, subject and
// section names, newest first.
func (r *TeacherAssignmentRepository) List(ctx context.Context) ([]model.TeacherAssignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.teacher_id, a.subject_id, a.section_id, a.semester, a.school_year,
		        a.status, a.created_at, a.updated_at,
		        TRIM(t.first_name || ' ' || t.last_name), sub.code, sub.title,
		        COALESCE(sec.name, '')
		 FROM teacher_assignments a
		 JOIN teachers t ON t.id = a.teacher_id
		 JOIN subjects sub ON sub.id = a.subject_id
		 LEFT JOIN sections sec ON sec.id = a.section_id
		 ORDER BY a.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.TeacherAssignment
	for rows.Next() {
		var a model.TeacherAssignment
		if err := rows.Scan(&a.ID, &a.TeacherID, &a.SubjectID, &a.SectionID, &a.Semester,
			&a.SchoolYear, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.TeacherName, &a.SubjectCode, &a.SubjectTitle, &a.SectionName); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Create inserts a new assignment. A partial unique index on
// (teacher_id, subject_id) WHERE status = 'active' backs the
// one-active-assignment invariant; violations surface as 23505.
func (r *TeacherAssignmentRepository) Create(ctx context.Context, a *model.TeacherAssignment) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO teacher_assignments (teacher_id, subject_id, section_id, semester, school_year, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.TeacherID, a.SubjectID, a.SectionID, a.Semester, a.SchoolYear, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Deactivate soft-removes an assignment.
func (r *TeacherAssignmentRepository) Deactivate(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE teacher_assignments SET status = 'inactive', updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
