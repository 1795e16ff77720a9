package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scholara/campus-backend/internal/model"
)

// StudyLoadRepository handles study-load projection data access.
type StudyLoadRepository struct {
	db DB
}

// NewStudyLoadRepository creates a new StudyLoadRepository.
func NewStudyLoadRepository(pool *pgxpool.Pool) *StudyLoadRepository {
	return &StudyLoadRepository{db: pool}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *StudyLoadRepository) WithTx(tx pgx.Tx) *StudyLoadRepository {
	return &StudyLoadRepository{db: tx}
}

const studyLoadColumns = `id, section_id, subject_id, semester_label, subject_code, subject_title,
	units, course, major, year_level, teacher_name, school_year, status, created_at, updated_at`

func scanStudyLoad(row pgx.Row, e *model.StudyLoadEntry) error {
	return row.Scan(&e.ID, &e.SectionID, &e.SubjectID, &e.SemesterLabel, &e.SubjectCode,
		&e.SubjectTitle, &e.Units, &e.Course, &e.Major, &e.YearLevel, &e.TeacherName,
		&e.SchoolYear, &e.Status, &e.CreatedAt, &e.UpdatedAt)
}

// GetByKey retrieves an entry by its dedupe key: section, subject and
// the rendered semester label.
func (r *StudyLoadRepository) GetByKey(ctx context.Context, sectionID, subjectID int, semesterLabel string) (*model.StudyLoadEntry, error) {
	e := &model.StudyLoadEntry{}
	err := scanStudyLoad(r.db.QueryRow(ctx,
		`SELECT `+studyLoadColumns+` FROM study_loads
		 WHERE section_id = $1 AND subject_id = $2 AND semester_label = $3`,
		sectionID, subjectID, semesterLabel), e)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// GetByID retrieves an entry by its ID.
func (r *StudyLoadRepository) GetByID(ctx context.Context, id int) (*model.StudyLoadEntry, error) {
	e := &model.StudyLoadEntry{}
	err := scanStudyLoad(r.db.QueryRow(ctx,
		`SELECT `+studyLoadColumns+` FROM study_loads WHERE id = $1`, id), e)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List retrieves entries narrowed by the filter. semesterValues is the
// expanded variant set for the requested semester (empty slice = no
// semester filter); empty stored labels match any semester so legacy
// rows stay visible.
func (r *StudyLoadRepository) List(ctx context.Context, filter model.StudyLoadFilter, semesterValues []string) ([]model.StudyLoadEntry, error) {
	query := `SELECT ` + studyLoadColumns + ` FROM study_loads WHERE 1=1`
	args := []any{}

	if filter.SectionID > 0 {
		args = append(args, filter.SectionID)
		query += ` AND section_id = $` + itoa(len(args))
	}
	if len(semesterValues) > 0 {
		args = append(args, semesterValues)
		query += ` AND semester_label = ANY($` + itoa(len(args)) + `)`
	}
	query += ` ORDER BY subject_code`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.StudyLoadEntry
	for rows.Next() {
		var e model.StudyLoadEntry
		if err := scanStudyLoad(rows, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Create inserts a new entry. The unique index on (section_id,
// subject_id, semester_label) backs Ensure's idempotence under
// concurrent synthesis.
func (r *StudyLoadRepository) Create(ctx context.Context, e *model.StudyLoadEntry) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO study_loads (section_id, subject_id, semester_label, subject_code, subject_title,
		                          units, course, major, year_level, teacher_name, school_year, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		e.SectionID, e.SubjectID, e.SemesterLabel, e.SubjectCode, e.SubjectTitle,
		e.Units, e.Course, e.Major, e.YearLevel, e.TeacherName, e.SchoolYear, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// UpdateStatus modifies the status field, the only hand-editable column.
func (r *StudyLoadRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE study_loads SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes an entry by its ID.
func (r *StudyLoadRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM study_loads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteBySection removes every entry for a section. Used when a
// section's projection is being regenerated or the section removed.
func (r *StudyLoadRepository) DeleteBySection(ctx context.Context, sectionID int) (int, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM study_loads WHERE section_id = $1`, sectionID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
