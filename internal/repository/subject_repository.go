package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scholara/campus-backend/internal/model"
)

// SubjectRepository handles subject catalog data access.
type SubjectRepository struct {
	db DB
}

// NewSubjectRepository creates a new SubjectRepository.
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: pool}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *SubjectRepository) WithTx(tx pgx.Tx) *SubjectRepository {
	return &SubjectRepository{db: tx}
}

const subjectColumns = `id, code, title, units, course, major, year_level, semester, created_at, updated_at`

func scanSubject(row pgx.Row, s *model.Subject) error {
	return row.Scan(&s.ID, &s.Code, &s.Title, &s.Units, &s.Course, &s.Major,
		&s.YearLevel, &s.Semester, &s.CreatedAt, &s.UpdatedAt)
}

// GetByID retrieves a subject by its ID.
func (r *SubjectRepository) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	s := &model.Subject{}
	err := scanSubject(r.db.QueryRow(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE id = $1`, id), s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByCode retrieves a subject by its unique code.
func (r *SubjectRepository) GetByCode(ctx context.Context, code string) (*model.Subject, error) {
	s := &model.Subject{}
	err := scanSubject(r.db.QueryRow(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE code = $1`, code), s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves subjects narrowed by the filter. semesterValues is the
// expanded variant set for the requested semester; empty means no
// semester filtering. Rows with an empty stored semester always match,
// keeping un-migrated legacy records visible.
func (r *SubjectRepository) List(ctx context.Context, filter model.SubjectFilter, semesterValues []string) ([]model.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE 1=1`
	args := []any{}

	if filter.Course != "" {
		args = append(args, filter.Course)
		query += ` AND course = $` + itoa(len(args))
	}
	if filter.Major != "" {
		args = append(args, filter.Major)
		query += ` AND major = $` + itoa(len(args))
	}
	if len(semesterValues) > 0 {
		args = append(args, semesterValues)
		query += ` AND semester = ANY($` + itoa(len(args)) + `)`
	}
	query += ` ORDER BY code`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := scanSubject(rows, &s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// Create inserts a new subject.
func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO subjects (code, title, units, course, major, year_level, semester)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		s.Code, s.Title, s.Units, s.Course, s.Major, s.YearLevel, s.Semester,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing subject.
func (r *SubjectRepository) Update(ctx context.Context, s *model.Subject) error {
	_, err := r.db.Exec(ctx,
		`UPDATE subjects SET code = $1, title = $2, units = $3, course = $4, major = $5,
		        year_level = $6, semester = $7, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $8`,
		s.Code, s.Title, s.Units, s.Course, s.Major, s.YearLevel, s.Semester, s.ID,
	)
	return err
}

// Delete removes a subject by its ID.
func (r *SubjectRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	return err
}
