package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scholara/campus-backend/internal/model"
)

// SectionRepository handles section data access.
type SectionRepository struct {
	db DB
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{db: pool}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *SectionRepository) WithTx(tx pgx.Tx) *SectionRepository {
	return &SectionRepository{db: tx}
}

const sectionColumns = `id, name, year_level, school_year, course, major, created_at, updated_at`

func scanSection(row pgx.Row, s *model.Section) error {
	return row.Scan(&s.ID, &s.Name, &s.YearLevel, &s.SchoolYear, &s.Course, &s.Major, &s.CreatedAt, &s.UpdatedAt)
}

// GetByID retrieves a section by its ID.
func (r *SectionRepository) GetByID(ctx context.Context, id int) (*model.Section, error) {
	s := &model.Section{}
	err := scanSection(r.db.QueryRow(ctx,
		`SELECT `+sectionColumns+` FROM sections WHERE id = $1`, id), s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByName retrieves a section by its unique display name.
func (r *SectionRepository) GetByName(ctx context.Context, name string) (*model.Section, error) {
	s := &model.Section{}
	err := scanSection(r.db.QueryRow(ctx,
		`SELECT `+sectionColumns+` FROM sections WHERE name = $1`, name), s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all sections ordered by name.
func (r *SectionRepository) List(ctx context.Context) ([]model.Section, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sectionColumns+` FROM sections ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.Section
	for rows.Next() {
		var s model.Section
		if err := scanSection(rows, &s); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// ListWithLoad retrieves sections aggregated with study-load and
// enrollment counts for the cached sections-with-load view.
func (r *SectionRepository) ListWithLoad(ctx context.Context) ([]model.SectionWithLoad, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, s.year_level, s.school_year, s.course, s.major, s.created_at, s.updated_at,
		        (SELECT COUNT(*) FROM study_loads sl WHERE sl.section_id = s.id),
		        (SELECT COUNT(*) FROM students st WHERE st.section_id = s.id AND st.status = 'active')
		 FROM sections s ORDER BY s.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SectionWithLoad
	for rows.Next() {
		var s model.SectionWithLoad
		if err := rows.Scan(&s.ID, &s.Name, &s.YearLevel, &s.SchoolYear, &s.Course, &s.Major,
			&s.CreatedAt, &s.UpdatedAt, &s.StudyLoadCount, &s.StudentCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a new section.
func (r *SectionRepository) Create(ctx context.Context, s *model.Section) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO sections (name, year_level, school_year, course, major)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.YearLevel, s.SchoolYear, s.Course, s.Major,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing section.
func (r *SectionRepository) Update(ctx context.Context, s *model.Section) error {
	_, err := r.db.Exec(ctx,
		`UPDATE sections SET name = $1, year_level = $2, school_year = $3, course = $4, major = $5,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		s.Name, s.YearLevel, s.SchoolYear, s.Course, s.Major, s.ID,
	)
	return err
}

// Delete removes a section by its ID.
func (r *SectionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	return err
}

// CountActiveStudents reports how many active students are enrolled in
// the section. Sections with enrollments cannot be deleted.
func (r *SectionRepository) CountActiveStudents(ctx context.Context, sectionID int) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE section_id = $1 AND status = 'active'`, sectionID,
	).Scan(&n)
	return n, err
}

// Roster retrieves the section's student roster.
func (r *SectionRepository) Roster(ctx context.Context, sectionID int) ([]model.RosterEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, student_no, name, status FROM students
		 WHERE section_id = $1 ORDER BY name`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []model.RosterEntry
	for rows.Next() {
		var e model.RosterEntry
		if err := rows.Scan(&e.StudentID, &e.StudentNo, &e.Name, &e.Status); err != nil {
			return nil, err
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}
