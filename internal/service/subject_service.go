package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/cache"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/repository"
	"github.com/scholara/campus-backend/internal/semester"
)

// SubjectService handles subject catalog administration.
type SubjectService struct {
	subjects *repository.SubjectRepository
	cache    *cache.Coordinator
	log      zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjects *repository.SubjectRepository, cacheCoord *cache.Coordinator, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjects: subjects,
		cache:    cacheCoord,
		log:      log.With().Str("component", "subject_service").Logger(),
	}
}

// GetByID retrieves a subject by its ID.
func (s *SubjectService) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	subject, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: subject %d", ErrNotFound, id)
		}
		return nil, err
	}
	return subject, nil
}

// List retrieves subjects narrowed by the filter. A semester filter is
// expanded through the normalizer's variant set so rows stored under
// any historical spelling — or none at all — still match.
func (s *SubjectService) List(ctx context.Context, filter model.SubjectFilter) ([]model.Subject, error) {
	var values []string
	if filter.Semester != "" {
		values = semester.FilterValues(semester.Normalize(filter.Semester))
	}
	return s.subjects.List(ctx, filter, values)
}

// Create inserts a new subject.
func (s *SubjectService) Create(ctx context.Context, subject *model.Subject) error {
	if err := s.subjects.Create(ctx, subject); err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("%w: subject code %q", ErrConflict, subject.Code)
		}
		return err
	}

	s.cache.InvalidateMutation(ctx, config.MutationSubjectCreate, 0)
	return nil
}

// Update modifies an existing subject.
func (s *SubjectService) Update(ctx context.Context, subject *model.Subject) error {
	if _, err := s.GetByID(ctx, subject.ID); err != nil {
		return err
	}

	if err := s.subjects.Update(ctx, subject); err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("%w: subject code %q", ErrConflict, subject.Code)
		}
		return err
	}

	s.cache.InvalidateMutation(ctx, config.MutationSubjectUpdate, 0)
	return nil
}

// Delete removes a subject. Subjects referenced by assignments or study
// loads are protected by foreign keys.
func (s *SubjectService) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.subjects.Delete(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: subject %d is still referenced", ErrDependencyExists, id)
		}
		return err
	}

	s.cache.InvalidateMutation(ctx, config.MutationSubjectDelete, 0)
	return nil
}
