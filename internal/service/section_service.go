package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/cache"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/repository"
)

// SectionService handles section administration.
type SectionService struct {
	pool     *pgxpool.Pool
	sections *repository.SectionRepository
	loads    *repository.StudyLoadRepository
	cache    *cache.Coordinator
	ttl      time.Duration
	log      zerolog.Logger
}

// NewSectionService creates a new SectionService.
func NewSectionService(
	pool *pgxpool.Pool,
	sections *repository.SectionRepository,
	loads *repository.StudyLoadRepository,
	cacheCoord *cache.Coordinator,
	ttl time.Duration,
	log zerolog.Logger,
) *SectionService {
	return &SectionService{
		pool:     pool,
		sections: sections,
		loads:    loads,
		cache:    cacheCoord,
		ttl:      ttl,
		log:      log.With().Str("component", "section_service").Logger(),
	}
}

// GetByID retrieves a section by its ID.
func (s *SectionService) GetByID(ctx context.Context, id int) (*model.Section, error) {
	section, err := s.sections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: section %d", ErrNotFound, id)
		}
		return nil, err
	}
	return section, nil
}

// List retrieves all sections.
func (s *SectionService) List(ctx context.Context) ([]model.Section, error) {
	return s.sections.List(ctx)
}

// ListWithLoad serves the cached sections-with-load aggregate.
func (s *SectionService) ListWithLoad(ctx context.Context) ([]model.SectionWithLoad, error) {
	var out []model.SectionWithLoad
	err := s.cache.Remember(ctx, config.CacheKey.SectionsWithLoadKey(), s.ttl, &out,
		func(ctx context.Context) (any, error) {
			loaded, err := s.sections.ListWithLoad(ctx)
			if err != nil {
				return nil, err
			}
			if loaded == nil {
				loaded = []model.SectionWithLoad{}
			}
			return loaded, nil
		})
	return out, err
}

// Roster serves a section's cached student roster.
func (s *SectionService) Roster(ctx context.Context, sectionID int) ([]model.RosterEntry, error) {
	if _, err := s.GetByID(ctx, sectionID); err != nil {
		return nil, err
	}

	var roster []model.RosterEntry
	err := s.cache.Remember(ctx, config.CacheKey.SectionRosterKey(sectionID), s.ttl, &roster,
		func(ctx context.Context) (any, error) {
			loaded, err := s.sections.Roster(ctx, sectionID)
			if err != nil {
				return nil, err
			}
			if loaded == nil {
				loaded = []model.RosterEntry{}
			}
			return loaded, nil
		})
	return roster, err
}

// Create inserts a new section.
func (s *SectionService) Create(ctx context.Context, section *model.Section) error {
	if err := s.sections.Create(ctx, section); err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("%w: section name %q", ErrConflict, section.Name)
		}
		return err
	}

	s.cache.InvalidateMutation(ctx, config.MutationSectionCreate, 0)
	return nil
}

// Update modifies an existing section.
func (s *SectionService) Update(ctx context.Context, section *model.Section) error {
	if _, err := s.GetByID(ctx, section.ID); err != nil {
		return err
	}

	if err := s.sections.Update(ctx, section); err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("%w: section name %q", ErrConflict, section.Name)
		}
		return err
	}

	s.cache.InvalidateMutation(ctx, config.MutationSectionUpdate, section.ID)
	return nil
}

// Delete removes a section. Sections with active enrollments are
// protected; their study loads are purged alongside.
func (s *SectionService) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	enrolled, err := s.sections.CountActiveStudents(ctx, id)
	if err != nil {
		return err
	}
	if enrolled > 0 {
		return fmt.Errorf("%w: section %d has %d active students", ErrDependencyExists, id, enrolled)
	}

	// The load purge and the section delete commit together. A blocked
	// delete (a schedule still referencing an assignment) must leave the
	// study loads in place.
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := s.loads.WithTx(tx).DeleteBySection(ctx, id); err != nil {
		return err
	}
	if err := s.sections.WithTx(tx).Delete(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: section %d is still referenced", ErrDependencyExists, id)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.cache.InvalidateMutation(ctx, config.MutationSectionDelete, id)

	s.log.Info().Int("section_id", id).Msg("Section deleted")
	return nil
}
