package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/cache"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/repository"
	"github.com/scholara/campus-backend/internal/semester"
)

// StudyLoadService materializes and serves the study-load projection.
//
// Entries are synthesized once and then left alone: the teacher-name
// snapshot is point-in-time and a later reassignment does not rewrite
// it. Outside synthesis, entries are only deleted (singly or per
// section) or have their status flipped.
type StudyLoadService struct {
	loads *repository.StudyLoadRepository
	cache *cache.Coordinator
	ttl   time.Duration
	log   zerolog.Logger
}

// NewStudyLoadService creates a new StudyLoadService.
func NewStudyLoadService(
	loads *repository.StudyLoadRepository,
	cacheCoord *cache.Coordinator,
	ttl time.Duration,
	log zerolog.Logger,
) *StudyLoadService {
	return &StudyLoadService{
		loads: loads,
		cache: cacheCoord,
		ttl:   ttl,
		log:   log.With().Str("component", "study_load_service").Logger(),
	}
}

// resolveSemester walks the fallback chain: explicit hint, then the
// assignment's semester, then the subject's, then First.
func resolveSemester(hint string, assignment *model.TeacherAssignment, subject *model.Subject) semester.Canonical {
	if hint != "" {
		return semester.Normalize(hint)
	}
	if assignment != nil && assignment.Semester != "" {
		return semester.Normalize(assignment.Semester)
	}
	if subject != nil && subject.Semester != "" {
		return semester.Normalize(subject.Semester)
	}
	return semester.First
}

// EnsureTx idempotently materializes the (section, subject, semester)
// entry inside the caller's transaction and returns it.
//
// The dedupe key uses the rendered semester label, not the canonical
// tag. Rows written under a historical spelling of the same semester
// therefore do not collapse into one — downstream grouping depends on
// that, so the key deliberately stays label-based.
//
// An existing entry is returned untouched: no metadata refresh, no new
// teacher snapshot.
func (s *StudyLoadService) EnsureTx(
	ctx context.Context,
	tx pgx.Tx,
	section *model.Section,
	subject *model.Subject,
	assignment *model.TeacherAssignment,
	teacherName string,
	semesterHint string,
	schoolYear string,
) (*model.StudyLoadEntry, error) {
	canonical := resolveSemester(semesterHint, assignment, subject)
	label := semester.Label(canonical)

	loads := s.loads.WithTx(tx)

	existing, err := loads.GetByKey(ctx, section.ID, subject.ID, label)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	entry := &model.StudyLoadEntry{
		SectionID:     section.ID,
		SubjectID:     subject.ID,
		SemesterLabel: label,
		SubjectCode:   subject.Code,
		SubjectTitle:  subject.Title,
		Units:         subject.Units,
		Course:        section.Course,
		Major:         section.Major,
		YearLevel:     section.YearLevel,
		SchoolYear:    resolveSchoolYear(schoolYear, section.SchoolYear),
		Status:        model.StudyLoadEnrolled,
	}
	if assignment != nil {
		entry.TeacherName = teacherName
	}

	if err := loads.Create(ctx, entry); err != nil {
		// Concurrent synthesis of the same key: the unique index caught
		// it, the winner's row is the entry.
		if repository.IsUniqueViolation(err) {
			return loads.GetByKey(ctx, section.ID, subject.ID, label)
		}
		return nil, err
	}

	s.log.Debug().
		Int("section_id", section.ID).
		Int("subject_id", subject.ID).
		Str("semester", label).
		Msg("Study load synthesized")

	return entry, nil
}

// List retrieves study loads, cached per section when the filter is
// section-scoped. Semester filtering expands to the variant set and
// treats empty stored labels as wildcard matches.
func (s *StudyLoadService) List(ctx context.Context, filter model.StudyLoadFilter) ([]model.StudyLoadEntry, error) {
	var values []string
	if filter.Semester != "" {
		values = semester.FilterValues(semester.Normalize(filter.Semester))
	}

	// Only the unfiltered per-section listing is hot enough to cache.
	if filter.SectionID > 0 && filter.Semester == "" {
		var entries []model.StudyLoadEntry
		err := s.cache.Remember(ctx, config.CacheKey.SectionStudyLoadKey(filter.SectionID), s.ttl, &entries,
			func(ctx context.Context) (any, error) {
				loaded, err := s.loads.List(ctx, filter, nil)
				if err != nil {
					return nil, err
				}
				if loaded == nil {
					loaded = []model.StudyLoadEntry{}
				}
				return loaded, nil
			})
		return entries, err
	}

	return s.loads.List(ctx, filter, values)
}

// UpdateStatus flips the enrollment status, the one hand-editable field.
func (s *StudyLoadService) UpdateStatus(ctx context.Context, id int, status string) error {
	entry, err := s.loads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: study load %d", ErrNotFound, id)
		}
		return err
	}

	if err := s.loads.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.cache.InvalidateMutation(ctx, config.MutationStudyLoadUpdate, entry.SectionID)
	return nil
}

// Delete removes one entry.
func (s *StudyLoadService) Delete(ctx context.Context, id int) error {
	entry, err := s.loads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: study load %d", ErrNotFound, id)
		}
		return err
	}

	if err := s.loads.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.InvalidateMutation(ctx, config.MutationStudyLoadDelete, entry.SectionID)
	return nil
}

// DeleteBySection removes every entry for a section and reports how
// many went.
func (s *StudyLoadService) DeleteBySection(ctx context.Context, sectionID int) (int, error) {
	n, err := s.loads.DeleteBySection(ctx, sectionID)
	if err != nil {
		return 0, err
	}

	s.cache.InvalidateMutation(ctx, config.MutationStudyLoadBulkDelete, sectionID)

	s.log.Info().Int("section_id", sectionID).Int("deleted", n).Msg("Study loads purged for section")
	return n, nil
}
