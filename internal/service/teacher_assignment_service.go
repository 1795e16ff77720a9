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
)

// TeacherAssignmentService manages teaching assignments. At most one
// active assignment may exist per (teacher, subject); removal is a soft
// status flip so schedule history keeps resolving.
type TeacherAssignmentService struct {
	assignments *repository.TeacherAssignmentRepository
	teachers    *repository.TeacherRepository
	subjects    *repository.SubjectRepository
	sections    *repository.SectionRepository
	cache       *cache.Coordinator
	log         zerolog.Logger
}

// NewTeacherAssignmentService creates a new TeacherAssignmentService.
func NewTeacherAssignmentService(
	assignments *repository.TeacherAssignmentRepository,
	teachers *repository.TeacherRepository,
	subjects *repository.SubjectRepository,
	sections *repository.SectionRepository,
	cacheCoord *cache.Coordinator,
	log zerolog.Logger,
) *TeacherAssignmentService {
	return &TeacherAssignmentService{
		assignments: assignments,
		teachers:    teachers,
		subjects:    subjects,
		sections:    sections,
		cache:       cacheCoord,
		log:         log.With().Str("component", "teacher_assignment_service").Logger(),
	}
}

// List retrieves all assignments with names resolved.
func (s *TeacherAssignmentService) List(ctx context.Context) ([]model.TeacherAssignment, error) {
	return s.assignments.List(ctx)
}

// ListTeachers retrieves the teacher roster for assignment forms.
func (s *TeacherAssignmentService) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	return s.teachers.List(ctx)
}

// Create validates the referenced entities and inserts an active
// assignment. A second active assignment for the same (teacher,
// subject) pair is a conflict.
func (s *TeacherAssignmentService) Create(ctx context.Context, req model.CreateTeacherAssignmentRequest) (*model.TeacherAssignment, error) {
	if _, err := s.teachers.GetByID(ctx, req.TeacherID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: teacher %d", ErrNotFound, req.TeacherID)
		}
		return nil, err
	}
	if _, err := s.subjects.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: subject %d", ErrNotFound, req.SubjectID)
		}
		return nil, err
	}

	var schoolYear string
	if req.SectionID != nil {
		section, err := s.sections.GetByID(ctx, *req.SectionID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: section %d", ErrNotFound, *req.SectionID)
			}
			return nil, err
		}
		schoolYear = section.SchoolYear
	}

	assignment := &model.TeacherAssignment{
		TeacherID:  req.TeacherID,
		SubjectID:  req.SubjectID,
		SectionID:  req.SectionID,
		Semester:   req.Semester,
		SchoolYear: resolveSchoolYear(req.SchoolYear, schoolYear),
		Status:     model.AssignmentActive,
	}

	if err := s.assignments.Create(ctx, assignment); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: teacher %d already actively assigned to subject %d",
				ErrConflict, req.TeacherID, req.SubjectID)
		}
		return nil, err
	}

	s.cache.InvalidateMutation(ctx, config.MutationAssignmentCreate, 0)

	s.log.Info().
		Int("assignment_id", assignment.ID).
		Int("teacher_id", req.TeacherID).
		Int("subject_id", req.SubjectID).
		Msg("Teacher assigned")

	return assignment, nil
}

// Deactivate soft-removes an assignment.
func (s *TeacherAssignmentService) Deactivate(ctx context.Context, id int) error {
	if err := s.assignments.Deactivate(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: active assignment %d", ErrNotFound, id)
		}
		return err
	}

	s.cache.InvalidateMutation(ctx, config.MutationAssignmentDeactivate, 0)
	return nil
}
