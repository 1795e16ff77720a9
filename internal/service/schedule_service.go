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

// ScheduleService runs the schedule-creation pipeline and serves the
// cached schedules view.
//
// The pipeline — teacher resolution, optional room assignment, conflict
// detection, meeting insert, study-load synthesis — runs inside one
// transaction, so a failure at any stage leaves nothing behind. Cache
// invalidation happens after commit, before the caller gets its answer.
type ScheduleService struct {
	pool        *pgxpool.Pool
	schedules   *repository.ScheduleRepository
	assignments *repository.TeacherAssignmentRepository
	teachers    *repository.TeacherRepository
	sections    *repository.SectionRepository
	subjects    *repository.SubjectRepository
	roomSvc     *RoomAssignmentService
	loadSvc     *StudyLoadService
	cache       *cache.Coordinator
	ttl         time.Duration
	log         zerolog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(
	pool *pgxpool.Pool,
	schedules *repository.ScheduleRepository,
	assignments *repository.TeacherAssignmentRepository,
	teachers *repository.TeacherRepository,
	sections *repository.SectionRepository,
	subjects *repository.SubjectRepository,
	roomSvc *RoomAssignmentService,
	loadSvc *StudyLoadService,
	cacheCoord *cache.Coordinator,
	ttl time.Duration,
	log zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		pool:        pool,
		schedules:   schedules,
		assignments: assignments,
		teachers:    teachers,
		sections:    sections,
		subjects:    subjects,
		roomSvc:     roomSvc,
		loadSvc:     loadSvc,
		cache:       cacheCoord,
		ttl:         ttl,
		log:         log.With().Str("component", "schedule_service").Logger(),
	}
}

// Create runs the full pipeline for one schedule-creation request.
//
// The "00:00"/"00:00" placeholder registers intent to take the subject
// without a fixed meeting: conflict detection and the meeting insert
// are skipped, but room resolution and study-load synthesis still run.
func (s *ScheduleService) Create(ctx context.Context, req model.CreateScheduleRequest) (*model.ScheduleCreated, error) {
	placeholder := isPlaceholder(req.StartTime, req.EndTime)

	var startMin, endMin int
	if !placeholder {
		var err error
		if startMin, err = parseClock(req.StartTime); err != nil {
			return nil, err
		}
		if endMin, err = parseClock(req.EndTime); err != nil {
			return nil, err
		}
		if startMin >= endMin {
			return nil, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInput, req.StartTime, req.EndTime)
		}
	}

	section, err := s.sections.GetByID(ctx, req.SectionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: section %d", ErrNotFound, req.SectionID)
		}
		return nil, err
	}
	subject, err := s.subjects.GetByID(ctx, req.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: subject %d", ErrNotFound, req.SubjectID)
		}
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	assignment, err := s.resolveAssignment(ctx, tx, subject.ID, section.ID)
	if err != nil {
		return nil, err
	}

	teacher, err := s.teachers.WithTx(tx).GetByID(ctx, assignment.TeacherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: teacher %d", ErrNotFound, assignment.TeacherID)
		}
		return nil, err
	}

	result := &model.ScheduleCreated{Placeholder: placeholder}

	if req.Building != "" || req.Room != "" {
		room, err := s.roomSvc.UpsertTx(ctx, tx, section, req.Building, req.Room, nil, req.SchoolYear)
		if err != nil {
			return nil, err
		}
		result.RoomAssignment = room
	}

	if !placeholder {
		if err := s.detectConflict(ctx, tx, assignment.TeacherID, req.DayOfWeek, startMin, endMin); err != nil {
			return nil, err
		}

		meeting := &model.Schedule{
			AssignmentID: assignment.ID,
			DayOfWeek:    req.DayOfWeek,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
		}
		if result.RoomAssignment != nil {
			meeting.RoomAssignmentID = &result.RoomAssignment.ID
		}
		if err := s.schedules.WithTx(tx).Create(ctx, meeting); err != nil {
			return nil, err
		}
		result.Schedule = meeting
	}

	load, err := s.loadSvc.EnsureTx(ctx, tx, section, subject, assignment, teacher.DisplayName(), req.Semester, req.SchoolYear)
	if err != nil {
		return nil, err
	}
	result.StudyLoad = load

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.cache.InvalidateMutation(ctx, config.MutationScheduleCreate, section.ID)
	if result.RoomAssignment != nil {
		s.cache.InvalidateMutation(ctx, config.MutationRoomAssign, section.ID)
	}

	s.log.Info().
		Int("section_id", section.ID).
		Int("subject_id", subject.ID).
		Int("teacher_id", assignment.TeacherID).
		Bool("placeholder", placeholder).
		Msg("Schedule pipeline completed")

	return result, nil
}

// resolveAssignment finds the teaching assignment backing the meeting:
// the active assignment scoped to this exact section wins, otherwise
// any floating active assignment for the subject covers it.
func (s *ScheduleService) resolveAssignment(ctx context.Context, tx pgx.Tx, subjectID, sectionID int) (*model.TeacherAssignment, error) {
	assignments := s.assignments.WithTx(tx)

	a, err := assignments.FindActiveForSection(ctx, subjectID, sectionID)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	a, err = assignments.FindActiveFloating(ctx, subjectID)
	if err == nil {
		return a, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoTeacherAssigned
	}
	return nil, err
}

// detectConflict rejects the interval if any of the teacher's meetings
// on that day overlaps it. Intervals are half-open: ending 10:00 and
// starting 10:00 coexist.
func (s *ScheduleService) detectConflict(ctx context.Context, tx pgx.Tx, teacherID int, dayOfWeek string, startMin, endMin int) error {
	meetings, err := s.schedules.WithTx(tx).MeetingsForTeacher(ctx, teacherID, dayOfWeek)
	if err != nil {
		return err
	}

	for _, m := range meetings {
		ms, err := parseClock(m.StartTime)
		if err != nil {
			continue // Unparseable legacy row cannot conflict.
		}
		me, err := parseClock(m.EndTime)
		if err != nil {
			continue
		}
		if overlaps(startMin, endMin, ms, me) {
			return fmt.Errorf("%w: meeting %d (%s-%s)", ErrScheduleConflict, m.ScheduleID, m.StartTime, m.EndTime)
		}
	}
	return nil
}

// ListViews serves the cached schedules listing with resolved teacher,
// subject, section, room and building names.
func (s *ScheduleService) ListViews(ctx context.Context) ([]model.ScheduleView, error) {
	var views []model.ScheduleView
	err := s.cache.Remember(ctx, config.CacheKey.SchedulesKey(), s.ttl, &views,
		func(ctx context.Context) (any, error) {
			loaded, err := s.schedules.ListViews(ctx)
			if err != nil {
				return nil, err
			}
			if loaded == nil {
				loaded = []model.ScheduleView{}
			}
			return loaded, nil
		})
	return views, err
}
