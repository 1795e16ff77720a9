package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/cache"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/repository"
)

// RoomAssignmentService resolves physical rooms for sections.
//
// Assigning a room never edits history: the section's previous active
// row is flipped to superseded and a fresh active row is inserted in
// the same transaction. The partial unique index on active
// (building, floor, room, school_year) rows is the authoritative guard;
// the pre-check only exists for a friendlier error on the common path.
type RoomAssignmentService struct {
	pool      *pgxpool.Pool
	rooms     *repository.RoomAssignmentRepository
	buildings *repository.BuildingRepository
	sections  *repository.SectionRepository
	cache     *cache.Coordinator
	log       zerolog.Logger
}

// NewRoomAssignmentService creates a new RoomAssignmentService.
func NewRoomAssignmentService(
	pool *pgxpool.Pool,
	rooms *repository.RoomAssignmentRepository,
	buildings *repository.BuildingRepository,
	sections *repository.SectionRepository,
	cacheCoord *cache.Coordinator,
	log zerolog.Logger,
) *RoomAssignmentService {
	return &RoomAssignmentService{
		pool:      pool,
		rooms:     rooms,
		buildings: buildings,
		sections:  sections,
		cache:     cacheCoord,
		log:       log.With().Str("component", "room_assignment_service").Logger(),
	}
}

// Assign gives a section a room for a school year as a standalone
// operation (the admin "change room" action).
func (s *RoomAssignmentService) Assign(ctx context.Context, req model.AssignRoomRequest) (*model.SectionRoomAssignment, error) {
	section, err := s.sections.GetByID(ctx, req.SectionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: section %d", ErrNotFound, req.SectionID)
		}
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	assignment, err := s.UpsertTx(ctx, tx, section, req.Building, req.Room, req.Floor, req.SchoolYear)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.cache.InvalidateMutation(ctx, config.MutationRoomAssign, section.ID)

	s.log.Info().
		Int("section_id", section.ID).
		Str("room", assignment.Room).
		Int("floor", assignment.Floor).
		Str("school_year", assignment.SchoolYear).
		Msg("Room assigned")

	return assignment, nil
}

// UpsertTx performs the room resolution inside the caller's transaction.
// The schedule-creation pipeline calls this directly so its room stage
// commits or rolls back with the rest of the pipeline. Callers own
// cache invalidation.
func (s *RoomAssignmentService) UpsertTx(
	ctx context.Context,
	tx pgx.Tx,
	section *model.Section,
	buildingName, room string,
	floorOverride *int,
	schoolYear string,
) (*model.SectionRoomAssignment, error) {
	roomNum, room, err := canonicalRoom(room)
	if err != nil {
		return nil, err
	}

	building, err := s.buildings.WithTx(tx).GetByName(ctx, buildingName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: building %q", ErrNotFound, buildingName)
		}
		return nil, err
	}

	floor := deriveFloor(roomNum)
	if floorOverride != nil {
		floor = *floorOverride
	}

	year := resolveSchoolYear(schoolYear, section.SchoolYear)
	rooms := s.rooms.WithTx(tx)

	// Pre-check: another section already holding the room is a conflict.
	// Re-assigning the section its own current room is a no-op update.
	holder, err := rooms.FindActiveHolder(ctx, building.ID, floor, room, year)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if holder != nil {
		if holder.SectionID != section.ID {
			return nil, ErrRoomTaken
		}
		return holder, nil
	}

	if err := rooms.SupersedeForSection(ctx, section.ID); err != nil {
		return nil, err
	}

	assignment := &model.SectionRoomAssignment{
		SectionID:    section.ID,
		BuildingID:   building.ID,
		Floor:        floor,
		Room:         room,
		SchoolYear:   year,
		Status:       model.RoomAssignmentActive,
		BuildingName: building.Name,
	}
	if err := rooms.Create(ctx, assignment); err != nil {
		// A concurrent upsert won the race; report it exactly like the
		// pre-check would have.
		if repository.IsUniqueViolation(err) {
			return nil, ErrRoomTaken
		}
		return nil, err
	}

	return assignment, nil
}

// Current retrieves the section's current room assignment.
func (s *RoomAssignmentService) Current(ctx context.Context, sectionID int) (*model.SectionRoomAssignment, error) {
	a, err := s.rooms.CurrentForSection(ctx, sectionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no room assignment for section %d", ErrNotFound, sectionID)
		}
		return nil, err
	}
	return a, nil
}

// History retrieves the section's room assignment history.
func (s *RoomAssignmentService) History(ctx context.Context, sectionID int) ([]model.SectionRoomAssignment, error) {
	return s.rooms.HistoryForSection(ctx, sectionID)
}
