package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scholara/campus-backend/internal/model"
)

// RoomAssignmentRepository handles section room assignment data access.
type RoomAssignmentRepository struct {
	db DB
}

// NewRoomAssignmentRepository creates a new RoomAssignmentRepository.
func NewRoomAssignmentRepository(pool *pgxpool.Pool) *RoomAssignmentRepository {
	return &RoomAssignmentRepository{db: pool}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *RoomAssignmentRepository) WithTx(tx pgx.Tx) *RoomAssignmentRepository {
	return &RoomAssignmentRepository{db: tx}
}

const roomAssignmentColumns = `id, section_id, building_id, floor, room, school_year, status, created_at, updated_at`

func scanRoomAssignment(row pgx.Row, a *model.SectionRoomAssignment) error {
	return row.Scan(&a.ID, &a.SectionID, &a.BuildingID, &a.Floor, &a.Room,
		&a.SchoolYear, &a.Status, &a.CreatedAt, &a.UpdatedAt)
}

// CurrentForSection retrieves the section's current room: its active row
// with the highest id.
func (r *RoomAssignmentRepository) CurrentForSection(ctx context.Context, sectionID int) (*model.SectionRoomAssignment, error) {
	a := &model.SectionRoomAssignment{}
	err := scanRoomAssignment(r.db.QueryRow(ctx,
		`SELECT `+roomAssignmentColumns+` FROM section_room_assignments
		 WHERE section_id = $1 AND status = 'active'
		 ORDER BY id DESC LIMIT 1`, sectionID), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindActiveHolder retrieves the active assignment occupying the given
// (building, floor, room, school year), if any. Used as the resolver's
// pre-check; the partial unique index is the authoritative guard.
func (r *RoomAssignmentRepository) FindActiveHolder(ctx context.Context, buildingID, floor int, room, schoolYear string) (*model.SectionRoomAssignment, error) {
	a := &model.SectionRoomAssignment{}
	err := scanRoomAssignment(r.db.QueryRow(ctx,
		`SELECT `+roomAssignmentColumns+` FROM section_room_assignments
		 WHERE building_id = $1 AND floor = $2 AND room = $3 AND school_year = $4 AND status = 'active'
		 LIMIT 1`, buildingID, floor, room, schoolYear), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// SupersedeForSection flips every active row of the section to
// superseded. Called in the same transaction as the replacing insert so
// the one-active-room-per-section invariant holds at commit.
func (r *RoomAssignmentRepository) SupersedeForSection(ctx context.Context, sectionID int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE section_room_assignments SET status = 'superseded', updated_at = CURRENT_TIMESTAMP
		 WHERE section_id = $1 AND status = 'active'`, sectionID)
	return err
}

// Create inserts a new assignment row.
func (r *RoomAssignmentRepository) Create(ctx context.Context, a *model.SectionRoomAssignment) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO section_room_assignments (section_id, building_id, floor, room, school_year, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.SectionID, a.BuildingID, a.Floor, a.Room, a.SchoolYear, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// HistoryForSection retrieves the section's full assignment history,
// newest first, with building names resolved.
func (r *RoomAssignmentRepository) HistoryForSection(ctx context.Context, sectionID int) ([]model.SectionRoomAssignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.section_id, a.building_id, a.floor, a.room, a.school_year, a.status,
		        a.created_at, a.updated_at, b.name
		 FROM section_room_assignments a
		 JOIN buildings b ON b.id = a.building_id
		 WHERE a.section_id = $1 ORDER BY a.id DESC`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.SectionRoomAssignment
	for rows.Next() {
		var a model.SectionRoomAssignment
		if err := rows.Scan(&a.ID, &a.SectionID, &a.BuildingID, &a.Floor, &a.Room,
			&a.SchoolYear, &a.Status, &a.CreatedAt, &a.UpdatedAt, &a.BuildingName); err != nil {
			return nil, err
		}
		history = append(history, a)
	}
	return history, rows.Err()
}
