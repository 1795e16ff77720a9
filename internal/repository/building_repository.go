package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scholara/campus-backend/internal/model"
)

// BuildingRepository handles building data access.
type BuildingRepository struct {
	db DB
}

// NewBuildingRepository creates a new BuildingRepository.
func NewBuildingRepository(pool *pgxpool.Pool) *BuildingRepository {
	return &BuildingRepository{db: pool}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *BuildingRepository) WithTx(tx pgx.Tx) *BuildingRepository {
	return &BuildingRepository{db: tx}
}

const buildingColumns = `id, name, floors, rooms_per_floor, description, created_at, updated_at`

func scanBuilding(row pgx.Row, b *model.Building) error {
	return row.Scan(&b.ID, &b.Name, &b.Floors, &b.RoomsPerFloor, &b.Description, &b.CreatedAt, &b.UpdatedAt)
}

// GetByID retrieves a building by its ID.
func (r *BuildingRepository) GetByID(ctx context.Context, id int) (*model.Building, error) {
	b := &model.Building{}
	err := scanBuilding(r.db.QueryRow(ctx,
		`SELECT `+buildingColumns+` FROM buildings WHERE id = $1`, id), b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetByName retrieves a building by its unique name.
func (r *BuildingRepository) GetByName(ctx context.Context, name string) (*model.Building, error) {
	b := &model.Building{}
	err := scanBuilding(r.db.QueryRow(ctx,
		`SELECT `+buildingColumns+` FROM buildings WHERE name = $1`, name), b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List retrieves all buildings ordered by name.
func (r *BuildingRepository) List(ctx context.Context) ([]model.Building, error) {
	rows, err := r.db.Query(ctx, `SELECT `+buildingColumns+` FROM buildings ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buildings []model.Building
	for rows.Next() {
		var b model.Building
		if err := scanBuilding(rows, &b); err != nil {
			return nil, err
		}
		buildings = append(buildings, b)
	}
	return buildings, rows.Err()
}

// Create inserts a new building.
func (r *BuildingRepository) Create(ctx context.Context, b *model.Building) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO buildings (name, floors, rooms_per_floor, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		b.Name, b.Floors, b.RoomsPerFloor, b.Description,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Update modifies an existing building.
func (r *BuildingRepository) Update(ctx context.Context, b *model.Building) error {
	_, err := r.db.Exec(ctx,
		`UPDATE buildings SET name = $1, floors = $2, rooms_per_floor = $3, description = $4,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		b.Name, b.Floors, b.RoomsPerFloor, b.Description, b.ID,
	)
	return err
}

// Delete removes a building by its ID.
func (r *BuildingRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM buildings WHERE id = $1`, id)
	return err
}
