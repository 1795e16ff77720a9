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

// BuildingService handles campus building administration.
type BuildingService struct {
	buildings *repository.BuildingRepository
	cache     *cache.Coordinator
	log       zerolog.Logger
}

// NewBuildingService creates a new BuildingService.
func NewBuildingService(buildings *repository.BuildingRepository, cacheCoord *cache.Coordinator, log zerolog.Logger) *BuildingService {
	return &BuildingService{
		buildings: buildings,
		cache:     cacheCoord,
		log:       log.With().Str("component", "building_service").Logger(),
	}
}

// GetByID retrieves a building by its ID.
func (s *BuildingService) GetByID(ctx context.Context, id int) (*model.Building, error) {
	b, err := s.buildings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: building %d", ErrNotFound, id)
		}
		return nil, err
	}
	return b, nil
}

// List retrieves all buildings.
func (s *BuildingService) List(ctx context.Context) ([]model.Building, error) {
	return s.buildings.List(ctx)
}

// Create inserts a new building.
func (s *BuildingService) Create(ctx context.Context, b *model.Building) error {
	if err := s.buildings.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("%w: building name %q", ErrConflict, b.Name)
		}
		return err
	}
	return nil
}

// Update modifies an existing building. Building names are denormalized
// into the schedules view, so the view cache is flushed.
func (s *BuildingService) Update(ctx context.Context, b *model.Building) error {
	if _, err := s.GetByID(ctx, b.ID); err != nil {
		return err
	}

	if err := s.buildings.Update(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("%w: building name %q", ErrConflict, b.Name)
		}
		return err
	}

	s.cache.InvalidateMutation(ctx, config.MutationBuildingUpdate, 0)
	return nil
}

// Delete removes a building. Buildings holding room assignments are
// protected by foreign keys.
func (s *BuildingService) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.buildings.Delete(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: building %d has room assignments", ErrDependencyExists, id)
		}
		return err
	}
	return nil
}
