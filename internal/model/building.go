package model

import "time"

// Building represents a campus building.
type Building struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Floors        int       `json:"floors"`
	RoomsPerFloor int       `json:"rooms_per_floor"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateBuildingRequest is the payload for creating a building.
type CreateBuildingRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Floors        int    `json:"floors" binding:"required,min=1,max=50"`
	RoomsPerFloor int    `json:"rooms_per_floor" binding:"required,min=1,max=200"`
	Description   string `json:"description" binding:"omitempty,max=500"`
}

// UpdateBuildingRequest is the payload for updating a building.
type UpdateBuildingRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Floors        int    `json:"floors" binding:"required,min=1,max=50"`
	RoomsPerFloor int    `json:"rooms_per_floor" binding:"required,min=1,max=200"`
	Description   string `json:"description" binding:"omitempty,max=500"`
}
