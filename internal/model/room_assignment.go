package model

import "time"

// RoomAssignmentStatus is the lifecycle state of a room assignment.
// Assigning a new room inserts a fresh Active row and flips the
// section's previous one to Superseded, preserving history.
type RoomAssignmentStatus string

const (
	RoomAssignmentActive     RoomAssignmentStatus = "active"
	RoomAssignmentSuperseded RoomAssignmentStatus = "superseded"
)

// SectionRoomAssignment gives a section a physical room for a school
// year. Among active rows, (building, floor, room, school_year) is
// unique; a section's current room is its newest active row.
type SectionRoomAssignment struct {
	ID         int                  `json:"id"`
	SectionID  int                  `json:"section_id"`
	BuildingID int                  `json:"building_id"`
	Floor      int                  `json:"floor"`
	Room       string               `json:"room"`
	SchoolYear string               `json:"school_year"`
	Status     RoomAssignmentStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`

	BuildingName string `json:"building_name,omitempty"`
}

// AssignRoomRequest is the payload for assigning a room to a section.
type AssignRoomRequest struct {
	// SectionID comes from the route path; a body value is ignored.
	SectionID  int    `json:"section_id" binding:"omitempty,min=1"`
	Building   string `json:"building" binding:"required,max=100"`
	Room       string `json:"room" binding:"required,max=10"`
	Floor      *int   `json:"floor" binding:"omitempty,min=1"`
	SchoolYear string `json:"school_year" binding:"omitempty,max=20"`
}
