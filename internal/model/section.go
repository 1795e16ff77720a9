package model

import "time"

// Section represents a class section (e.g. "BSIT-1A").
type Section struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	YearLevel  string    `json:"year_level"`
	SchoolYear string    `json:"school_year"`
	Course     string    `json:"course"`
	Major      string    `json:"major"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateSectionRequest is the payload for creating a section.
type CreateSectionRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	YearLevel  string `json:"year_level" binding:"required,max=50"`
	SchoolYear string `json:"school_year" binding:"omitempty,max=20"`
	Course     string `json:"course" binding:"required,max=100"`
	Major      string `json:"major" binding:"omitempty,max=100"`
}

// UpdateSectionRequest is the payload for updating a section.
type UpdateSectionRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	YearLevel  string `json:"year_level" binding:"required,max=50"`
	SchoolYear string `json:"school_year" binding:"omitempty,max=20"`
	Course     string `json:"course" binding:"required,max=100"`
	Major      string `json:"major" binding:"omitempty,max=100"`
}

// SectionWithLoad is a section row aggregated with its study-load count,
// served from the cached sections-with-load view.
type SectionWithLoad struct {
	Section
	StudyLoadCount int `json:"study_load_count"`
	StudentCount   int `json:"student_count"`
}

// RosterEntry is one student row in a section's roster view.
type RosterEntry struct {
	StudentID int    `json:"student_id"`
	StudentNo string `json:"student_no"`
	Name      string `json:"name"`
	Status    string `json:"status"`
}
