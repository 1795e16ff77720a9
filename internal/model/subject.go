package model

import "time"

// Subject represents an academic subject in the catalog.
type Subject struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Units     int       `json:"units"`
	Course    string    `json:"course"`
	Major     string    `json:"major"`
	YearLevel string    `json:"year_level"`
	Semester  string    `json:"semester"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSubjectRequest is the payload for creating a subject.
type CreateSubjectRequest struct {
	Code      string `json:"code" binding:"required,min=2,max=20"`
	Title     string `json:"title" binding:"required,min=2,max=150"`
	Units     int    `json:"units" binding:"required,min=1,max=12"`
	Course    string `json:"course" binding:"omitempty,max=100"`
	Major     string `json:"major" binding:"omitempty,max=100"`
	YearLevel string `json:"year_level" binding:"omitempty,max=50"`
	Semester  string `json:"semester" binding:"omitempty,max=30"`
}

// UpdateSubjectRequest is the payload for updating a subject.
type UpdateSubjectRequest struct {
	Code      string `json:"code" binding:"required,min=2,max=20"`
	Title     string `json:"title" binding:"required,min=2,max=150"`
	Units     int    `json:"units" binding:"required,min=1,max=12"`
	Course    string `json:"course" binding:"omitempty,max=100"`
	Major     string `json:"major" binding:"omitempty,max=100"`
	YearLevel string `json:"year_level" binding:"omitempty,max=50"`
	Semester  string `json:"semester" binding:"omitempty,max=30"`
}

// SubjectFilter narrows subject listings. Semester matching goes through
// the normalizer's variant set, so legacy free-text values still match.
type SubjectFilter struct {
	Course   string
	Major    string
	Semester string
}
