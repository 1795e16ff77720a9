package model

import "time"

// AssignmentStatus is the lifecycle state of a teaching assignment.
type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "active"
	AssignmentInactive AssignmentStatus = "inactive"
)

// TeacherAssignment links a teacher to a subject, optionally scoped to a
// section. A nil SectionID is a "floating" assignment: the teacher covers
// the subject for any section that has no dedicated assignment.
// At most one active assignment may exist per (teacher, subject).
type TeacherAssignment struct {
	ID         int              `json:"id"`
	TeacherID  int              `json:"teacher_id"`
	SubjectID  int              `json:"subject_id"`
	SectionID  *int             `json:"section_id,omitempty"`
	Semester   string           `json:"semester"`
	SchoolYear string           `json:"school_year"`
	Status     AssignmentStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	// Joined for list views.
	TeacherName  string `json:"teacher_name,omitempty"`
	SubjectCode  string `json:"subject_code,omitempty"`
	SubjectTitle string `json:"subject_title,omitempty"`
	SectionName  string `json:"section_name,omitempty"`
}

// CreateTeacherAssignmentRequest is the payload for assigning a teacher.
type CreateTeacherAssignmentRequest struct {
	TeacherID  int    `json:"teacher_id" binding:"required,min=1"`
	SubjectID  int    `json:"subject_id" binding:"required,min=1"`
	SectionID  *int   `json:"section_id" binding:"omitempty,min=1"`
	Semester   string `json:"semester" binding:"omitempty,max=30"`
	SchoolYear string `json:"school_year" binding:"omitempty,max=20"`
}
