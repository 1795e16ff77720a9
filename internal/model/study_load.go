package model

import "time"

// StudyLoadEntry is a materialized projection of (section, subject,
// semester) enrollment facts. Section and subject metadata and the
// teacher's display name are copied in at synthesis time and never
// refreshed afterwards: transcript and load reports read this table
// without joins, and a later teacher reassignment deliberately does not
// rewrite history.
//
// The dedupe key is (section_id, subject_id, semester_label) where the
// label is the rendered display form, not the canonical tag.
type StudyLoadEntry struct {
	ID            int       `json:"id"`
	SectionID     int       `json:"section_id"`
	SubjectID     int       `json:"subject_id"`
	SemesterLabel string    `json:"semester_label"`
	SubjectCode   string    `json:"subject_code"`
	SubjectTitle  string    `json:"subject_title"`
	Units         int       `json:"units"`
	Course        string    `json:"course"`
	Major         string    `json:"major"`
	YearLevel     string    `json:"year_level"`
	TeacherName   string    `json:"teacher_name"`
	SchoolYear    string    `json:"school_year"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StudyLoadStatus values for the one hand-editable field.
const (
	StudyLoadEnrolled = "enrolled"
	StudyLoadDropped  = "dropped"
)

// UpdateStudyLoadStatusRequest is the payload for the status update,
// the only field-level edit study loads allow.
type UpdateStudyLoadStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=enrolled dropped"`
}

// StudyLoadFilter narrows study-load listings. Semester filtering goes
// through the normalizer's variant set and treats empty stored values
// as wildcard.
type StudyLoadFilter struct {
	SectionID int
	Semester  string
}
