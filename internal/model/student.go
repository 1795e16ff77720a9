package model

import "time"

// Student is a minimal enrollment record. Full student-account
// management lives outside this portal; sections only need to know who
// is enrolled so rosters render and occupied sections cannot be deleted.
type Student struct {
	ID        int       `json:"id"`
	StudentNo string    `json:"student_no"`
	Name      string    `json:"name"`
	SectionID *int      `json:"section_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
