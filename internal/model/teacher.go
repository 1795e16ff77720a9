package model

import "time"

// Teacher is the identity a teaching assignment points at. The portal
// does not manage teacher accounts; it only snapshots their names.
type Teacher struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName renders the name stored into study-load snapshots.
func (t Teacher) DisplayName() string {
	if t.FirstName == "" {
		return t.LastName
	}
	if t.LastName == "" {
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}
