package model

import "time"

// Schedule is one class meeting: an assignment pinned to a weekday and a
// half-open [start, end) time interval, optionally tied to a room
// assignment. Times are "HH:MM" wall-clock strings.
type Schedule struct {
	ID               int       `json:"id"`
	AssignmentID     int       `json:"assignment_id"`
	DayOfWeek        string    `json:"day_of_week"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	RoomAssignmentID *int      `json:"room_assignment_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ScheduleView is a schedule row resolved with teacher, subject, section,
// room and building names for the cached schedules listing.
type ScheduleView struct {
	ID           int    `json:"id"`
	DayOfWeek    string `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TeacherName  string `json:"teacher_name"`
	SubjectCode  string `json:"subject_code"`
	SubjectTitle string `json:"subject_title"`
	SectionName  string `json:"section_name"`
	BuildingName string `json:"building_name,omitempty"`
	Floor        int    `json:"floor,omitempty"`
	Room         string `json:"room,omitempty"`
}

// CreateScheduleRequest is the payload for the schedule-creation pipeline.
// Start and end of "00:00" is the placeholder sentinel: the subject is
// registered for the section without fixing a meeting time.
type CreateScheduleRequest struct {
	SectionID int    `json:"section_id" binding:"required,min=1"`
	SubjectID int    `json:"subject_id" binding:"required,min=1"`
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" binding:"required,len=5"`
	EndTime   string `json:"end_time" binding:"required,len=5"`
	// Optional physical room; when set, Building must name an existing
	// building and Room must be numeric.
	Building   string `json:"building" binding:"omitempty,max=100"`
	Room       string `json:"room" binding:"omitempty,max=10"`
	SchoolYear string `json:"school_year" binding:"omitempty,max=20"`
	Semester   string `json:"semester" binding:"omitempty,max=30"`
}

// ScheduleCreated reports what the pipeline materialized.
type ScheduleCreated struct {
	Schedule       *Schedule              `json:"schedule,omitempty"`
	RoomAssignment *SectionRoomAssignment `json:"room_assignment,omitempty"`
	StudyLoad      *StudyLoadEntry        `json:"study_load"`
	Placeholder    bool                   `json:"placeholder"`
}
