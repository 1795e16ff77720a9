package service

import (
	"testing"

	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/semester"
	"github.com/stretchr/testify/assert"
)

func TestResolveSemester(t *testing.T) {
	assignment := &model.TeacherAssignment{Semester: "2nd sem"}
	subject := &model.Subject{Semester: "summer"}

	tests := []struct {
		name       string
		hint       string
		assignment *model.TeacherAssignment
		subject    *model.Subject
		want       semester.Canonical
	}{
		{
			name:       "explicit hint wins",
			hint:       "first",
			assignment: assignment,
			subject:    subject,
			want:       semester.First,
		},
		{
			name:       "falls back to assignment",
			assignment: assignment,
			subject:    subject,
			want:       semester.Second,
		},
		{
			name:    "falls back to subject",
			subject: subject,
			want:    semester.Summer,
		},
		{
			name: "defaults to first",
			want: semester.First,
		},
		{
			name:       "blank assignment semester skipped",
			assignment: &model.TeacherAssignment{},
			subject:    subject,
			want:       semester.Summer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveSemester(tt.hint, tt.assignment, tt.subject)
			assert.Equal(t, tt.want, got)
		})
	}
}
