package service

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Handlers translate these into HTTP codes; the
// services themselves never swallow them.
var (
	// ErrNotFound: a referenced section, subject, building, teacher or
	// assignment does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict: a uniqueness invariant was violated.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput: the request carried a value the engine cannot
	// work with (non-numeric room, malformed time, inverted interval).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoTeacherAssigned: schedule creation found no active teaching
	// assignment for the subject, scoped or floating.
	ErrNoTeacherAssigned = errors.New("no teacher assigned for subject")

	// ErrDependencyExists: the record still has dependents (e.g. a
	// section with active enrollments cannot be deleted).
	ErrDependencyExists = errors.New("record has dependents")
)

// Conflict refinements. Both satisfy errors.Is(err, ErrConflict).
var (
	// ErrRoomTaken: another section holds the room for that school year.
	ErrRoomTaken = fmt.Errorf("%w: room already assigned for school year", ErrConflict)

	// ErrScheduleConflict: the teacher already has an overlapping
	// meeting on that day.
	ErrScheduleConflict = fmt.Errorf("%w: overlapping meeting for teacher", ErrConflict)
)
