package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// nowFunc is swapped in tests that pin the academic-year computation.
var nowFunc = time.Now

// placeholderTime is the sentinel meaning "register the subject without
// fixing a meeting time": no conflict check runs and no schedule row is
// created for it.
const placeholderTime = "00:00"

// isPlaceholder reports whether the start/end pair is the enrollment
// sentinel.
func isPlaceholder(start, end string) bool {
	return start == placeholderTime && end == placeholderTime
}

// parseClock converts an "HH:MM" wall-clock string to minutes since
// midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: malformed time %q", ErrInvalidInput, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: malformed time %q", ErrInvalidInput, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: malformed time %q", ErrInvalidInput, s)
	}
	return h*60 + m, nil
}

// overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching boundaries (e1 == s2) do not overlap, so a class
// ending 10:00 and one starting 10:00 coexist; partial overlaps, exact
// duplicates and nested sub-intervals all collide.
func overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// deriveFloor computes a floor from a numeric room code: room 305 is on
// floor 3. Rooms numbered under 100 clamp to floor 1, never 0.
func deriveFloor(room int) int {
	floor := room / 100
	if floor < 1 {
		floor = 1
	}
	return floor
}

// parseRoom validates the numeric room requirement. Floor derivation is
// arithmetic, so non-numeric room codes are rejected outright.
func parseRoom(room string) (int, error) {
	room = strings.TrimSpace(room)
	if room == "" {
		return 0, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	n, err := strconv.Atoi(room)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: room %q is not numeric", ErrInvalidInput, room)
	}
	return n, nil
}

// canonicalRoom parses a room code and renders its canonical spelling:
// " 203" and "0203" both come back as number 203, spelling "203". The
// active-holder uniqueness key compares the stored spelling, so every
// lookup and insert must go through this.
func canonicalRoom(room string) (int, string, error) {
	n, err := parseRoom(room)
	if err != nil {
		return 0, "", err
	}
	return n, strconv.Itoa(n), nil
}

// currentAcademicYear renders the default school year for t, the
// calendar year joined to its successor: "2026-2027".
func currentAcademicYear(t time.Time) string {
	y := t.Year()
	return fmt.Sprintf("%d-%d", y, y+1)
}

// resolveSchoolYear picks the effective school year: the explicit
// request value, else the section's own, else the current academic year.
func resolveSchoolYear(explicit, sectionYear string) string {
	if explicit != "" {
		return explicit
	}
	if sectionYear != "" {
		return sectionYear
	}
	return currentAcademicYear(nowFunc())
}
