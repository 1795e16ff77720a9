package service

import (
	"errors"
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	parse := func(s string) int {
		m, err := parseClock(s)
		if err != nil {
			t.Fatalf("parseClock(%q): %v", s, err)
		}
		return m
	}

	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"exact duplicate", "09:00", "10:00", "09:00", "10:00", true},
		{"nested interval", "09:00", "12:00", "10:00", "11:00", true},
		{"containing interval", "10:00", "11:00", "09:00", "12:00", true},
		{"touching boundary", "09:00", "10:00", "10:00", "11:00", false},
		{"touching boundary reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "08:00", "09:00", "13:00", "14:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlaps(parse(tt.s1), parse(tt.e1), parse(tt.s2), parse(tt.e2))
			if got != tt.want {
				t.Errorf("overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseClock(%q) expected error", tt.in)
			} else if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("parseClock(%q) error = %v, want ErrInvalidInput", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseClock(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDeriveFloor(t *testing.T) {
	tests := []struct {
		room, want int
	}{
		{305, 3},
		{203, 2},
		{100, 1},
		{99, 1},
		{45, 1}, // clamped, not floor 0
		{1204, 12},
	}
	for _, tt := range tests {
		if got := deriveFloor(tt.room); got != tt.want {
			t.Errorf("deriveFloor(%d) = %d, want %d", tt.room, got, tt.want)
		}
	}
}

func TestParseRoom(t *testing.T) {
	if _, err := parseRoom("203"); err != nil {
		t.Errorf("parseRoom(203) unexpected error: %v", err)
	}
	for _, bad := range []string{"", "  ", "2A", "room", "-3"} {
		if _, err := parseRoom(bad); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("parseRoom(%q) error = %v, want ErrInvalidInput", bad, err)
		}
	}
}

func TestCanonicalRoom(t *testing.T) {
	// Whitespace and leading zeros must collapse to one spelling, or
	// the active-holder uniqueness key would treat them as distinct
	// rooms.
	for _, raw := range []string{"203", " 203", "203 ", "0203", " 0203 "} {
		num, spelling, err := canonicalRoom(raw)
		if err != nil {
			t.Fatalf("canonicalRoom(%q) unexpected error: %v", raw, err)
		}
		if num != 203 || spelling != "203" {
			t.Errorf("canonicalRoom(%q) = (%d, %q), want (203, \"203\")", raw, num, spelling)
		}
	}

	if _, _, err := canonicalRoom("2A"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("canonicalRoom(2A) error = %v, want ErrInvalidInput", err)
	}
}

func TestIsPlaceholder(t *testing.T) {
	if !isPlaceholder("00:00", "00:00") {
		t.Error("00:00-00:00 should be the placeholder sentinel")
	}
	if isPlaceholder("00:00", "01:00") || isPlaceholder("09:00", "09:00") {
		t.Error("only the exact 00:00/00:00 pair is the placeholder")
	}
}

func TestResolveSchoolYear(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	if got := resolveSchoolYear("2024-2025", "2023-2024"); got != "2024-2025" {
		t.Errorf("explicit year ignored, got %q", got)
	}
	if got := resolveSchoolYear("", "2023-2024"); got != "2023-2024" {
		t.Errorf("section year ignored, got %q", got)
	}
	if got := resolveSchoolYear("", ""); got != "2026-2027" {
		t.Errorf("computed academic year = %q, want 2026-2027", got)
	}
}
