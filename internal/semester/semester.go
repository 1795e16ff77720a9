// Package semester canonicalizes the free-text semester labels that
// accumulated in legacy records ("1st", "1st_semester", "First", ...).
// Normalization never fails: anything unrecognized degrades to First,
// because empty semester fields predate the normalized schema and must
// keep resolving somewhere.
package semester

import "strings"

// Canonical is the normalized semester tag.
type Canonical string

const (
	First  Canonical = "first"
	Second Canonical = "second"
	Summer Canonical = "summer"
)

// Normalize maps raw semester input to its canonical tag.
// Matching is case-insensitive and tolerant of "_", "-" and " " suffix
// separators. Empty or unrecognized input resolves to First.
func Normalize(raw string) Canonical {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	// Collapse doubled separators left by inputs like "1st--semester".
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	s = strings.TrimSuffix(s, " semester")
	s = strings.TrimSuffix(s, " sem")

	switch s {
	case "2", "2nd", "second":
		return Second
	case "summer", "midyear", "mid year":
		return Summer
	default:
		return First
	}
}

// Label renders the display form of a canonical tag. Unrecognized tags
// render as "First Semester", mirroring the Normalize fallback.
func Label(c Canonical) string {
	switch c {
	case Second:
		return "Second Semester"
	case Summer:
		return "Summer"
	default:
		return "First Semester"
	}
}

// Variants returns every stored spelling that should be treated as
// equivalent to the given tag when filtering rows whose semester field
// was written before normalization existed.
func Variants(c Canonical) []string {
	switch c {
	case Second:
		return []string{
			"2nd", "2nd_semester", "2nd-semester", "2nd semester", "2nd sem",
			"second", "second_semester", "second-semester", "second semester",
			"second sem", "Second Semester", "2",
		}
	case Summer:
		return []string{
			"summer", "Summer", "summer_semester", "summer-semester",
			"summer semester", "Summer Semester", "midyear",
		}
	default:
		return []string{
			"1st", "1st_semester", "1st-semester", "1st semester", "1st sem",
			"first", "first_semester", "first-semester", "first semester",
			"first sem", "First Semester", "1",
		}
	}
}

// FilterValues returns the spellings to match when filtering stored
// records by semester. The empty string is always included: rows that
// never had a semester written are wildcard-equivalent to any semester.
func FilterValues(c Canonical) []string {
	return append(Variants(c), "")
}
