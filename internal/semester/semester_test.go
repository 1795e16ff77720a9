package semester

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Canonical
	}{
		{"1st", First},
		{"first", First},
		{"First", First},
		{"1st_semester", First},
		{"1st-semester", First},
		{"1st semester", First},
		{"FIRST SEMESTER", First},
		{"2nd", Second},
		{"second", Second},
		{"2nd_semester", Second},
		{"2nd-semester", Second},
		{"2nd semester", Second},
		{"Second Semester", Second},
		{"summer", Summer},
		{"Summer", Summer},
		{"summer semester", Summer},
		{"SUMMER_SEMESTER", Summer},
		{"  2nd  ", Second},
		// Fallback cases: legacy rows carry empty or junk values.
		{"", First},
		{"   ", First},
		{"3rd", First},
		{"trimester", First},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// Normalizing a rendered label must round-trip back to the same tag.
func TestNormalizeLabelRoundTrip(t *testing.T) {
	for _, c := range []Canonical{First, Second, Summer} {
		if got := Normalize(Label(c)); got != c {
			t.Errorf("Normalize(Label(%q)) = %q, want %q", c, got, c)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		c    Canonical
		want string
	}{
		{First, "First Semester"},
		{Second, "Second Semester"},
		{Summer, "Summer"},
		// Anything outside the known tags conflates to First Semester.
		{Canonical("third"), "First Semester"},
		{Canonical(""), "First Semester"},
	}
	for _, tt := range tests {
		if got := Label(tt.c); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestVariantsNormalizeHome(t *testing.T) {
	// Every listed variant must normalize back to its own tag.
	for _, c := range []Canonical{First, Second, Summer} {
		for _, v := range Variants(c) {
			if got := Normalize(v); got != c {
				t.Errorf("Normalize(%q) = %q, want %q", v, got, c)
			}
		}
	}
}

func TestFilterValuesIncludeWildcard(t *testing.T) {
	for _, c := range []Canonical{First, Second, Summer} {
		values := FilterValues(c)
		found := false
		for _, v := range values {
			if v == "" {
				found = true
			}
		}
		if !found {
			t.Errorf("FilterValues(%q) is missing the empty wildcard", c)
		}
	}
}
