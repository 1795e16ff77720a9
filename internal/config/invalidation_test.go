package config

import (
	"strings"
	"testing"
)

// The dependency table must be total: every declared mutation carries a
// non-empty invalidation set. A mutation with nothing to flush would be
// a silent staleness bug.
func TestInvalidationSetsAreTotal(t *testing.T) {
	for _, m := range Mutations() {
		set, ok := InvalidationSets[m]
		if !ok {
			t.Errorf("mutation %q has no invalidation set", m)
			continue
		}
		if len(set.Global)+len(set.PerSection) == 0 {
			t.Errorf("mutation %q has an empty invalidation set", m)
		}
	}
}

func TestInvalidationSetsHaveNoStrayMutations(t *testing.T) {
	declared := make(map[Mutation]bool)
	for _, m := range Mutations() {
		declared[m] = true
	}
	for m := range InvalidationSets {
		if !declared[m] {
			t.Errorf("InvalidationSets contains undeclared mutation %q", m)
		}
	}
}

// Every key in the table must come out of the key registry, never a
// hand-typed string.
func TestInvalidationKeysMatchRegistry(t *testing.T) {
	known := map[string]bool{
		CacheKey.SchedulesKey():        true,
		CacheKey.SectionsWithLoadKey(): true,
		CacheKey.DashboardStatsKey():   true,
		CacheKey.TeacherRankingsKey():  true,
	}
	knownPrefixes := []string{"section:"}

	valid := func(key string) bool {
		if known[key] {
			return true
		}
		for _, p := range knownPrefixes {
			if strings.HasPrefix(key, p) {
				return true
			}
		}
		return false
	}

	for _, m := range Mutations() {
		for _, key := range KeysFor(m, 7) {
			if !valid(key) {
				t.Errorf("mutation %q references unknown cache key %q", m, key)
			}
		}
	}
}

func TestKeysForSkipsPerSectionWithoutID(t *testing.T) {
	keys := KeysFor(MutationScheduleCreate, 0)
	for _, key := range keys {
		if strings.HasPrefix(key, "section:") {
			t.Errorf("KeysFor with sectionID 0 produced per-section key %q", key)
		}
	}

	keys = KeysFor(MutationScheduleCreate, 12)
	found := false
	for _, key := range keys {
		if key == CacheKey.SectionStudyLoadKey(12) {
			found = true
		}
	}
	if !found {
		t.Errorf("KeysFor(schedule.create, 12) = %v, missing per-section study load key", keys)
	}
}
