package config

// Mutation identifies a write operation that can stale cached views.
// Every mutating service path must carry one of these names and flush
// its InvalidationSets entry before reporting success.
type Mutation string

const (
	MutationSectionCreate        Mutation = "section.create"
	MutationSectionUpdate        Mutation = "section.update"
	MutationSectionDelete        Mutation = "section.delete"
	MutationSubjectCreate        Mutation = "subject.create"
	MutationSubjectUpdate        Mutation = "subject.update"
	MutationSubjectDelete        Mutation = "subject.delete"
	MutationBuildingUpdate       Mutation = "building.update"
	MutationAssignmentCreate     Mutation = "assignment.create"
	MutationAssignmentDeactivate Mutation = "assignment.deactivate"
	MutationScheduleCreate       Mutation = "schedule.create"
	MutationRoomAssign           Mutation = "room.assign"
	MutationStudyLoadUpdate      Mutation = "study_load.update"
	MutationStudyLoadDelete      Mutation = "study_load.delete"
	MutationStudyLoadBulkDelete  Mutation = "study_load.bulk_delete"
)

// InvalidationSet enumerates the cache keys a mutation can stale.
// Global keys are fixed strings; PerSection builders produce the
// id-parameterized keys for the section the mutation touched.
type InvalidationSet struct {
	Global     []string
	PerSection []func(sectionID int) string
}

// InvalidationSets is the authoritative mutation → cache-key dependency
// table. There is no automatic dependency tracking: adding a mutation
// without an entry here is a bug, and a test enforces the table is total.
var InvalidationSets = map[Mutation]InvalidationSet{
	MutationSectionCreate: {
		Global: []string{CacheKey.SectionsWithLoadKey(), CacheKey.DashboardStatsKey()},
	},
	MutationSectionUpdate: {
		Global:     []string{CacheKey.SectionsWithLoadKey(), CacheKey.SchedulesKey()},
		PerSection: []func(int) string{CacheKey.SectionRosterKey, CacheKey.SectionStudyLoadKey},
	},
	MutationSectionDelete: {
		Global:     []string{CacheKey.SectionsWithLoadKey(), CacheKey.SchedulesKey(), CacheKey.DashboardStatsKey()},
		PerSection: []func(int) string{CacheKey.SectionRosterKey, CacheKey.SectionStudyLoadKey},
	},
	MutationSubjectCreate: {
		Global: []string{CacheKey.DashboardStatsKey()},
	},
	MutationSubjectUpdate: {
		// Subject metadata is denormalized into study loads and schedules.
		Global: []string{CacheKey.SchedulesKey(), CacheKey.SectionsWithLoadKey(), CacheKey.DashboardStatsKey()},
	},
	MutationSubjectDelete: {
		Global: []string{CacheKey.SchedulesKey(), CacheKey.SectionsWithLoadKey(), CacheKey.DashboardStatsKey()},
	},
	MutationBuildingUpdate: {
		// Building names are resolved into the schedules view.
		Global: []string{CacheKey.SchedulesKey()},
	},
	MutationAssignmentCreate: {
		Global: []string{CacheKey.SchedulesKey(), CacheKey.TeacherRankingsKey()},
	},
	MutationAssignmentDeactivate: {
		Global: []string{CacheKey.SchedulesKey(), CacheKey.TeacherRankingsKey()},
	},
	MutationScheduleCreate: {
		Global:     []string{CacheKey.SchedulesKey(), CacheKey.SectionsWithLoadKey(), CacheKey.DashboardStatsKey()},
		PerSection: []func(int) string{CacheKey.SectionStudyLoadKey},
	},
	MutationRoomAssign: {
		Global:     []string{CacheKey.SchedulesKey()},
		PerSection: []func(int) string{CacheKey.SectionRosterKey},
	},
	MutationStudyLoadUpdate: {
		Global:     []string{CacheKey.SectionsWithLoadKey()},
		PerSection: []func(int) string{CacheKey.SectionStudyLoadKey},
	},
	MutationStudyLoadDelete: {
		Global:     []string{CacheKey.SectionsWithLoadKey(), CacheKey.DashboardStatsKey()},
		PerSection: []func(int) string{CacheKey.SectionStudyLoadKey},
	},
	MutationStudyLoadBulkDelete: {
		Global:     []string{CacheKey.SectionsWithLoadKey(), CacheKey.DashboardStatsKey()},
		PerSection: []func(int) string{CacheKey.SectionStudyLoadKey},
	},
}

// Mutations lists every declared mutation name.
func Mutations() []Mutation {
	return []Mutation{
		MutationSectionCreate,
		MutationSectionUpdate,
		MutationSectionDelete,
		MutationSubjectCreate,
		MutationSubjectUpdate,
		MutationSubjectDelete,
		MutationBuildingUpdate,
		MutationAssignmentCreate,
		MutationAssignmentDeactivate,
		MutationScheduleCreate,
		MutationRoomAssign,
		MutationStudyLoadUpdate,
		MutationStudyLoadDelete,
		MutationStudyLoadBulkDelete,
	}
}

// KeysFor expands a mutation's invalidation set for a concrete section.
// Pass sectionID 0 when the mutation is not section-scoped; the
// per-section builders are skipped in that case.
func KeysFor(m Mutation, sectionID int) []string {
	set, ok := InvalidationSets[m]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(set.Global)+len(set.PerSection))
	keys = append(keys, set.Global...)
	if sectionID > 0 {
		for _, build := range set.PerSection {
			keys = append(keys, build(sectionID))
		}
	}
	return keys
}
