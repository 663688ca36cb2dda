// Package registration implements the course registration conversation:
// catalog vocabularies, input validation, per-user session state, and the
// finite-state flow that drives a user from course selection to a persisted
// registration.
package registration

// Option is a selectable catalog entry with a stable key and a display label.
type Option struct {
	Key   string
	Label string
}

// Courses lists the selectable courses in display order.
var Courses = []Option{
	{Key: "english", Label: "🇬🇧 Ingliz tili"},
	{Key: "german", Label: "🇩🇪 Nemis tili"},
	{Key: "math", Label: "🧮 Matematika"},
	{Key: "history", Label: "📜 Tarix"},
	{Key: "biology", Label: "🧬 Biologiya"},
	{Key: "chemistry", Label: "⚗️ Kimyo"},
}

// coursesWithLevel are language courses that require a proficiency level
// before section selection.
var coursesWithLevel = map[string]struct{}{
	"english": {},
	"german":  {},
}

// Levels lists the CEFR proficiency levels in display order.
var Levels = []Option{
	{Key: "A1", Label: "A1 • Beginner"},
	{Key: "A2", Label: "A2 • Elementary"},
	{Key: "B1", Label: "B1 • Intermediate"},
	{Key: "B2", Label: "B2 • Upper-Intermediate"},
	{Key: "C1", Label: "C1 • Advanced"},
	{Key: "C2", Label: "C2 • Proficient"},
}

// languageSections is the section vocabulary shared by has-level courses.
var languageSections = []Option{
	{Key: "kids", Label: "👶 Kids"},
	{Key: "general", Label: "📘 General"},
	{Key: "cefr", Label: "🧭 CEFR"},
	{Key: "ielts", Label: "🎓 IELTS"},
}

// defaultSections is the section vocabulary for all other courses.
var defaultSections = []Option{
	{Key: "kids", Label: "👶 Kids"},
	{Key: "general", Label: "📘 General"},
	{Key: "certificate", Label: "🏅 Certificate"},
}

// CourseHasLevel reports whether the course requires a proficiency level.
func CourseHasLevel(key string) bool {
	_, ok := coursesWithLevel[key]
	return ok
}

// CourseLabel resolves a course key to its display label.
func CourseLabel(key string) (string, bool) {
	return lookup(Courses, key)
}

// LevelLabel resolves a level key to its display label.
func LevelLabel(key string) (string, bool) {
	return lookup(Levels, key)
}

// SectionsFor returns the section vocabulary for the given course.
func SectionsFor(courseKey string) []Option {
	if CourseHasLevel(courseKey) {
		return languageSections
	}
	return defaultSections
}

// SectionLabel resolves a section key within the course's vocabulary.
func SectionLabel(courseKey, key string) (string, bool) {
	return lookup(SectionsFor(courseKey), key)
}

func lookup(opts []Option, key string) (string, bool) {
	for _, o := range opts {
		if o.Key == key {
			return o.Label, true
		}
	}
	return "", false
}
