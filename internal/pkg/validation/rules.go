package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Timetable slot label, e.g. "A1", "B2", "C10"
	SlotPattern = `^[A-Z]\d{1,2}$`

	// Subject code, e.g. "CS101", "MATH2"
	SubjectCodePattern = `^[A-Z]{2,6}\d{1,4}$`

	// Password min length
	PasswordMinLength = 6

	// Marks range (inclusive)
	MarksMin float64 = 0
	MarksMax float64 = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Slot        *regexp.Regexp
	SubjectCode *regexp.Regexp
}{
	Slot:        regexp.MustCompile(SlotPattern),
	SubjectCode: regexp.MustCompile(SubjectCodePattern),
}

// ValidSlot reports whether a timetable slot label is well formed.
func ValidSlot(slot string) bool {
	return CompiledPatterns.Slot.MatchString(slot)
}

// ValidSubjectCode reports whether a subject code is well formed.
func ValidSubjectCode(code string) bool {
	return CompiledPatterns.SubjectCode.MatchString(code)
}

// ValidMarks reports whether marks fall in the accepted range.
func ValidMarks(marks float64) bool {
	return marks >= MarksMin && marks <= MarksMax
}
