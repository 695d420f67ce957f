package dto

// TimetableEntry is one subject occupying a timetable slot
type TimetableEntry struct {
	Subject string  `json:"subject"`
	Code    string  `json:"code"`
	Faculty *string `json:"faculty,omitempty"`
}

// Timetable maps slot labels to the subjects occupying them
type Timetable map[string][]TimetableEntry
