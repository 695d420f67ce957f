package models

import (
	"time"
)

// Subject represents a course offering with a timetable slot.
// Subjects are immutable once created; there is no update endpoint.
type Subject struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	Credits   int       `json:"credits" db:"credits"`
	Slot      string    `json:"slot" db:"slot"` // timetable slot label, e.g. "A1"
	FacultyID *int64    `json:"facultyId,omitempty" db:"faculty_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Faculty *User `json:"faculty,omitempty"`
}
