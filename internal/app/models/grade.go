package models

import (
	"time"
)

// Grade holds marks and the derived letter grade for one (student, subject)
// pair. IsFinal locks the row against edits; ReevaluationAllowed reopens it
// until the next finalize.
type Grade struct {
	ID                   int64     `json:"id" db:"id"`
	StudentID            int64     `json:"studentId" db:"student_id"`
	SubjectID            int64     `json:"subjectId" db:"subject_id"`
	Marks                float64   `json:"marks" db:"marks"`
	Grade                string    `json:"grade" db:"grade"` // A+, A, B+, B, C, D, F
	IsFinal              bool      `json:"isFinal" db:"is_final"`
	ReevaluationAllowed  bool      `json:"reevaluationAllowed" db:"reevaluation_allowed"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	Subject *Subject `json:"subject,omitempty"`
}
