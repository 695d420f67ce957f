package models

import (
	"time"
)

// Attendance status values
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Attendance is one record per (student, subject, date). Append-only.
type Attendance struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	SubjectID int64     `json:"subjectId" db:"subject_id"`
	Date      time.Time `json:"date" db:"date"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relation (populated when needed)
	Subject *Subject `json:"subject,omitempty"`
}
