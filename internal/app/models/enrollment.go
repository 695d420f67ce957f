package models

import (
	"time"
)

// Enrollment links a student to a subject. FacultyID is a snapshot of the
// subject's faculty at enrollment time. (student_id, subject_id) is unique.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	SubjectID  int64     `json:"subjectId" db:"subject_id"`
	FacultyID  *int64    `json:"facultyId,omitempty" db:"faculty_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`

	// Relations (populated when needed)
	Subject *Subject `json:"subject,omitempty"`
	Student *User    `json:"student,omitempty"`
	Faculty *User    `json:"faculty,omitempty"`
}
