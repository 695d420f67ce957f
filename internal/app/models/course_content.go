package models

import (
	"time"
)

// CourseContent is material uploaded by a faculty member for a subject.
// Only the uploading faculty may edit or delete it.
type CourseContent struct {
	ID         int64     `json:"id" db:"id"`
	SubjectID  int64     `json:"subjectId" db:"subject_id"`
	FacultyID  int64     `json:"facultyId" db:"faculty_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}
