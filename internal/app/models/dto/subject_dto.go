package dto

// CreateSubjectRequest creates a new subject (admin or faculty)
type CreateSubjectRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Code      string `json:"code" binding:"required"`
	Credits   int    `json:"credits" binding:"required,gt=0"`
	Slot      string `json:"slot" binding:"required"`
	FacultyID *int64 `json:"facultyId,omitempty"`
}

// SubjectResponse is the public projection of a subject
type SubjectResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Credits     int     `json:"credits"`
	Slot        string  `json:"slot"`
	FacultyID   *int64  `json:"facultyId,omitempty"`
	FacultyName *string `json:"facultyName,omitempty"`
}
