package dto

// CreateContentRequest uploads course content for a subject
type CreateContentRequest struct {
	SubjectID int64  `json:"subjectId" binding:"required,gt=0"`
	Title     string `json:"title" binding:"required,min=2,max=200"`
	Content   string `json:"content" binding:"required"`
}

// UpdateContentRequest updates a content item owned by the caller.
// Omitted fields keep their current value.
type UpdateContentRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,min=2,max=200"`
	Content *string `json:"content,omitempty"`
}
