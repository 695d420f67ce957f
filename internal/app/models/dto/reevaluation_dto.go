package dto

// SubmitReevaluationRequest opens a re-evaluation request for a subject
type SubmitReevaluationRequest struct {
	SubjectID int64  `json:"subjectId" binding:"required,gt=0"`
	Reason    string `json:"reason" binding:"required,min=5"`
}

// DecideReevaluationRequest is the admin decision on a pending request
type DecideReevaluationRequest struct {
	Status       string  `json:"status" binding:"required,oneof=approved denied"`
	AdminComment *string `json:"adminComment,omitempty"`
}

// ReevaluationResponse is the public projection of a request
type ReevaluationResponse struct {
	ID           int64   `json:"id"`
	StudentID    int64   `json:"studentId"`
	SubjectID    int64   `json:"subjectId"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminComment *string `json:"adminComment,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}
