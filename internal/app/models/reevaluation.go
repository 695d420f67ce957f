package models

import (
	"time"
)

// ReevaluationStatus is the state of a re-evaluation request.
type ReevaluationStatus string

const (
	ReevaluationPending  ReevaluationStatus = "pending"
	ReevaluationApproved ReevaluationStatus = "approved"
	ReevaluationDenied   ReevaluationStatus = "denied"
)

// ReevaluationRequest is a student appeal for a grade. pending → approved|denied,
// decided once by an admin. Approval unlocks the matching grade for editing.
type ReevaluationRequest struct {
	ID           int64              `json:"id" db:"id"`
	StudentID    int64              `json:"studentId" db:"student_id"`
	SubjectID    int64              `json:"subjectId" db:"subject_id"`
	Reason       string             `json:"reason" db:"reason"`
	Status       ReevaluationStatus `json:"status" db:"status"`
	AdminComment *string            `json:"adminComment,omitempty" db:"admin_comment"`
	CreatedAt    time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" db:"updated_at"`
}
