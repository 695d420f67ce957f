package dto

// RecordGradeRequest records or updates marks for a student in a subject.
// The letter grade is always derived server-side, never supplied.
type RecordGradeRequest struct {
	StudentID int64    `json:"studentId" binding:"required,gt=0"`
	SubjectID int64    `json:"subjectId" binding:"required,gt=0"`
	Marks     *float64 `json:"marks" binding:"required,gte=0,lte=100"`
}

// FinalizeGradesRequest locks every grade of a subject
type FinalizeGradesRequest struct {
	SubjectID int64 `json:"subjectId" binding:"required,gt=0"`
}

// FinalizeGradesResponse reports how many grades were locked
type FinalizeGradesResponse struct {
	Updated int64 `json:"updated"`
}

// GradeResponse is one row of a grade listing
type GradeResponse struct {
	SubjectID   int64   `json:"subjectId"`
	SubjectName string  `json:"subject"`
	Marks       float64 `json:"marks"`
	Grade       string  `json:"grade"`
	IsFinal     bool    `json:"isFinal"`
}
