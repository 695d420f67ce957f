package dto

// MarkAttendanceRequest records attendance for a student on a date
type MarkAttendanceRequest struct {
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
	SubjectID int64  `json:"subjectId" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"required,oneof=present absent"`
}

// AttendanceResponse is one row of an attendance listing
type AttendanceResponse struct {
	SubjectName string `json:"subject"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}
