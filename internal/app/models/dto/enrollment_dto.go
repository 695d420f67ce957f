package dto

// EnrollRequest registers the calling student into one or more subjects
type EnrollRequest struct {
	SubjectIDs []int64 `json:"subjectIds" binding:"required,min=1,dive,gt=0"`
}

// EnrollResponse reports the outcome of an enrollment request. Subjects the
// student was already enrolled in are skipped silently and not counted.
type EnrollResponse struct {
	Enrolled   int     `json:"enrolled"`
	SubjectIDs []int64 `json:"subjectIds"`
}

// EnrolledSubjectResponse is one row of a student's subject list
type EnrolledSubjectResponse struct {
	SubjectID   int64   `json:"subjectId"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Credits     int     `json:"credits"`
	Slot        string  `json:"slot"`
	FacultyName *string `json:"facultyName,omitempty"`
}
