package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/models/dto"
	"github.com/emrekoc/acadport/internal/app/services"
	"github.com/emrekoc/acadport/internal/middleware"
)

// StudentController handles the student dashboard endpoints
type StudentController struct {
	enrollmentService   services.EnrollmentService
	gradeService        services.GradeService
	attendanceService   services.AttendanceService
	timetableService    services.TimetableService
	reevaluationService services.ReevaluationService
	contentService      services.ContentService
}

// NewStudentController creates a new StudentController
func NewStudentController(
	enrollmentService services.EnrollmentService,
	gradeService services.GradeService,
	attendanceService services.AttendanceService,
	timetableService services.TimetableService,
	reevaluationService services.ReevaluationService,
	contentService services.ContentService,
) *StudentController {
	return &StudentController{
		enrollmentService:   enrollmentService,
		gradeService:        gradeService,
		attendanceService:   attendanceService,
		timetableService:    timetableService,
		reevaluationService: reevaluationService,
		contentService:      contentService,
	}
}

// Enroll registers the caller into one or more subjects
// @Summary Enroll into subjects
// @Description Enrolls the calling student into the given subjects; already-enrolled subjects are skipped
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Subject IDs"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollResponse} "Enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or credit limit exceeded"
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 409 {object} dto.ErrorResponse "Slot clash or concurrent duplicate enrollment"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/enroll [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrollments, err := c.enrollmentService.Enroll(ctx, middleware.GetUserID(ctx), req.SubjectIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	subjectIDs := make([]int64, 0, len(enrollments))
	for _, enrollment := range enrollments {
		subjectIDs = append(subjectIDs, enrollment.SubjectID)
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.EnrollResponse{
		Enrolled:   len(enrollments),
		SubjectIDs: subjectIDs,
	}))
}

// GetMySubjects lists the caller's enrolled subjects
// @Summary List enrolled subjects
// @Description Retrieves the calling student's enrollments
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrolledSubjectResponse} "Subjects retrieved"
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/subjects [get]
func (c *StudentController) GetMySubjects(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetStudentEnrollments(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(newEnrolledSubjectResponses(enrollments)))
}

// GetMyGrades lists the caller's grades
// @Summary List grades
// @Description Retrieves the calling student's grades with derived letters
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse} "Grades retrieved"
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/grades [get]
func (c *StudentController) GetMyGrades(ctx *gin.Context) {
	grades, err := c.gradeService.GetStudentGrades(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(newGradeResponses(grades)))
}

// GetMyAttendance lists the caller's attendance records
// @Summary List attendance
// @Description Retrieves the calling student's attendance records
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceResponse} "Attendance retrieved"
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/attendance [get]
func (c *StudentController) GetMyAttendance(ctx *gin.Context) {
	records, err := c.attendanceService.GetStudentAttendance(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(newAttendanceResponses(records)))
}

// GetMyTimetable returns the caller's timetable grouped by slot
// @Summary Get timetable
// @Description Retrieves the calling student's timetable grouped by slot label
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.Timetable} "Timetable retrieved"
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/timetable [get]
func (c *StudentController) GetMyTimetable(ctx *gin.Context) {
	timetable, err := c.timetableService.GetStudentTimetable(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(timetable))
}

// SubmitReevaluation opens a re-evaluation request
// @Summary Submit a re-evaluation request
// @Description Opens a pending re-evaluation request for a subject's grade
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitReevaluationRequest true "Subject and reason"
// @Success 201 {object} dto.APIResponse{data=dto.ReevaluationResponse} "Request submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/reevaluations [post]
func (c *StudentController) SubmitReevaluation(ctx *gin.Context) {
	var req dto.SubmitReevaluationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	request, err := c.reevaluationService.Submit(ctx, middleware.GetUserID(ctx), req.SubjectID, req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(newReevaluationResponse(request)))
}

// GetSubjectContent lists a subject's content for an enrolled student
// @Summary List course content
// @Description Retrieves a subject's course content; the caller must be enrolled in the subject
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseContent} "Content retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in this subject"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/subjects/{id}/content [get]
func (c *StudentController) GetSubjectContent(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	contents, err := c.contentService.GetForStudent(ctx, middleware.GetUserID(ctx), subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(contents))
}

func newEnrolledSubjectResponses(enrollments []*models.Enrollment) []dto.EnrolledSubjectResponse {
	responses := make([]dto.EnrolledSubjectResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		if enrollment.Subject == nil {
			continue
		}
		resp := dto.EnrolledSubjectResponse{
			SubjectID: enrollment.SubjectID,
			Name:      enrollment.Subject.Name,
			Code:      enrollment.Subject.Code,
			Credits:   enrollment.Subject.Credits,
			Slot:      enrollment.Subject.Slot,
		}
		if enrollment.Faculty != nil {
			resp.FacultyName = &enrollment.Faculty.FullName
		}
		responses = append(responses, resp)
	}
	return responses
}

func newGradeResponses(grades []*models.Grade) []dto.GradeResponse {
	responses := make([]dto.GradeResponse, 0, len(grades))
	for _, grade := range grades {
		resp := dto.GradeResponse{
			SubjectID: grade.SubjectID,
			Marks:     grade.Marks,
			Grade:     grade.Grade,
			IsFinal:   grade.IsFinal,
		}
		if grade.Subject != nil {
			resp.SubjectName = grade.Subject.Name
		}
		responses = append(responses, resp)
	}
	return responses
}

func newAttendanceResponses(records []*models.Attendance) []dto.AttendanceResponse {
	responses := make([]dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		resp := dto.AttendanceResponse{
			Date:   record.Date.Format("2006-01-02"),
			Status: record.Status,
		}
		if record.Subject != nil {
			resp.SubjectName = record.Subject.Name
		}
		responses = append(responses, resp)
	}
	return responses
}
