package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/acadport/internal/app/models/dto"
	"github.com/emrekoc/acadport/internal/app/services"
	"github.com/emrekoc/acadport/internal/middleware"
)

// FacultyController handles the faculty dashboard endpoints
type FacultyController struct {
	enrollmentService services.EnrollmentService
	gradeService      services.GradeService
	attendanceService services.AttendanceService
	contentService    services.ContentService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(
	enrollmentService services.EnrollmentService,
	gradeService services.GradeService,
	attendanceService services.AttendanceService,
	contentService services.ContentService,
) *FacultyController {
	return &FacultyController{
		enrollmentService: enrollmentService,
		gradeService:      gradeService,
		attendanceService: attendanceService,
		contentService:    contentService,
	}
}

// GetMyStudents lists enrollments under the caller's offerings
// @Summary List enrolled students
// @Description Retrieves enrollments for the subjects the calling faculty member teaches
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved"
// @Failure 403 {object} dto.ErrorResponse "Faculty role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/students [get]
func (c *FacultyController) GetMyStudents(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetFacultyEnrollments(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// RecordGrade records or updates a student's marks
// @Summary Record a grade
// @Description Records marks for a student enrolled under the caller; the letter grade is derived server-side
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordGradeRequest true "Student, subject and marks"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Student not enrolled under the caller"
// @Failure 409 {object} dto.ErrorResponse "Grade is final and locked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/grades [post]
func (c *FacultyController) RecordGrade(ctx *gin.Context) {
	var req dto.RecordGradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	grade, err := c.gradeService.RecordGrade(ctx, middleware.GetUserID(ctx), req.StudentID, req.SubjectID, *req.Marks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grade))
}

// FinalizeGrades locks every grade of a subject
// @Summary Finalize grades
// @Description Marks all grades of a subject final, clearing any re-evaluation unlocks
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FinalizeGradesRequest true "Subject to finalize"
// @Success 200 {object} dto.APIResponse{data=dto.FinalizeGradesResponse} "Grades finalized"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Faculty role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/grades/finalize [post]
func (c *FacultyController) FinalizeGrades(ctx *gin.Context) {
	var req dto.FinalizeGradesRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	updated, err := c.gradeService.Finalize(ctx, middleware.GetUserID(ctx), req.SubjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FinalizeGradesResponse{Updated: updated}))
}

// MarkAttendance records attendance for a student
// @Summary Mark attendance
// @Description Records a present/absent entry for a student enrolled under the caller
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance entry"
// @Success 201 {object} dto.APIResponse{data=models.Attendance} "Attendance recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Student not enrolled under the caller"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/attendance [post]
func (c *FacultyController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	// Binding already guarantees the layout
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.attendanceService.Mark(ctx, middleware.GetUserID(ctx), req.StudentID, req.SubjectID, date, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(record))
}

// CreateContent uploads course content
// @Summary Upload course content
// @Description Uploads content for a subject, owned by the calling faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateContentRequest true "Content"
// @Success 201 {object} dto.APIResponse{data=models.CourseContent} "Content uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Faculty role required"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/content [post]
func (c *FacultyController) CreateContent(ctx *gin.Context) {
	var req dto.CreateContentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	content, err := c.contentService.Create(ctx, middleware.GetUserID(ctx), req.SubjectID, req.Title, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(content))
}

// UpdateContent edits content owned by the caller
// @Summary Update course content
// @Description Edits a content item; only the uploading faculty member may edit it
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Param request body dto.UpdateContentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.CourseContent} "Content updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not the owner of this content"
// @Failure 404 {object} dto.ErrorResponse "Content not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/content/{id} [put]
func (c *FacultyController) UpdateContent(ctx *gin.Context) {
	contentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateContentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	content, err := c.contentService.Update(ctx, middleware.GetUserID(ctx), contentID, req.Title, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(content))
}

// DeleteContent removes content owned by the caller
// @Summary Delete course content
// @Description Deletes a content item; only the uploading faculty member may delete it
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Content deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid content ID"
// @Failure 403 {object} dto.ErrorResponse "Not the owner of this content"
// @Failure 404 {object} dto.ErrorResponse "Content not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/content/{id} [delete]
func (c *FacultyController) DeleteContent(ctx *gin.Context) {
	contentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.contentService.Delete(ctx, middleware.GetUserID(ctx), contentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Content deleted"}))
}

// GetSubjectContent lists a subject's content for faculty
// @Summary List course content
// @Description Retrieves every content item of a subject
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseContent} "Content retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/subjects/{id}/content [get]
func (c *FacultyController) GetSubjectContent(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	contents, err := c.contentService.GetBySubject(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(contents))
}
