package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/models/dto"
	"github.com/emrekoc/acadport/internal/app/services"
	"github.com/emrekoc/acadport/internal/middleware"
)

// ParentController handles the parent dashboard endpoints. Every endpoint
// resolves the caller's linked child first and then reuses the student views.
type ParentController struct {
	userService       services.UserService
	enrollmentService services.EnrollmentService
	gradeService      services.GradeService
	attendanceService services.AttendanceService
	timetableService  services.TimetableService
}

// NewParentController creates a new ParentController
func NewParentController(
	userService services.UserService,
	enrollmentService services.EnrollmentService,
	gradeService services.GradeService,
	attendanceService services.AttendanceService,
	timetableService services.TimetableService,
) *ParentController {
	return &ParentController{
		userService:       userService,
		enrollmentService: enrollmentService,
		gradeService:      gradeService,
		attendanceService: attendanceService,
		timetableService:  timetableService,
	}
}

func (c *ParentController) child(ctx *gin.Context) (*models.User, bool) {
	child, err := c.userService.GetChild(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return child, true
}

// GetChildSubjects lists the linked student's enrolled subjects
// @Summary List the child's subjects
// @Description Retrieves the enrollments of the student linked to the calling parent
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrolledSubjectResponse} "Subjects retrieved"
// @Failure 403 {object} dto.ErrorResponse "Parent role required"
// @Failure 404 {object} dto.ErrorResponse "No linked student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parent/subjects [get]
func (c *ParentController) GetChildSubjects(ctx *gin.Context) {
	child, ok := c.child(ctx)
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetStudentEnrollments(ctx, child.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(newEnrolledSubjectResponses(enrollments)))
}

// GetChildGrades lists the linked student's grades
// @Summary List the child's grades
// @Description Retrieves the grades of the student linked to the calling parent
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse} "Grades retrieved"
// @Failure 403 {object} dto.ErrorResponse "Parent role required"
// @Failure 404 {object} dto.ErrorResponse "No linked student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parent/grades [get]
func (c *ParentController) GetChildGrades(ctx *gin.Context) {
	child, ok := c.child(ctx)
	if !ok {
		return
	}

	grades, err := c.gradeService.GetStudentGrades(ctx, child.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(newGradeResponses(grades)))
}

// GetChildAttendance lists the linked student's attendance
// @Summary List the child's attendance
// @Description Retrieves the attendance records of the student linked to the calling parent
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceResponse} "Attendance retrieved"
// @Failure 403 {object} dto.ErrorResponse "Parent role required"
// @Failure 404 {object} dto.ErrorResponse "No linked student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parent/attendance [get]
func (c *ParentController) GetChildAttendance(ctx *gin.Context) {
	child, ok := c.child(ctx)
	if !ok {
		return
	}

	records, err := c.attendanceService.GetStudentAttendance(ctx, child.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(newAttendanceResponses(records)))
}

// GetChildTimetable returns the linked student's timetable
// @Summary Get the child's timetable
// @Description Retrieves the timetable of the student linked to the calling parent
// @Tags parent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.Timetable} "Timetable retrieved"
// @Failure 403 {object} dto.ErrorResponse "Parent role required"
// @Failure 404 {object} dto.ErrorResponse "No linked student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parent/timetable [get]
func (c *ParentController) GetChildTimetable(ctx *gin.Context) {
	child, ok := c.child(ctx)
	if !ok {
		return
	}

	timetable, err := c.timetableService.GetStudentTimetable(ctx, child.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(timetable))
}
