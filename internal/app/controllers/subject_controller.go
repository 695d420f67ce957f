package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/models/dto"
	"github.com/emrekoc/acadport/internal/app/services"
	"github.com/emrekoc/acadport/internal/middleware"
)

// SubjectController handles the subject catalog endpoints
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// CreateSubject creates a new subject
// @Summary Create a subject
// @Description Creates a new subject with a unique code and a timetable slot
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=dto.SubjectResponse} "Subject created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Subject code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject := &models.Subject{
		Name:      req.Name,
		Code:      req.Code,
		Credits:   req.Credits,
		Slot:      req.Slot,
		FacultyID: req.FacultyID,
	}
	if err := c.subjectService.Create(ctx, subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(newSubjectResponse(subject)))
}

// GetAllSubjects lists the subject catalog
// @Summary List subjects
// @Description Retrieves every subject with its owning faculty
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SubjectResponse} "Subjects retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, newSubjectResponse(subject))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// GetSubjectByID retrieves one subject
// @Summary Get subject by ID
// @Description Retrieves a specific subject by its ID
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectResponse} "Subject retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubjectByID(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetByID(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(newSubjectResponse(subject)))
}

func newSubjectResponse(subject *models.Subject) dto.SubjectResponse {
	resp := dto.SubjectResponse{
		ID:        subject.ID,
		Name:      subject.Name,
		Code:      subject.Code,
		Credits:   subject.Credits,
		Slot:      subject.Slot,
		FacultyID: subject.FacultyID,
	}
	if subject.Faculty != nil {
		resp.FacultyName = &subject.Faculty.FullName
	}
	return resp
}
