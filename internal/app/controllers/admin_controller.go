package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/models/dto"
	"github.com/emrekoc/acadport/internal/app/services"
	"github.com/emrekoc/acadport/internal/middleware"
)

// AdminController handles user administration and re-evaluation decisions
type AdminController struct {
	userService         services.UserService
	reevaluationService services.ReevaluationService
}

// NewAdminController creates a new AdminController
func NewAdminController(userService services.UserService, reevaluationService services.ReevaluationService) *AdminController {
	return &AdminController{
		userService:         userService,
		reevaluationService: reevaluationService,
	}
}

// RegisterUser creates a new user account
// @Summary Register a user
// @Description Creates a new user account with the given role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "User created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Email or student ID already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [post]
func (c *AdminController) RegisterUser(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewUserResponse(user)))
}

// AssignRole changes a user's role
// @Summary Assign a role
// @Description Changes an existing user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignRoleRequest true "User and role"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Role updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users/role [put]
func (c *AdminController) AssignRole(ctx *gin.Context) {
	var req dto.AssignRoleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.AssignRole(ctx, req.UserID, models.Role(req.Role))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserResponse(user)))
}

// GetAllUsers lists every user account
// @Summary List users
// @Description Retrieves all user accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Users retrieved"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// GetReevaluationRequests lists all re-evaluation requests
// @Summary List re-evaluation requests
// @Description Retrieves every re-evaluation request, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ReevaluationResponse} "Requests retrieved"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/reevaluations [get]
func (c *AdminController) GetReevaluationRequests(ctx *gin.Context) {
	requests, err := c.reevaluationService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.ReevaluationResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, newReevaluationResponse(request))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// DecideReevaluation applies an admin decision to a request
// @Summary Decide a re-evaluation request
// @Description Approves or denies a pending request; approval unlocks the matching grade for editing
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.DecideReevaluationRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.ReevaluationResponse} "Request decided"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/reevaluations/{id} [put]
func (c *AdminController) DecideReevaluation(ctx *gin.Context) {
	requestID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.DecideReevaluationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	request, err := c.reevaluationService.Decide(ctx, requestID, models.ReevaluationStatus(req.Status), req.AdminComment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(newReevaluationResponse(request)))
}

func newReevaluationResponse(request *models.ReevaluationRequest) dto.ReevaluationResponse {
	return dto.ReevaluationResponse{
		ID:           request.ID,
		StudentID:    request.StudentID,
		SubjectID:    request.SubjectID,
		Reason:       request.Reason,
		Status:       string(request.Status),
		AdminComment: request.AdminComment,
		CreatedAt:    request.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// parseIDParam parses a positive integer path parameter, writing a
// validation error response when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
