package services

import (
	"context"
	"fmt"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/models/dto"
	"github.com/emrekoc/acadport/internal/app/repositories"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/auth"
	"github.com/emrekoc/acadport/internal/pkg/logger"
)

// UserService handles user account management
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error)
	AssignRole(ctx context.Context, userID int64, role models.Role) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	// GetChild resolves the student account a parent is linked to.
	GetChild(ctx context.Context, parentID int64) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new user account with a hashed password
func (s *userService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	role := models.Role(req.Role)
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}
	if role == models.RoleStudent && (req.StudentID == nil || *req.StudentID == "") {
		return nil, fmt.Errorf("%w: studentId is required for the student role", apperrors.ErrValidationFailed)
	}
	if role == models.RoleParent && (req.ParentStudentID == nil || *req.ParentStudentID == "") {
		return nil, fmt.Errorf("%w: parentStudentId is required for the parent role", apperrors.ErrValidationFailed)
	}
	if role == models.RoleParent {
		// The linked student must exist before the parent account does
		if _, err := s.userRepo.GetByStudentID(ctx, *req.ParentStudentID); err != nil {
			if apperrors.Is(err, apperrors.ErrUserNotFound) {
				return nil, fmt.Errorf("%w: no student with id %s", apperrors.ErrValidationFailed, *req.ParentStudentID)
			}
			return nil, err
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:           req.Email,
		Password:        hashed,
		Role:            role,
		FullName:        req.FullName,
		StudentID:       req.StudentID,
		ParentStudentID: req.ParentStudentID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("userID", user.ID).
		Str("role", string(role)).
		Msg("User registered")

	return user, nil
}

// AssignRole changes a user's role
func (s *userService) AssignRole(ctx context.Context, userID int64, role models.Role) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAll lists every user account
func (s *userService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetChild follows the parent's ParentStudentID link to the student account
func (s *userService) GetChild(ctx context.Context, parentID int64) (*models.User, error) {
	parent, err := s.userRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent.Role != models.RoleParent || parent.ParentStudentID == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return s.userRepo.GetByStudentID(ctx, *parent.ParentStudentID)
}
