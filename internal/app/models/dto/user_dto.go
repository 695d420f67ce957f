package dto

import (
	"github.com/emrekoc/acadport/internal/app/models"
)

// RegisterUserRequest creates a new user account (admin only). StudentID is
// required for students; ParentStudentID links a parent to a child's StudentID.
type RegisterUserRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=6"`
	FullName        string  `json:"fullName" binding:"required,min=2,max=100"`
	Role            string  `json:"role" binding:"required,oneof=admin student faculty parent"`
	StudentID       *string `json:"studentId,omitempty"`
	ParentStudentID *string `json:"parentStudentId,omitempty"`
}

// AssignRoleRequest changes a user's role
type AssignRoleRequest struct {
	UserID int64  `json:"userId" binding:"required,gt=0"`
	Role   string `json:"role" binding:"required,oneof=admin student faculty parent"`
}

// UserResponse is the public projection of a user
type UserResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  string  `json:"fullName"`
	StudentID *string `json:"studentId,omitempty"`
}

// NewUserResponse maps a user model to its public projection
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		FullName:  u.FullName,
		StudentID: u.StudentID,
	}
}
