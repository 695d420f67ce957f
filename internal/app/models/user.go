package models

import (
	"time"
)

// Role defines the user role type
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleParent  Role = "parent"
)

// ValidRole reports whether the given role is one of the four portal roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleFaculty, RoleParent:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table.
// StudentID is set for students only; ParentStudentID links a parent
// account to a student's StudentID.
type User struct {
	ID              int64     `json:"id" db:"id" example:"1"`
	Email           string    `json:"email" db:"email" example:"user@university.edu"`
	Password        string    `json:"-" db:"password"` // hashed, excluded from JSON
	Role            Role      `json:"role" db:"role" example:"student"`
	FullName        string    `json:"fullName" db:"full_name" example:"Jane Doe"`
	StudentID       *string   `json:"studentId,omitempty" db:"student_id" example:"S2024001"`
	ParentStudentID *string   `json:"parentStudentId,omitempty" db:"parent_student_id" example:"S2024001"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
