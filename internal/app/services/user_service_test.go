package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/models/dto"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a student with a hashed password", func(t *testing.T) {
		userRepo := newMockUserRepo()
		svc := NewUserService(userRepo)

		user, err := svc.Register(ctx, &dto.RegisterUserRequest{
			Email:     "jane@university.edu",
			Password:  "secret123",
			FullName:  "Jane Doe",
			Role:      "student",
			StudentID: strPtr("S2024001"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleStudent, user.Role)
		assert.NotEqual(t, "secret123", user.Password)
	})

	t.Run("student without a student id is rejected", func(t *testing.T) {
		userRepo := newMockUserRepo()
		svc := NewUserService(userRepo)

		_, err := svc.Register(ctx, &dto.RegisterUserRequest{
			Email:    "jane@university.edu",
			Password: "secret123",
			FullName: "Jane Doe",
			Role:     "student",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		userRepo := newMockUserRepo()
		userRepo.add("jane@university.edu", models.RoleFaculty, nil)
		svc := NewUserService(userRepo)

		_, err := svc.Register(ctx, &dto.RegisterUserRequest{
			Email:    "jane@university.edu",
			Password: "secret123",
			FullName: "Jane Doe",
			Role:     "faculty",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("parent must link an existing student", func(t *testing.T) {
		userRepo := newMockUserRepo()
		svc := NewUserService(userRepo)

		_, err := svc.Register(ctx, &dto.RegisterUserRequest{
			Email:           "parent@example.com",
			Password:        "secret123",
			FullName:        "John Doe",
			Role:            "parent",
			ParentStudentID: strPtr("S2024001"),
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		userRepo.add("jane@university.edu", models.RoleStudent, strPtr("S2024001"))
		user, err := svc.Register(ctx, &dto.RegisterUserRequest{
			Email:           "parent@example.com",
			Password:        "secret123",
			FullName:        "John Doe",
			Role:            "parent",
			ParentStudentID: strPtr("S2024001"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleParent, user.Role)
	})
}

func TestAssignRole(t *testing.T) {
	ctx := context.Background()

	t.Run("changes the role", func(t *testing.T) {
		userRepo := newMockUserRepo()
		user := userRepo.add("jane@university.edu", models.RoleStudent, strPtr("S2024001"))
		svc := NewUserService(userRepo)

		updated, err := svc.AssignRole(ctx, user.ID, models.RoleFaculty)
		require.NoError(t, err)
		assert.Equal(t, models.RoleFaculty, updated.Role)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		userRepo := newMockUserRepo()
		user := userRepo.add("jane@university.edu", models.RoleStudent, nil)
		svc := NewUserService(userRepo)

		_, err := svc.AssignRole(ctx, user.ID, models.Role("superuser"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	})

	t.Run("unknown user fails with not found", func(t *testing.T) {
		svc := NewUserService(newMockUserRepo())

		_, err := svc.AssignRole(ctx, 999, models.RoleFaculty)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestGetChild(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the linked student", func(t *testing.T) {
		userRepo := newMockUserRepo()
		student := userRepo.add("jane@university.edu", models.RoleStudent, strPtr("S2024001"))
		parent := userRepo.add("parent@example.com", models.RoleParent, nil)
		parent.ParentStudentID = strPtr("S2024001")
		svc := NewUserService(userRepo)

		child, err := svc.GetChild(ctx, parent.ID)
		require.NoError(t, err)
		assert.Equal(t, student.ID, child.ID)
	})

	t.Run("non-parent has no child", func(t *testing.T) {
		userRepo := newMockUserRepo()
		student := userRepo.add("jane@university.edu", models.RoleStudent, strPtr("S2024001"))
		svc := NewUserService(userRepo)

		_, err := svc.GetChild(ctx, student.ID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
