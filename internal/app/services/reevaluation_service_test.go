package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestReevaluation(t *testing.T) {
	ctx := context.Background()
	studentID := int64(10)

	setup := func() (*mockGradeRepo, *mockReevaluationRepo, *mockSubjectRepo, ReevaluationService) {
		gradeRepo := newMockGradeRepo()
		reevaluationRepo := newMockReevaluationRepo(gradeRepo)
		subjectRepo := newMockSubjectRepo()
		svc := NewReevaluationService(reevaluationRepo, subjectRepo)
		return gradeRepo, reevaluationRepo, subjectRepo, svc
	}

	t.Run("submission creates a pending request", func(t *testing.T) {
		_, _, subjectRepo, svc := setup()
		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)

		request, err := svc.Submit(ctx, studentID, math.ID, "please recheck question 4")
		require.NoError(t, err)
		assert.Equal(t, models.ReevaluationPending, request.Status)
	})

	t.Run("submission for an unknown subject fails", func(t *testing.T) {
		_, _, _, svc := setup()

		_, err := svc.Submit(ctx, studentID, 999, "please recheck")
		assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
	})

	t.Run("a student may submit repeatedly for the same subject", func(t *testing.T) {
		_, reevaluationRepo, subjectRepo, svc := setup()
		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)

		_, err := svc.Submit(ctx, studentID, math.ID, "first appeal")
		require.NoError(t, err)
		_, err = svc.Submit(ctx, studentID, math.ID, "second appeal")
		require.NoError(t, err)
		assert.Len(t, reevaluationRepo.requests, 2)
	})

	t.Run("deciding an unknown request fails with not found", func(t *testing.T) {
		_, _, _, svc := setup()

		_, err := svc.Decide(ctx, 999, models.ReevaluationApproved, nil)
		assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
	})

	t.Run("approval unlocks the matching grade", func(t *testing.T) {
		gradeRepo, _, subjectRepo, svc := setup()
		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)

		grade := &models.Grade{StudentID: studentID, SubjectID: math.ID, Marks: 85, Grade: "A", IsFinal: true}
		require.NoError(t, gradeRepo.Create(ctx, grade))

		request, err := svc.Submit(ctx, studentID, math.ID, "please recheck")
		require.NoError(t, err)

		decided, err := svc.Decide(ctx, request.ID, models.ReevaluationApproved, strPtr("granted"))
		require.NoError(t, err)
		assert.Equal(t, models.ReevaluationApproved, decided.Status)
		require.NotNil(t, decided.AdminComment)
		assert.Equal(t, "granted", *decided.AdminComment)

		stored := gradeRepo.grades[pairKey{studentID, math.ID}]
		assert.True(t, stored.ReevaluationAllowed)
		assert.True(t, stored.IsFinal)
	})

	t.Run("denial leaves the grade untouched", func(t *testing.T) {
		gradeRepo, _, subjectRepo, svc := setup()
		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)

		grade := &models.Grade{StudentID: studentID, SubjectID: math.ID, Marks: 85, Grade: "A", IsFinal: true}
		require.NoError(t, gradeRepo.Create(ctx, grade))

		request, err := svc.Submit(ctx, studentID, math.ID, "please recheck")
		require.NoError(t, err)

		decided, err := svc.Decide(ctx, request.ID, models.ReevaluationDenied, nil)
		require.NoError(t, err)
		assert.Equal(t, models.ReevaluationDenied, decided.Status)
		assert.False(t, gradeRepo.grades[pairKey{studentID, math.ID}].ReevaluationAllowed)
	})

	t.Run("approval before any grade exists is a no-op on grades", func(t *testing.T) {
		gradeRepo, _, subjectRepo, svc := setup()
		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)

		request, err := svc.Submit(ctx, studentID, math.ID, "please recheck")
		require.NoError(t, err)

		decided, err := svc.Decide(ctx, request.ID, models.ReevaluationApproved, nil)
		require.NoError(t, err)
		assert.Equal(t, models.ReevaluationApproved, decided.Status)
		assert.Empty(t, gradeRepo.grades)
	})

	t.Run("an invalid decision status is rejected", func(t *testing.T) {
		_, _, subjectRepo, svc := setup()
		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)

		request, err := svc.Submit(ctx, studentID, math.ID, "please recheck")
		require.NoError(t, err)

		_, err = svc.Decide(ctx, request.ID, models.ReevaluationStatus("pending"), nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
