package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/acadport/internal/pkg/apperrors"
)

func int64Ptr(v int64) *int64 { return &v }

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	studentID := int64(10)

	t.Run("enrolls into requested subjects", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", int64Ptr(1))
		physics := subjectRepo.add("Physics", "PHY101", 4, "B1", int64Ptr(1))

		enrollments, err := svc.Enroll(ctx, studentID, []int64{math.ID, physics.ID})
		require.NoError(t, err)
		assert.Len(t, enrollments, 2)
		assert.Equal(t, math.ID, enrollments[0].SubjectID)
		assert.Equal(t, physics.ID, enrollments[1].SubjectID)
	})

	t.Run("unknown subject fails with not found", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)

		_, err := svc.Enroll(ctx, studentID, []int64{math.ID, 999})
		assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
	})

	t.Run("re-enrollment is silently skipped", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)
		physics := subjectRepo.add("Physics", "PHY101", 4, "B1", nil)
		enrollmentRepo.add(studentID, math)

		enrollments, err := svc.Enroll(ctx, studentID, []int64{math.ID, physics.ID})
		require.NoError(t, err)
		require.Len(t, enrollments, 1)
		assert.Equal(t, physics.ID, enrollments[0].SubjectID)
	})

	t.Run("all requested subjects already enrolled is a no-op", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)
		enrollmentRepo.add(studentID, math)

		enrollments, err := svc.Enroll(ctx, studentID, []int64{math.ID})
		require.NoError(t, err)
		assert.Empty(t, enrollments)
		assert.Len(t, enrollmentRepo.enrollments, 1)
	})

	t.Run("duplicate ids in one request count once", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)

		enrollments, err := svc.Enroll(ctx, studentID, []int64{math.ID, math.ID, math.ID})
		require.NoError(t, err)
		assert.Len(t, enrollments, 1)
	})

	t.Run("credit total at the cap is allowed", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		big := subjectRepo.add("Big", "BIG101", 25, "A1", nil)
		small := subjectRepo.add("Small", "SML101", 2, "B1", nil)
		enrollmentRepo.add(studentID, big)

		_, err := svc.Enroll(ctx, studentID, []int64{small.ID})
		assert.NoError(t, err)
	})

	t.Run("credit total above the cap is rejected", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		big := subjectRepo.add("Big", "BIG101", 25, "A1", nil)
		small := subjectRepo.add("Small", "SML101", 3, "B1", nil)
		enrollmentRepo.add(studentID, big)

		_, err := svc.Enroll(ctx, studentID, []int64{small.ID})
		assert.ErrorIs(t, err, apperrors.ErrCreditLimitExceeded)
		assert.Len(t, enrollmentRepo.enrollments, 1)
	})

	t.Run("slot clash with an existing enrollment", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)
		chem := subjectRepo.add("Chemistry", "CHEM101", 4, "A1", nil)
		enrollmentRepo.add(studentID, math)

		_, err := svc.Enroll(ctx, studentID, []int64{chem.ID})
		assert.ErrorIs(t, err, apperrors.ErrSlotClash)
	})

	t.Run("slot clash within the new batch", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)
		chem := subjectRepo.add("Chemistry", "CHEM101", 4, "A1", nil)

		_, err := svc.Enroll(ctx, studentID, []int64{math.ID, chem.ID})
		assert.ErrorIs(t, err, apperrors.ErrSlotClash)
		assert.Empty(t, enrollmentRepo.enrollments)
	})

	t.Run("losing a concurrent race surfaces a conflict", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		enrollmentRepo.conflictOnCreate = true
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", nil)

		_, err := svc.Enroll(ctx, studentID, []int64{math.ID})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("faculty snapshot is taken from the subject", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewEnrollmentService(enrollmentRepo, subjectRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", int64Ptr(7))

		enrollments, err := svc.Enroll(ctx, studentID, []int64{math.ID})
		require.NoError(t, err)
		require.Len(t, enrollments, 1)
		require.NotNil(t, enrollments[0].FacultyID)
		assert.Equal(t, int64(7), *enrollments[0].FacultyID)
	})
}
