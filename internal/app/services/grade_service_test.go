package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/acadport/internal/pkg/apperrors"
)

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		marks float64
		want  string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{80, "A"},
		{79, "B+"},
		{70, "B+"},
		{69, "B"},
		{60, "B"},
		{59, "C"},
		{50, "C"},
		{49, "D"},
		{40, "D"},
		{39.9, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterGrade(tt.marks), "marks %.1f", tt.marks)
	}
}

func TestRecordGrade(t *testing.T) {
	ctx := context.Background()
	facultyID := int64(5)
	studentID := int64(10)

	setup := func() (*mockGradeRepo, *mockEnrollmentRepo, *mockSubjectRepo, GradeService, int64) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		gradeRepo := newMockGradeRepo()

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", int64Ptr(facultyID))
		enrollmentRepo.add(studentID, math)

		svc := NewGradeService(gradeRepo, enrollmentRepo)
		return gradeRepo, enrollmentRepo, subjectRepo, svc, math.ID
	}

	t.Run("creates a grade with a derived letter", func(t *testing.T) {
		_, _, _, svc, subjectID := setup()

		grade, err := svc.RecordGrade(ctx, facultyID, studentID, subjectID, 85)
		require.NoError(t, err)
		assert.Equal(t, "A", grade.Grade)
		assert.False(t, grade.IsFinal)
		assert.False(t, grade.ReevaluationAllowed)
	})

	t.Run("overwrites a non-final grade", func(t *testing.T) {
		_, _, _, svc, subjectID := setup()

		_, err := svc.RecordGrade(ctx, facultyID, studentID, subjectID, 55)
		require.NoError(t, err)

		grade, err := svc.RecordGrade(ctx, facultyID, studentID, subjectID, 91)
		require.NoError(t, err)
		assert.Equal(t, float64(91), grade.Marks)
		assert.Equal(t, "A+", grade.Grade)
	})

	t.Run("rejects marks outside the range", func(t *testing.T) {
		_, _, _, svc, subjectID := setup()

		_, err := svc.RecordGrade(ctx, facultyID, studentID, subjectID, 101)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		_, err = svc.RecordGrade(ctx, facultyID, studentID, subjectID, -1)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("forbidden when the student is not enrolled under the caller", func(t *testing.T) {
		_, _, _, svc, subjectID := setup()

		_, err := svc.RecordGrade(ctx, facultyID+1, studentID, subjectID, 85)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("forbidden even when enrolled under a different faculty's offering", func(t *testing.T) {
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		gradeRepo := newMockGradeRepo()

		otherFaculty := int64(6)
		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", int64Ptr(otherFaculty))
		enrollmentRepo.add(studentID, math)

		svc := NewGradeService(gradeRepo, enrollmentRepo)
		_, err := svc.RecordGrade(ctx, facultyID, studentID, math.ID, 85)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("final grade is locked against edits", func(t *testing.T) {
		gradeRepo, _, _, svc, subjectID := setup()

		_, err := svc.RecordGrade(ctx, facultyID, studentID, subjectID, 85)
		require.NoError(t, err)

		_, err = svc.Finalize(ctx, facultyID, subjectID)
		require.NoError(t, err)

		_, err = svc.RecordGrade(ctx, facultyID, studentID, subjectID, 95)
		assert.ErrorIs(t, err, apperrors.ErrGradeLocked)

		stored := gradeRepo.grades[pairKey{studentID, subjectID}]
		assert.Equal(t, float64(85), stored.Marks)
	})

	t.Run("approved re-evaluation reopens a final grade until finalize", func(t *testing.T) {
		gradeRepo, _, _, svc, subjectID := setup()

		_, err := svc.RecordGrade(ctx, facultyID, studentID, subjectID, 85)
		require.NoError(t, err)
		_, err = svc.Finalize(ctx, facultyID, subjectID)
		require.NoError(t, err)

		gradeRepo.grades[pairKey{studentID, subjectID}].ReevaluationAllowed = true

		// The unlock is not consumed by an edit; it persists until the
		// next finalize.
		grade, err := svc.RecordGrade(ctx, facultyID, studentID, subjectID, 92)
		require.NoError(t, err)
		assert.Equal(t, "A+", grade.Grade)

		_, err = svc.RecordGrade(ctx, facultyID, studentID, subjectID, 94)
		require.NoError(t, err)

		_, err = svc.Finalize(ctx, facultyID, subjectID)
		require.NoError(t, err)

		_, err = svc.RecordGrade(ctx, facultyID, studentID, subjectID, 96)
		assert.ErrorIs(t, err, apperrors.ErrGradeLocked)
	})
}

func TestFinalize(t *testing.T) {
	ctx := context.Background()
	facultyID := int64(5)

	t.Run("locks every grade of the subject and no others", func(t *testing.T) {
		gradeRepo := newMockGradeRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		subjectRepo := newMockSubjectRepo()

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", int64Ptr(facultyID))
		physics := subjectRepo.add("Physics", "PHY101", 4, "B1", int64Ptr(facultyID))
		for _, studentID := range []int64{10, 11, 12} {
			enrollmentRepo.add(studentID, math)
		}
		enrollmentRepo.add(10, physics)

		svc := NewGradeService(gradeRepo, enrollmentRepo)
		for _, studentID := range []int64{10, 11, 12} {
			_, err := svc.RecordGrade(ctx, facultyID, studentID, math.ID, 75)
			require.NoError(t, err)
		}
		_, err := svc.RecordGrade(ctx, facultyID, 10, physics.ID, 75)
		require.NoError(t, err)

		updated, err := svc.Finalize(ctx, facultyID, math.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), updated)

		for _, studentID := range []int64{10, 11, 12} {
			assert.True(t, gradeRepo.grades[pairKey{studentID, math.ID}].IsFinal)
		}
		assert.False(t, gradeRepo.grades[pairKey{10, physics.ID}].IsFinal)
	})

	t.Run("any faculty may finalize any subject", func(t *testing.T) {
		gradeRepo := newMockGradeRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		subjectRepo := newMockSubjectRepo()

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", int64Ptr(facultyID))
		enrollmentRepo.add(10, math)

		svc := NewGradeService(gradeRepo, enrollmentRepo)
		_, err := svc.RecordGrade(ctx, facultyID, 10, math.ID, 75)
		require.NoError(t, err)

		updated, err := svc.Finalize(ctx, facultyID+1, math.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), updated)
	})

	t.Run("finalize with no grades updates nothing", func(t *testing.T) {
		gradeRepo := newMockGradeRepo()
		enrollmentRepo := newMockEnrollmentRepo()

		svc := NewGradeService(gradeRepo, enrollmentRepo)
		updated, err := svc.Finalize(ctx, facultyID, 1)
		require.NoError(t, err)
		assert.Zero(t, updated)
	})

	t.Run("finalize clears a re-evaluation unlock", func(t *testing.T) {
		gradeRepo := newMockGradeRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		subjectRepo := newMockSubjectRepo()

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", int64Ptr(facultyID))
		enrollmentRepo.add(10, math)

		svc := NewGradeService(gradeRepo, enrollmentRepo)
		_, err := svc.RecordGrade(ctx, facultyID, 10, math.ID, 75)
		require.NoError(t, err)

		gradeRepo.grades[pairKey{10, math.ID}].ReevaluationAllowed = true

		_, err = svc.Finalize(ctx, facultyID, math.ID)
		require.NoError(t, err)
		assert.False(t, gradeRepo.grades[pairKey{10, math.ID}].ReevaluationAllowed)
	})
}
