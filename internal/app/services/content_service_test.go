package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
)

func TestContentOwnership(t *testing.T) {
	ctx := context.Background()
	ownerID := int64(5)
	otherID := int64(6)
	studentID := int64(10)

	setup := func() (ContentService, *mockEnrollmentRepo, int64, int64) {
		contentRepo := newMockContentRepo()
		subjectRepo := newMockSubjectRepo()
		enrollmentRepo := newMockEnrollmentRepo()
		svc := NewContentService(contentRepo, subjectRepo, enrollmentRepo)

		math := subjectRepo.add("Mathematics", "MATH101", 4, "A1", int64Ptr(ownerID))
		content, err := svc.Create(ctx, ownerID, math.ID, "Week 1", "Introduction to limits")
		require.NoError(t, err)

		return svc, enrollmentRepo, math.ID, content.ID
	}

	t.Run("owner may update", func(t *testing.T) {
		svc, _, _, contentID := setup()

		updated, err := svc.Update(ctx, ownerID, contentID, strPtr("Week 1 (revised)"), nil)
		require.NoError(t, err)
		assert.Equal(t, "Week 1 (revised)", updated.Title)
		assert.Equal(t, "Introduction to limits", updated.Content)
	})

	t.Run("non-owner may not update or delete", func(t *testing.T) {
		svc, _, _, contentID := setup()

		_, err := svc.Update(ctx, otherID, contentID, strPtr("hijacked"), nil)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		err = svc.Delete(ctx, otherID, contentID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("owner may delete", func(t *testing.T) {
		svc, _, _, contentID := setup()

		require.NoError(t, svc.Delete(ctx, ownerID, contentID))

		_, err := svc.Update(ctx, ownerID, contentID, strPtr("gone"), nil)
		assert.ErrorIs(t, err, apperrors.ErrContentNotFound)
	})

	t.Run("upload for an unknown subject fails", func(t *testing.T) {
		svc, _, _, _ := setup()

		_, err := svc.Create(ctx, ownerID, 999, "Week 1", "body")
		assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
	})

	t.Run("students only see content of enrolled subjects", func(t *testing.T) {
		svc, enrollmentRepo, subjectID, _ := setup()

		_, err := svc.GetForStudent(ctx, studentID, subjectID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		enrollmentRepo.add(studentID, &models.Subject{ID: subjectID, FacultyID: int64Ptr(ownerID)})
		contents, err := svc.GetForStudent(ctx, studentID, subjectID)
		require.NoError(t, err)
		assert.Len(t, contents, 1)
	})
}
