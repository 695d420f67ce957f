package services

import (
	"context"
	"fmt"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/repositories"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
)

// ContentService handles course content uploaded by faculty
type ContentService interface {
	Create(ctx context.Context, facultyID, subjectID int64, title, body string) (*models.CourseContent, error)
	// Update and Delete are restricted to the uploading faculty member.
	Update(ctx context.Context, facultyID, contentID int64, title, body *string) (*models.CourseContent, error)
	Delete(ctx context.Context, facultyID, contentID int64) error
	// GetForStudent lists a subject's content; the student must be
	// enrolled in the subject to see it.
	GetForStudent(ctx context.Context, studentID, subjectID int64) ([]*models.CourseContent, error)
	GetBySubject(ctx context.Context, subjectID int64) ([]*models.CourseContent, error)
}

type contentService struct {
	contentRepo    repositories.CourseContentRepository
	subjectRepo    repositories.SubjectRepository
	enrollmentRepo repositories.EnrollmentRepository
}

// NewContentService creates a new content service instance
func NewContentService(contentRepo repositories.CourseContentRepository, subjectRepo repositories.SubjectRepository, enrollmentRepo repositories.EnrollmentRepository) ContentService {
	return &contentService{
		contentRepo:    contentRepo,
		subjectRepo:    subjectRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Create uploads content for a subject
func (s *contentService) Create(ctx context.Context, facultyID, subjectID int64, title, body string) (*models.CourseContent, error) {
	if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}

	content := &models.CourseContent{
		SubjectID: subjectID,
		FacultyID: facultyID,
		Title:     title,
		Content:   body,
	}
	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

// Update edits a content item owned by the caller
func (s *contentService) Update(ctx context.Context, facultyID, contentID int64, title, body *string) (*models.CourseContent, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if content.FacultyID != facultyID {
		return nil, apperrors.ErrPermissionDenied
	}

	if title != nil {
		content.Title = *title
	}
	if body != nil {
		content.Content = *body
	}
	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

// Delete removes a content item owned by the caller
func (s *contentService) Delete(ctx context.Context, facultyID, contentID int64) error {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return err
	}
	if content.FacultyID != facultyID {
		return apperrors.ErrPermissionDenied
	}

	return s.contentRepo.Delete(ctx, contentID)
}

// GetForStudent lists a subject's content for an enrolled student
func (s *contentService) GetForStudent(ctx context.Context, studentID, subjectID int64) ([]*models.CourseContent, error) {
	enrolled, err := s.enrollmentRepo.Exists(ctx, studentID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if !enrolled {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.contentRepo.GetBySubject(ctx, subjectID)
}

// GetBySubject lists a subject's content without an enrollment check
func (s *contentService) GetBySubject(ctx context.Context, subjectID int64) ([]*models.CourseContent, error) {
	return s.contentRepo.GetBySubject(ctx, subjectID)
}
