package services

import (
	"context"
	"fmt"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/repositories"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/validation"
)

// SubjectService handles the subject catalog
type SubjectService interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
}

type subjectService struct {
	subjectRepo repositories.SubjectRepository
	userRepo    repositories.UserRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo repositories.SubjectRepository, userRepo repositories.UserRepository) SubjectService {
	return &subjectService{
		subjectRepo: subjectRepo,
		userRepo:    userRepo,
	}
}

// Create validates and inserts a new subject. Subjects are immutable once
// created; there is no update path.
func (s *subjectService) Create(ctx context.Context, subject *models.Subject) error {
	if !validation.ValidSubjectCode(subject.Code) {
		return fmt.Errorf("%w: malformed subject code %q", apperrors.ErrValidationFailed, subject.Code)
	}
	if !validation.ValidSlot(subject.Slot) {
		return fmt.Errorf("%w: malformed slot %q", apperrors.ErrValidationFailed, subject.Slot)
	}
	if subject.Credits <= 0 {
		return fmt.Errorf("%w: credits must be positive", apperrors.ErrValidationFailed)
	}

	if subject.FacultyID != nil {
		faculty, err := s.userRepo.GetByID(ctx, *subject.FacultyID)
		if err != nil {
			return err
		}
		if faculty.Role != models.RoleFaculty {
			return fmt.Errorf("%w: user %d is not a faculty member", apperrors.ErrValidationFailed, faculty.ID)
		}
	}

	return s.subjectRepo.Create(ctx, subject)
}

// GetByID retrieves a subject by ID
func (s *subjectService) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

// GetAll lists the full catalog
func (s *subjectService) GetAll(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}
