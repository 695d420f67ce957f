package services

import (
	"context"
	"fmt"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/repositories"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/logger"
)

// ReevaluationService handles grade re-evaluation requests
type ReevaluationService interface {
	Submit(ctx context.Context, studentID, subjectID int64, reason string) (*models.ReevaluationRequest, error)
	// Decide applies the admin decision. Approval unlocks the matching
	// grade atomically with the status update.
	Decide(ctx context.Context, requestID int64, status models.ReevaluationStatus, comment *string) (*models.ReevaluationRequest, error)
	GetAll(ctx context.Context) ([]*models.ReevaluationRequest, error)
}

type reevaluationService struct {
	reevaluationRepo repositories.ReevaluationRepository
	subjectRepo      repositories.SubjectRepository
}

// NewReevaluationService creates a new re-evaluation service instance
func NewReevaluationService(reevaluationRepo repositories.ReevaluationRepository, subjectRepo repositories.SubjectRepository) ReevaluationService {
	return &reevaluationService{
		reevaluationRepo: reevaluationRepo,
		subjectRepo:      subjectRepo,
	}
}

// Submit creates a pending request. A student may submit multiple requests
// for the same subject over time.
func (s *reevaluationService) Submit(ctx context.Context, studentID, subjectID int64, reason string) (*models.ReevaluationRequest, error) {
	if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}

	request := &models.ReevaluationRequest{
		StudentID: studentID,
		SubjectID: subjectID,
		Reason:    reason,
	}
	if err := s.reevaluationRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("error submitting re-evaluation request: %w", err)
	}

	return request, nil
}

// Decide sets the request's status and comment
func (s *reevaluationService) Decide(ctx context.Context, requestID int64, status models.ReevaluationStatus, comment *string) (*models.ReevaluationRequest, error) {
	if status != models.ReevaluationApproved && status != models.ReevaluationDenied {
		return nil, fmt.Errorf("%w: status must be approved or denied", apperrors.ErrValidationFailed)
	}

	request, err := s.reevaluationRepo.Decide(ctx, requestID, status, comment)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("requestID", requestID).
		Str("status", string(status)).
		Msg("Re-evaluation request decided")

	return request, nil
}

// GetAll lists every request, newest first
func (s *reevaluationService) GetAll(ctx context.Context) ([]*models.ReevaluationRequest, error) {
	return s.reevaluationRepo.GetAll(ctx)
}
