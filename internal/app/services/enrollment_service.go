package services

import (
	"context"
	"fmt"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/repositories"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/logger"
)

// MaxTotalCredits is the per-student enrollment credit ceiling
const MaxTotalCredits = 27

// EnrollmentService handles student enrollment into subjects
type EnrollmentService interface {
	// Enroll registers the student into the requested subjects in one
	// atomic batch. Subjects the student is already enrolled in are
	// silently skipped; the whole request fails on a credit overflow or
	// slot clash without any partial inserts.
	Enroll(ctx context.Context, studentID int64, subjectIDs []int64) ([]*models.Enrollment, error)
	GetStudentEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetFacultyEnrollments(ctx context.Context, facultyID int64) ([]*models.Enrollment, error)
}

type enrollmentService struct {
	enrollmentRepo repositories.EnrollmentRepository
	subjectRepo    repositories.SubjectRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo repositories.EnrollmentRepository, subjectRepo repositories.SubjectRepository) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		subjectRepo:    subjectRepo,
	}
}

// Enroll validates the requested subjects against the student's current
// enrollments and inserts the new ones in a single transaction.
func (s *enrollmentService) Enroll(ctx context.Context, studentID int64, subjectIDs []int64) ([]*models.Enrollment, error) {
	// Deduplicate the request while preserving order
	seen := make(map[int64]struct{}, len(subjectIDs))
	requested := make([]int64, 0, len(subjectIDs))
	for _, id := range subjectIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		requested = append(requested, id)
	}

	subjects, err := s.subjectRepo.GetByIDs(ctx, requested)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	if len(subjects) != len(requested) {
		return nil, apperrors.ErrSubjectNotFound
	}

	existing, err := s.enrollmentRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	enrolledIn := make(map[int64]struct{}, len(existing))
	for _, e := range existing {
		enrolledIn[e.SubjectID] = struct{}{}
	}

	// Re-enrollment is a silent skip, not an error
	newSubjects := make([]*models.Subject, 0, len(subjects))
	for _, subject := range subjects {
		if _, ok := enrolledIn[subject.ID]; ok {
			continue
		}
		newSubjects = append(newSubjects, subject)
	}
	if len(newSubjects) == 0 {
		return []*models.Enrollment{}, nil
	}

	totalCredits := 0
	for _, e := range existing {
		if e.Subject != nil {
			totalCredits += e.Subject.Credits
		}
	}
	for _, subject := range newSubjects {
		totalCredits += subject.Credits
	}
	if totalCredits > MaxTotalCredits {
		return nil, fmt.Errorf("%w: total credits %d exceed the limit of %d",
			apperrors.ErrCreditLimitExceeded, totalCredits, MaxTotalCredits)
	}

	// Slot clash against current enrollments, then within the new batch
	occupied := make(map[string]string, len(existing))
	for _, e := range existing {
		if e.Subject != nil {
			occupied[e.Subject.Slot] = e.Subject.Code
		}
	}
	for _, subject := range newSubjects {
		if code, ok := occupied[subject.Slot]; ok {
			return nil, fmt.Errorf("%w: slot %s is already taken by %s",
				apperrors.ErrSlotClash, subject.Slot, code)
		}
		occupied[subject.Slot] = subject.Code
	}

	enrollments := make([]*models.Enrollment, 0, len(newSubjects))
	for _, subject := range newSubjects {
		enrollments = append(enrollments, &models.Enrollment{
			StudentID: studentID,
			SubjectID: subject.ID,
			FacultyID: subject.FacultyID,
			Subject:   subject,
		})
	}

	// A concurrent enrollment of the same pair surfaces as ErrConflict
	// through the unique constraint; the batch rolls back as a whole.
	if err := s.enrollmentRepo.CreateBatch(ctx, enrollments); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", studentID).
		Int("enrolled", len(enrollments)).
		Msg("Student enrolled")

	return enrollments, nil
}

// GetStudentEnrollments lists a student's enrollments with subjects attached
func (s *enrollmentService) GetStudentEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.GetByStudent(ctx, studentID)
}

// GetFacultyEnrollments lists enrollments for the subjects a faculty member teaches
func (s *enrollmentService) GetFacultyEnrollments(ctx context.Context, facultyID int64) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.GetByFaculty(ctx, facultyID)
}
