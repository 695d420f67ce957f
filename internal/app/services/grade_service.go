package services

import (
	"context"
	"fmt"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/repositories"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/logger"
	"github.com/emrekoc/acadport/internal/pkg/validation"
)

// LetterGrade derives the letter grade from marks on a 0-100 scale.
// Bands are inclusive on their lower bound.
func LetterGrade(marks float64) string {
	switch {
	case marks >= 90:
		return "A+"
	case marks >= 80:
		return "A"
	case marks >= 70:
		return "B+"
	case marks >= 60:
		return "B"
	case marks >= 50:
		return "C"
	case marks >= 40:
		return "D"
	default:
		return "F"
	}
}

// GradeService handles grade recording, finalization and listing
type GradeService interface {
	// RecordGrade creates or overwrites the grade for (student, subject).
	// The caller must be the faculty whose offering the student is enrolled
	// in; a final grade rejects edits unless re-evaluation was approved.
	RecordGrade(ctx context.Context, facultyID, studentID, subjectID int64, marks float64) (*models.Grade, error)
	// Finalize locks every grade of the subject and returns the count.
	Finalize(ctx context.Context, facultyID, subjectID int64) (int64, error)
	GetStudentGrades(ctx context.Context, studentID int64) ([]*models.Grade, error)
}

type gradeService struct {
	gradeRepo      repositories.GradeRepository
	enrollmentRepo repositories.EnrollmentRepository
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo repositories.GradeRepository, enrollmentRepo repositories.EnrollmentRepository) GradeService {
	return &gradeService{
		gradeRepo:      gradeRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// RecordGrade creates or updates a grade. The letter grade is always derived
// from marks here, never taken from the caller.
func (s *gradeService) RecordGrade(ctx context.Context, facultyID, studentID, subjectID int64, marks float64) (*models.Grade, error) {
	if !validation.ValidMarks(marks) {
		return nil, fmt.Errorf("%w: marks must be between %.0f and %.0f",
			apperrors.ErrValidationFailed, validation.MarksMin, validation.MarksMax)
	}

	// A faculty member may only grade students enrolled in their own
	// offering of the subject.
	owns, err := s.enrollmentRepo.ExistsForFaculty(ctx, studentID, subjectID, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment ownership: %w", err)
	}
	if !owns {
		return nil, apperrors.ErrPermissionDenied
	}

	grade, err := s.gradeRepo.GetByStudentAndSubject(ctx, studentID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	if grade == nil {
		grade = &models.Grade{
			StudentID: studentID,
			SubjectID: subjectID,
			Marks:     marks,
			Grade:     LetterGrade(marks),
		}
		if err := s.gradeRepo.Create(ctx, grade); err != nil {
			return nil, err
		}
		return grade, nil
	}

	// A final grade may only be edited after an approved re-evaluation.
	// The unlock persists until the next finalize call.
	if grade.IsFinal && !grade.ReevaluationAllowed {
		return nil, apperrors.ErrGradeLocked
	}

	grade.Marks = marks
	grade.Grade = LetterGrade(marks)
	if err := s.gradeRepo.Update(ctx, grade); err != nil {
		return nil, err
	}

	return grade, nil
}

// Finalize locks all grades of a subject in one batch. Any faculty may
// finalize any subject; grading itself stays scoped to the owning faculty.
func (s *gradeService) Finalize(ctx context.Context, facultyID, subjectID int64) (int64, error) {
	updated, err := s.gradeRepo.FinalizeBySubject(ctx, subjectID)
	if err != nil {
		return 0, err
	}

	logger.Info().
		Int64("facultyID", facultyID).
		Int64("subjectID", subjectID).
		Int64("updated", updated).
		Msg("Grades finalized")

	return updated, nil
}

// GetStudentGrades lists a student's grades with subjects attached
func (s *gradeService) GetStudentGrades(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	grades, err := s.gradeRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}
