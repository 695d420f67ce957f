package services

import (
	"context"
	"fmt"
	"time"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/app/repositories"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
)

// AttendanceService handles attendance records
type AttendanceService interface {
	// Mark records attendance for a student on a date. The calling faculty
	// must own the student's enrollment in the subject.
	Mark(ctx context.Context, facultyID, studentID, subjectID int64, date time.Time, status string) (*models.Attendance, error)
	GetStudentAttendance(ctx context.Context, studentID int64) ([]*models.Attendance, error)
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	enrollmentRepo repositories.EnrollmentRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo repositories.AttendanceRepository, enrollmentRepo repositories.EnrollmentRepository) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Mark appends an attendance record
func (s *attendanceService) Mark(ctx context.Context, facultyID, studentID, subjectID int64, date time.Time, status string) (*models.Attendance, error) {
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return nil, fmt.Errorf("%w: status must be present or absent", apperrors.ErrValidationFailed)
	}

	owns, err := s.enrollmentRepo.ExistsForFaculty(ctx, studentID, subjectID, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment ownership: %w", err)
	}
	if !owns {
		return nil, apperrors.ErrPermissionDenied
	}

	attendance := &models.Attendance{
		StudentID: studentID,
		SubjectID: subjectID,
		Date:      date,
		Status:    status,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, err
	}

	return attendance, nil
}

// GetStudentAttendance lists a student's attendance with subjects attached
func (s *attendanceService) GetStudentAttendance(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	return s.attendanceRepo.GetByStudent(ctx, studentID)
}
