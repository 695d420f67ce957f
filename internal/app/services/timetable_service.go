package services

import (
	"context"

	"github.com/emrekoc/acadport/internal/app/models/dto"
	"github.com/emrekoc/acadport/internal/app/repositories"
)

// TimetableService builds the per-student timetable view
type TimetableService interface {
	GetStudentTimetable(ctx context.Context, studentID int64) (dto.Timetable, error)
}

type timetableService struct {
	enrollmentRepo repositories.EnrollmentRepository
}

// NewTimetableService creates a new timetable service instance
func NewTimetableService(enrollmentRepo repositories.EnrollmentRepository) TimetableService {
	return &timetableService{enrollmentRepo: enrollmentRepo}
}

// GetStudentTimetable groups a student's enrolled subjects by slot. The
// enrollment rules guarantee at most one subject per slot, but the view
// tolerates legacy duplicates.
func (s *timetableService) GetStudentTimetable(ctx context.Context, studentID int64) (dto.Timetable, error) {
	enrollments, err := s.enrollmentRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	timetable := make(dto.Timetable)
	for _, e := range enrollments {
		if e.Subject == nil {
			continue
		}

		var facultyName *string
		if e.Faculty != nil {
			facultyName = &e.Faculty.FullName
		}
		timetable[e.Subject.Slot] = append(timetable[e.Subject.Slot], dto.TimetableEntry{
			Subject: e.Subject.Name,
			Code:    e.Subject.Code,
			Faculty: facultyName,
		})
	}

	return timetable, nil
}
