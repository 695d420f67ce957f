package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/db"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/dberrors"
	"github.com/emrekoc/acadport/internal/pkg/logger"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository interface {
	// CreateBatch inserts all enrollments in one transaction. A unique
	// violation on (student_id, subject_id) aborts the whole batch and is
	// reported as apperrors.ErrConflict.
	CreateBatch(ctx context.Context, enrollments []*models.Enrollment) error
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetByFaculty(ctx context.Context, facultyID int64) ([]*models.Enrollment, error)
	Exists(ctx context.Context, studentID, subjectID int64) (bool, error)
	ExistsForFaculty(ctx context.Context, studentID, subjectID, facultyID int64) (bool, error)
}

type enrollmentRepository struct {
	db *db.PostgresDB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(database *db.PostgresDB) EnrollmentRepository {
	return &enrollmentRepository{db: database}
}

// CreateBatch inserts the given enrollments all-or-nothing.
func (r *enrollmentRepository) CreateBatch(ctx context.Context, enrollments []*models.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO enrollments (student_id, subject_id, faculty_id)
			VALUES ($1, $2, $3)
			RETURNING id, enrolled_at
		`
		for _, enrollment := range enrollments {
			err := tx.QueryRow(ctx, query,
				enrollment.StudentID, enrollment.SubjectID, enrollment.FacultyID,
			).Scan(&enrollment.ID, &enrollment.EnrolledAt)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_student_id_subject_id_key") {
			logger.Warn().Int64("studentID", enrollments[0].StudentID).Msg("Concurrent duplicate enrollment detected")
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating enrollments: %w", err)
	}

	return nil
}

// GetByStudent retrieves a student's enrollments with subjects attached
func (r *enrollmentRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.subject_id, e.faculty_id, e.enrolled_at,
		       s.id, s.name, s.code, s.credits, s.slot, s.faculty_id, s.created_at,
		       u.full_name
		FROM enrollments e
		JOIN subjects s ON s.id = e.subject_id
		LEFT JOIN users u ON u.id = e.faculty_id
		WHERE e.student_id = $1
		ORDER BY e.id
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var subject models.Subject
		var facultyName *string
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.SubjectID,
			&enrollment.FacultyID,
			&enrollment.EnrolledAt,
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.Credits,
			&subject.Slot,
			&subject.FacultyID,
			&subject.CreatedAt,
			&facultyName,
		); err != nil {
			return nil, err
		}
		enrollment.Subject = &subject
		if enrollment.FacultyID != nil && facultyName != nil {
			enrollment.Faculty = &models.User{ID: *enrollment.FacultyID, FullName: *facultyName}
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByFaculty retrieves all enrollments under a faculty member's offerings,
// with subjects and students attached
func (r *enrollmentRepository) GetByFaculty(ctx context.Context, facultyID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.subject_id, e.faculty_id, e.enrolled_at,
		       s.id, s.name, s.code, s.credits, s.slot, s.faculty_id, s.created_at,
		       u.id, u.email, u.full_name
		FROM enrollments e
		JOIN subjects s ON s.id = e.subject_id
		JOIN users u ON u.id = e.student_id
		WHERE e.faculty_id = $1
		ORDER BY s.name, u.full_name
	`

	rows, err := r.db.Pool.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var subject models.Subject
		var student models.User
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.SubjectID,
			&enrollment.FacultyID,
			&enrollment.EnrolledAt,
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.Credits,
			&subject.Slot,
			&subject.FacultyID,
			&subject.CreatedAt,
			&student.ID,
			&student.Email,
			&student.FullName,
		); err != nil {
			return nil, err
		}
		enrollment.Subject = &subject
		enrollment.Student = &student
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Exists checks whether a (student, subject) enrollment exists
func (r *enrollmentRepository) Exists(ctx context.Context, studentID, subjectID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND subject_id = $2)`,
		studentID, subjectID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// ExistsForFaculty checks whether an enrollment binds exactly this
// (student, subject, faculty) triple
func (r *enrollmentRepository) ExistsForFaculty(ctx context.Context, studentID, subjectID, facultyID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND subject_id = $2 AND faculty_id = $3)`,
		studentID, subjectID, facultyID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment ownership: %w", err)
	}

	return exists, nil
}
