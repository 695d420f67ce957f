package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/db"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/dberrors"
)

// GradeRepository handles database operations for grades
type GradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, grade *models.Grade) error
	// GetByStudentAndSubject returns nil without error when no grade exists yet.
	GetByStudentAndSubject(ctx context.Context, studentID, subjectID int64) (*models.Grade, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error)
	// FinalizeBySubject locks every grade of the subject in one statement and
	// returns the number of rows updated.
	FinalizeBySubject(ctx context.Context, subjectID int64) (int64, error)
}

type gradeRepository struct {
	db *db.PostgresDB
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(database *db.PostgresDB) GradeRepository {
	return &gradeRepository{db: database}
}

// Create inserts a new grade row. A concurrent duplicate insert for the same
// (student, subject) pair is reported as apperrors.ErrConflict.
func (r *gradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, subject_id, marks, grade, is_final, reevaluation_allowed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		grade.StudentID, grade.SubjectID, grade.Marks, grade.Grade, grade.IsFinal, grade.ReevaluationAllowed,
	).Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "grades_student_id_subject_id_key") {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// Update overwrites marks, letter grade and lock flags of an existing grade
func (r *gradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET marks = $1, grade = $2, is_final = $3, reevaluation_allowed = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		grade.Marks, grade.Grade, grade.IsFinal, grade.ReevaluationAllowed, grade.ID)

	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// GetByStudentAndSubject retrieves the grade for one (student, subject) pair
func (r *gradeRepository) GetByStudentAndSubject(ctx context.Context, studentID, subjectID int64) (*models.Grade, error) {
	query := `
		SELECT id, student_id, subject_id, marks, grade, is_final, reevaluation_allowed, created_at, updated_at
		FROM grades
		WHERE student_id = $1 AND subject_id = $2
	`

	var grade models.Grade
	err := r.db.Pool.QueryRow(ctx, query, studentID, subjectID).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.SubjectID,
		&grade.Marks,
		&grade.Grade,
		&grade.IsFinal,
		&grade.ReevaluationAllowed,
		&grade.CreatedAt,
		&grade.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// GetByStudent retrieves a student's grades with subjects attached
func (r *gradeRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	query := `
		SELECT g.id, g.student_id, g.subject_id, g.marks, g.grade, g.is_final, g.reevaluation_allowed,
		       g.created_at, g.updated_at,
		       s.id, s.name, s.code, s.credits, s.slot, s.faculty_id, s.created_at
		FROM grades g
		JOIN subjects s ON s.id = g.subject_id
		WHERE g.student_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		var subject models.Subject
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.SubjectID,
			&grade.Marks,
			&grade.Grade,
			&grade.IsFinal,
			&grade.ReevaluationAllowed,
			&grade.CreatedAt,
			&grade.UpdatedAt,
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.Credits,
			&subject.Slot,
			&subject.FacultyID,
			&subject.CreatedAt,
		); err != nil {
			return nil, err
		}
		grade.Subject = &subject
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// FinalizeBySubject locks all grades of the subject in one batch
func (r *gradeRepository) FinalizeBySubject(ctx context.Context, subjectID int64) (int64, error) {
	query := `
		UPDATE grades
		SET is_final = TRUE, reevaluation_allowed = FALSE, updated_at = NOW()
		WHERE subject_id = $1
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query, subjectID)
	if err != nil {
		return 0, fmt.Errorf("error finalizing grades: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
