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
	"github.com/emrekoc/acadport/internal/pkg/logger"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
}

type subjectRepository struct {
	db *db.PostgresDB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(database *db.PostgresDB) SubjectRepository {
	return &subjectRepository{db: database}
}

// Create creates a new subject
func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, credits, slot, faculty_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		subject.Name, subject.Code, subject.Credits, subject.Slot, subject.FacultyID,
	).Scan(&subject.ID, &subject.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_code_key") {
			return apperrors.ErrSubjectAlreadyExists
		}
		logger.Error().Err(err).Str("code", subject.Code).Msg("Error creating subject")
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by ID
func (r *subjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, name, code, credits, slot, faculty_id, created_at
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Name,
		&subject.Code,
		&subject.Credits,
		&subject.Slot,
		&subject.FacultyID,
		&subject.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// GetByIDs retrieves all subjects matching the given ids. Callers compare the
// result length with the request to detect unknown identifiers.
func (r *subjectRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Subject, error) {
	query := `
		SELECT id, name, code, credits, slot, faculty_id, created_at
		FROM subjects
		WHERE id = ANY($1)
	`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
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
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// GetAll retrieves all subjects with their faculty attached when present
func (r *subjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.code, s.credits, s.slot, s.faculty_id, s.created_at,
		       u.id, u.email, u.role, u.full_name
		FROM subjects s
		LEFT JOIN users u ON u.id = s.faculty_id
		ORDER BY s.id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		var facultyID *int64
		var facultyEmail, facultyRole, facultyName *string
		if err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.Credits,
			&subject.Slot,
			&subject.FacultyID,
			&subject.CreatedAt,
			&facultyID,
			&facultyEmail,
			&facultyRole,
			&facultyName,
		); err != nil {
			return nil, err
		}
		if facultyID != nil {
			subject.Faculty = &models.User{
				ID:       *facultyID,
				Email:    *facultyEmail,
				Role:     models.Role(*facultyRole),
				FullName: *facultyName,
			}
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}
