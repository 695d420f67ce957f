package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/db"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/logger"
)

// ReevaluationRepository handles database operations for re-evaluation requests
type ReevaluationRepository interface {
	Create(ctx context.Context, request *models.ReevaluationRequest) error
	GetByID(ctx context.Context, id int64) (*models.ReevaluationRequest, error)
	GetAll(ctx context.Context) ([]*models.ReevaluationRequest, error)
	// Decide writes the admin decision. On approval the matching grade, when
	// one exists, is unlocked in the same transaction; both updates commit or
	// neither does.
	Decide(ctx context.Context, id int64, status models.ReevaluationStatus, comment *string) (*models.ReevaluationRequest, error)
}

type reevaluationRepository struct {
	db *db.PostgresDB
}

// NewReevaluationRepository creates a new re-evaluation repository
func NewReevaluationRepository(database *db.PostgresDB) ReevaluationRepository {
	return &reevaluationRepository{db: database}
}

const reevaluationColumns = `id, student_id, subject_id, reason, status, admin_comment, created_at, updated_at`

func scanReevaluation(row pgx.Row) (*models.ReevaluationRequest, error) {
	var request models.ReevaluationRequest
	err := row.Scan(
		&request.ID,
		&request.StudentID,
		&request.SubjectID,
		&request.Reason,
		&request.Status,
		&request.AdminComment,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Create submits a new pending request
func (r *reevaluationRepository) Create(ctx context.Context, request *models.ReevaluationRequest) error {
	query := `
		INSERT INTO reevaluation_requests (student_id, subject_id, reason)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		request.StudentID, request.SubjectID, request.Reason,
	).Scan(&request.ID, &request.Status, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating re-evaluation request: %w", err)
	}

	return nil
}

// GetByID retrieves a request by ID
func (r *reevaluationRepository) GetByID(ctx context.Context, id int64) (*models.ReevaluationRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM reevaluation_requests WHERE id = $1`, reevaluationColumns)

	request, err := scanReevaluation(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving re-evaluation request: %w", err)
	}

	return request, nil
}

// GetAll retrieves all requests
func (r *reevaluationRepository) GetAll(ctx context.Context) ([]*models.ReevaluationRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM reevaluation_requests ORDER BY created_at DESC`, reevaluationColumns)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.ReevaluationRequest
	for rows.Next() {
		request, err := scanReevaluation(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// Decide applies the admin decision atomically
func (r *reevaluationRepository) Decide(ctx context.Context, id int64, status models.ReevaluationStatus, comment *string) (*models.ReevaluationRequest, error) {
	var request *models.ReevaluationRequest

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Lock the request row for the duration of the decision
		query := fmt.Sprintf(`SELECT %s FROM reevaluation_requests WHERE id = $1 FOR UPDATE`, reevaluationColumns)
		var err error
		request, err = scanReevaluation(tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrRequestNotFound
			}
			return fmt.Errorf("error retrieving re-evaluation request: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE reevaluation_requests
			SET status = $1, admin_comment = $2, updated_at = NOW()
			WHERE id = $3`,
			status, comment, id)
		if err != nil {
			return fmt.Errorf("error updating re-evaluation request: %w", err)
		}

		request.Status = status
		request.AdminComment = comment

		// Approval unlocks the matching grade; a missing grade is a silent
		// no-op, the unlock then applies to a future grading edit.
		if status == models.ReevaluationApproved {
			cmdTag, err := tx.Exec(ctx, `
				UPDATE grades
				SET reevaluation_allowed = TRUE, updated_at = NOW()
				WHERE student_id = $1 AND subject_id = $2`,
				request.StudentID, request.SubjectID)
			if err != nil {
				return fmt.Errorf("error unlocking grade: %w", err)
			}
			if cmdTag.RowsAffected() == 0 {
				logger.Info().Int64("requestID", id).Msg("Re-evaluation approved before any grade exists")
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return request, nil
}
