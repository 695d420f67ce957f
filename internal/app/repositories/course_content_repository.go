package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/db"
	"github.com/emrekoc/acadport/internal/pkg/apperrors"
	"github.com/emrekoc/acadport/internal/pkg/logger"
)

// CourseContentRepository handles database operations for course content
type CourseContentRepository interface {
	Create(ctx context.Context, content *models.CourseContent) error
	GetByID(ctx context.Context, id int64) (*models.CourseContent, error)
	GetBySubject(ctx context.Context, subjectID int64) ([]*models.CourseContent, error)
	Update(ctx context.Context, content *models.CourseContent) error
	Delete(ctx context.Context, id int64) error
}

type courseContentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewCourseContentRepository creates a new course content repository
func NewCourseContentRepository(database *db.PostgresDB) CourseContentRepository {
	return &courseContentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create uploads a new content item
func (r *courseContentRepository) Create(ctx context.Context, content *models.CourseContent) error {
	sql, args, err := r.sb.Insert("course_content").
		Columns("subject_id", "faculty_id", "title", "content").
		Values(content.SubjectID, content.FacultyID, content.Title, content.Content).
		Suffix("RETURNING id, uploaded_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create content SQL")
		return fmt.Errorf("failed to build create content query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&content.ID, &content.UploadedAt)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", content.SubjectID).Msg("Error executing create content query")
		return fmt.Errorf("error creating course content: %w", err)
	}

	return nil
}

// GetByID retrieves a content item by ID
func (r *courseContentRepository) GetByID(ctx context.Context, id int64) (*models.CourseContent, error) {
	sql, args, err := r.sb.Select("id", "subject_id", "faculty_id", "title", "content", "uploaded_at").
		From("course_content").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get content query: %w", err)
	}

	var content models.CourseContent
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&content.ID,
		&content.SubjectID,
		&content.FacultyID,
		&content.Title,
		&content.Content,
		&content.UploadedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, fmt.Errorf("error retrieving course content: %w", err)
	}

	return &content, nil
}

// GetBySubject retrieves all content items of a subject
func (r *courseContentRepository) GetBySubject(ctx context.Context, subjectID int64) ([]*models.CourseContent, error) {
	sql, args, err := r.sb.Select("id", "subject_id", "faculty_id", "title", "content", "uploaded_at").
		From("course_content").
		Where(squirrel.Eq{"subject_id": subjectID}).
		OrderBy("uploaded_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list content query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []*models.CourseContent
	for rows.Next() {
		var content models.CourseContent
		if err := rows.Scan(
			&content.ID,
			&content.SubjectID,
			&content.FacultyID,
			&content.Title,
			&content.Content,
			&content.UploadedAt,
		); err != nil {
			return nil, err
		}
		contents = append(contents, &content)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contents, nil
}

// Update overwrites title and content of an item
func (r *courseContentRepository) Update(ctx context.Context, content *models.CourseContent) error {
	sql, args, err := r.sb.Update("course_content").
		Set("title", content.Title).
		Set("content", content.Content).
		Where(squirrel.Eq{"id": content.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update content query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating course content: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}

// Delete removes a content item by ID
func (r *courseContentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("course_content").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build delete content query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting course content: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}
