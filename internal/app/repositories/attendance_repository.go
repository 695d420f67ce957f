package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/db"
	"github.com/emrekoc/acadport/internal/pkg/logger"
)

// AttendanceRepository handles database operations for attendance records.
// Attendance is append-only; there is no update or delete.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error)
}

type attendanceRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(database *db.PostgresDB) AttendanceRepository {
	return &attendanceRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create appends one attendance record
func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	sql, args, err := r.sb.Insert("attendance").
		Columns("student_id", "subject_id", "date", "status").
		Values(attendance.StudentID, attendance.SubjectID, attendance.Date, attendance.Status).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create attendance SQL")
		return fmt.Errorf("failed to build create attendance query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&attendance.ID, &attendance.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", attendance.StudentID).Msg("Error executing create attendance query")
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// GetByStudent retrieves a student's attendance records with subjects attached
func (r *attendanceRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.student_id", "a.subject_id", "a.date", "a.status", "a.created_at",
		"s.id", "s.name", "s.code", "s.credits", "s.slot").
		From("attendance a").
		Join("subjects s ON s.id = a.subject_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.date DESC", "a.id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get attendance SQL")
		return nil, fmt.Errorf("failed to build get attendance query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var attendance models.Attendance
		var subject models.Subject
		if err := rows.Scan(
			&attendance.ID,
			&attendance.StudentID,
			&attendance.SubjectID,
			&attendance.Date,
			&attendance.Status,
			&attendance.CreatedAt,
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.Credits,
			&subject.Slot,
		); err != nil {
			return nil, err
		}
		attendance.Subject = &subject
		records = append(records, &attendance)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
