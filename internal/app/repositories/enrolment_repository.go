package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
	"github.com/mokoena/studenthub/internal/pkg/dberrors"
	"github.com/mokoena/studenthub/internal/pkg/logger"
)

// EnrolmentFilter holds the optional list parameters for enrolments.
// Zero values mean "no constraint".
type EnrolmentFilter struct {
	StudentID    int64
	ModuleID     int64
	Status       string
	AcademicYear int
}

// apply adds the filter's predicates to an enrolment select.
func (f EnrolmentFilter) apply(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	if f.StudentID > 0 {
		q = q.Where(squirrel.Eq{"e.student_id": f.StudentID})
	}
	if f.ModuleID > 0 {
		q = q.Where(squirrel.Eq{"e.module_id": f.ModuleID})
	}
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"e.status": f.Status})
	}
	if f.AcademicYear > 0 {
		q = q.Where(squirrel.Eq{"e.academic_year": f.AcademicYear})
	}
	return q
}

// EnrolmentRepository handles enrolment database operations
type EnrolmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrolmentRepository creates a new EnrolmentRepository
func NewEnrolmentRepository(db *pgxpool.Pool) *EnrolmentRepository {
	return &EnrolmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create registers a student for a module and returns the assigned ID.
func (r *EnrolmentRepository) Create(ctx context.Context, enrolment *models.Enrolment) (int64, error) {
	sql, args, err := r.sb.Insert("enrolments").
		Columns("student_id", "module_id", "academic_year", "semester", "status").
		Values(enrolment.StudentID, enrolment.ModuleID, enrolment.AcademicYear,
			enrolment.Semester, enrolment.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create enrolment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&enrolment.ID, &enrolment.CreatedAt, &enrolment.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrEnrolmentAlreadyExists
		}
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.NewResourceNotFoundError("student or module not found")
		}
		logger.Error().Err(err).Msg("Error executing create enrolment query")
		return 0, fmt.Errorf("error creating enrolment: %w", err)
	}

	return enrolment.ID, nil
}

var enrolmentColumns = []string{
	"e.id", "e.student_id", "e.module_id", "e.academic_year", "e.semester",
	"e.status", "e.final_mark", "e.letter_grade", "e.created_at", "e.updated_at",
	"s.id", "s.student_no", "s.first_name", "s.last_name",
	"m.id", "m.code", "m.title", "m.credits",
}

func scanEnrolment(row pgx.Row) (*models.Enrolment, error) {
	enrolment := &models.Enrolment{Student: &models.Student{}, Module: &models.Module{}}
	err := row.Scan(
		&enrolment.ID, &enrolment.StudentID, &enrolment.ModuleID, &enrolment.AcademicYear, &enrolment.Semester,
		&enrolment.Status, &enrolment.FinalMark, &enrolment.LetterGrade, &enrolment.CreatedAt, &enrolment.UpdatedAt,
		&enrolment.Student.ID, &enrolment.Student.StudentNo, &enrolment.Student.FirstName, &enrolment.Student.LastName,
		&enrolment.Module.ID, &enrolment.Module.Code, &enrolment.Module.Title, &enrolment.Module.Credits,
	)
	if err != nil {
		return nil, err
	}
	return enrolment, nil
}

// GetByID retrieves an enrolment by ID with student and module expanded.
func (r *EnrolmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrolment, error) {
	sql, args, err := r.sb.Select(enrolmentColumns...).
		From("enrolments e").
		Join("students s ON s.id = e.student_id").
		Join("modules m ON m.id = e.module_id").
		Where(squirrel.Eq{"e.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrolment query: %w", err)
	}

	enrolment, err := scanEnrolment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrolmentNotFound
		}
		logger.Error().Err(err).Int64("enrolmentID", id).Msg("Error scanning enrolment row")
		return nil, fmt.Errorf("error getting enrolment by ID: %w", err)
	}

	return enrolment, nil
}

// List retrieves enrolments matching the filter, newest first, with
// student and module references expanded.
func (r *EnrolmentRepository) List(ctx context.Context, filter EnrolmentFilter) ([]*models.Enrolment, error) {
	q := r.sb.Select(enrolmentColumns...).
		From("enrolments e").
		Join("students s ON s.id = e.student_id").
		Join("modules m ON m.id = e.module_id").
		OrderBy("e.created_at DESC")
	q = filter.apply(q)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrolments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrolments query")
		return nil, fmt.Errorf("error querying enrolments: %w", err)
	}
	defer rows.Close()

	enrolments := []*models.Enrolment{}
	for rows.Next() {
		enrolment, err := scanEnrolment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrolment row: %w", err)
		}
		enrolments = append(enrolments, enrolment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrolment rows: %w", err)
	}

	return enrolments, nil
}

// Update captures progress and marks for an existing enrolment.
func (r *EnrolmentRepository) Update(ctx context.Context, enrolment *models.Enrolment) error {
	sql, args, err := r.sb.Update("enrolments").
		SetMap(map[string]interface{}{
			"status":       enrolment.Status,
			"final_mark":   enrolment.FinalMark,
			"letter_grade": enrolment.LetterGrade,
		}).
		Where(squirrel.Eq{"id": enrolment.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrolment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrolmentID", enrolment.ID).Msg("Error executing update enrolment query")
		return fmt.Errorf("error updating enrolment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrolmentNotFound
	}

	return nil
}
