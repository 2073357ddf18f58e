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

// StudentFilter holds the optional list parameters for students.
// Zero values mean "no constraint".
type StudentFilter struct {
	Search string // case-insensitive substring over names, student number and email
	Status string
}

// apply adds the filter's predicates to a student select.
func (f StudentFilter) apply(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"s.first_name": pattern},
			squirrel.ILike{"s.last_name": pattern},
			squirrel.ILike{"s.student_no": pattern},
			squirrel.ILike{"s.email": pattern},
		})
	}
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"s.status": f.Status})
	}
	return q
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student and returns the assigned ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("student_no", "first_name", "last_name", "id_number", "email", "mobile",
			"programme_id", "intake_year", "status").
		Values(student.StudentNo, student.FirstName, student.LastName, student.IDNumber,
			student.Email, student.Mobile, student.ProgrammeID, student.IntakeYear, student.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrStudentAlreadyExists
		}
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrProgrammeNotFound
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

var studentColumns = []string{
	"s.id", "s.student_no", "s.first_name", "s.last_name", "s.id_number",
	"s.email", "s.mobile", "s.programme_id", "s.intake_year", "s.status",
	"s.created_at", "s.updated_at",
	"p.id", "p.code", "p.name", "p.level",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{Programme: &models.Programme{}}
	err := row.Scan(
		&student.ID, &student.StudentNo, &student.FirstName, &student.LastName, &student.IDNumber,
		&student.Email, &student.Mobile, &student.ProgrammeID, &student.IntakeYear, &student.Status,
		&student.CreatedAt, &student.UpdatedAt,
		&student.Programme.ID, &student.Programme.Code, &student.Programme.Name, &student.Programme.Level,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetByID retrieves a student by ID with the programme reference expanded.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students s").
		Join("programmes p ON p.id = s.programme_id").
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// List retrieves a page of students matching the filter, newest first,
// with the programme reference expanded.
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter, offset, limit uint64) ([]*models.Student, error) {
	q := r.sb.Select(studentColumns...).
		From("students s").
		Join("programmes p ON p.id = s.programme_id").
		OrderBy("s.created_at DESC").
		Offset(offset).
		Limit(limit)
	q = filter.apply(q)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Count returns the number of students matching the filter.
func (r *StudentRepository) Count(ctx context.Context, filter StudentFilter) (int64, error) {
	q := r.sb.Select("COUNT(*)").From("students s")
	q = filter.apply(q)

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count students query")
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return total, nil
}

// Update updates an existing student. StudentNo, IDNumber and IntakeYear
// are immutable once admitted.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"first_name":   student.FirstName,
			"last_name":    student.LastName,
			"email":        student.Email,
			"mobile":       student.Mobile,
			"programme_id": student.ProgrammeID,
			"status":       student.Status,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrProgrammeNotFound
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
