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

// ProgrammeFilter holds the optional list parameters for programmes.
// Zero values mean "no constraint".
type ProgrammeFilter struct {
	Search    string // case-insensitive substring over name and code
	Level     string
	FacultyID int64
}

// apply adds the filter's predicates to a programme select.
func (f ProgrammeFilter) apply(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"p.name": pattern},
			squirrel.ILike{"p.code": pattern},
		})
	}
	if f.Level != "" {
		q = q.Where(squirrel.Eq{"p.level": f.Level})
	}
	if f.FacultyID > 0 {
		q = q.Where(squirrel.Eq{"p.faculty_id": f.FacultyID})
	}
	return q
}

// ProgrammeRepository handles programme database operations
type ProgrammeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgrammeRepository creates a new ProgrammeRepository
func NewProgrammeRepository(db *pgxpool.Pool) *ProgrammeRepository {
	return &ProgrammeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new programme and returns its assigned ID.
func (r *ProgrammeRepository) Create(ctx context.Context, programme *models.Programme) (int64, error) {
	sql, args, err := r.sb.Insert("programmes").
		Columns("code", "name", "faculty_id", "level", "total_credits", "duration_years").
		Values(programme.Code, programme.Name, programme.FacultyID, programme.Level,
			programme.TotalCredits, programme.DurationYears).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create programme query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&programme.ID, &programme.CreatedAt, &programme.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrProgrammeAlreadyExists
		}
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Msg("Error executing create programme query")
		return 0, fmt.Errorf("error creating programme: %w", err)
	}

	return programme.ID, nil
}

// programmeColumns are the selected columns for a programme row with its
// faculty reference expanded.
var programmeColumns = []string{
	"p.id", "p.code", "p.name", "p.faculty_id", "p.level",
	"p.total_credits", "p.duration_years", "p.created_at", "p.updated_at",
	"f.id", "f.code", "f.name",
}

func scanProgramme(row pgx.Row) (*models.Programme, error) {
	programme := &models.Programme{Faculty: &models.Faculty{}}
	err := row.Scan(
		&programme.ID, &programme.Code, &programme.Name, &programme.FacultyID, &programme.Level,
		&programme.TotalCredits, &programme.DurationYears, &programme.CreatedAt, &programme.UpdatedAt,
		&programme.Faculty.ID, &programme.Faculty.Code, &programme.Faculty.Name,
	)
	if err != nil {
		return nil, err
	}
	return programme, nil
}

// GetByID retrieves a programme by ID with its faculty expanded.
func (r *ProgrammeRepository) GetByID(ctx context.Context, id int64) (*models.Programme, error) {
	sql, args, err := r.sb.Select(programmeColumns...).
		From("programmes p").
		Join("faculties f ON f.id = p.faculty_id").
		Where(squirrel.Eq{"p.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get programme query: %w", err)
	}

	programme, err := scanProgramme(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgrammeNotFound
		}
		logger.Error().Err(err).Int64("programmeID", id).Msg("Error scanning programme row")
		return nil, fmt.Errorf("error getting programme by ID: %w", err)
	}

	return programme, nil
}

// List retrieves programmes matching the filter, sorted by name, with
// their faculty reference expanded.
func (r *ProgrammeRepository) List(ctx context.Context, filter ProgrammeFilter) ([]*models.Programme, error) {
	q := r.sb.Select(programmeColumns...).
		From("programmes p").
		Join("faculties f ON f.id = p.faculty_id").
		OrderBy("p.name ASC")
	q = filter.apply(q)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list programmes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list programmes query")
		return nil, fmt.Errorf("error querying programmes: %w", err)
	}
	defer rows.Close()

	programmes := []*models.Programme{}
	for rows.Next() {
		programme, err := scanProgramme(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning programme row: %w", err)
		}
		programmes = append(programmes, programme)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating programme rows: %w", err)
	}

	return programmes, nil
}

// Update updates an existing programme
func (r *ProgrammeRepository) Update(ctx context.Context, programme *models.Programme) error {
	sql, args, err := r.sb.Update("programmes").
		SetMap(map[string]interface{}{
			"code":           programme.Code,
			"name":           programme.Name,
			"faculty_id":     programme.FacultyID,
			"level":          programme.Level,
			"total_credits":  programme.TotalCredits,
			"duration_years": programme.DurationYears,
		}).
		Where(squirrel.Eq{"id": programme.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update programme query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrProgrammeAlreadyExists
		}
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("programmeID", programme.ID).Msg("Error executing update programme query")
		return fmt.Errorf("error updating programme: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgrammeNotFound
	}

	return nil
}
