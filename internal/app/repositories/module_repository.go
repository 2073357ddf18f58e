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

// ModuleFilter holds the optional list parameters for modules.
// Zero values mean "no constraint". Listing always excludes inactive
// modules regardless of the filter.
type ModuleFilter struct {
	Search      string // case-insensitive substring over title and code
	ProgrammeID int64
	YearLevel   int
	Semester    int
}

// apply adds the filter's predicates to a module select.
func (f ModuleFilter) apply(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"m.title": pattern},
			squirrel.ILike{"m.code": pattern},
		})
	}
	if f.ProgrammeID > 0 {
		q = q.Where(squirrel.Eq{"m.programme_id": f.ProgrammeID})
	}
	if f.YearLevel > 0 {
		q = q.Where(squirrel.Eq{"m.year_level": f.YearLevel})
	}
	if f.Semester > 0 {
		q = q.Where(squirrel.Eq{"m.semester_offered": f.Semester})
	}
	return q
}

// ModuleRepository handles module database operations
type ModuleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewModuleRepository creates a new ModuleRepository
func NewModuleRepository(db *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new module and returns its assigned ID.
func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) (int64, error) {
	sql, args, err := r.sb.Insert("modules").
		Columns("code", "title", "description", "credits", "year_level", "semester_offered", "programme_id", "active_flag").
		Values(module.Code, module.Title, module.Description, module.Credits,
			module.YearLevel, module.SemesterOffered, module.ProgrammeID, true).
		Suffix("RETURNING id, active_flag, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create module query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&module.ID, &module.ActiveFlag, &module.CreatedAt, &module.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrModuleAlreadyExists
		}
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrProgrammeNotFound
		}
		logger.Error().Err(err).Msg("Error executing create module query")
		return 0, fmt.Errorf("error creating module: %w", err)
	}

	return module.ID, nil
}

var moduleColumns = []string{
	"m.id", "m.code", "m.title", "m.description", "m.credits",
	"m.year_level", "m.semester_offered", "m.programme_id", "m.active_flag",
	"m.created_at", "m.updated_at",
	"p.id", "p.code", "p.name",
}

func scanModule(row pgx.Row) (*models.Module, error) {
	module := &models.Module{Programme: &models.Programme{}}
	err := row.Scan(
		&module.ID, &module.Code, &module.Title, &module.Description, &module.Credits,
		&module.YearLevel, &module.SemesterOffered, &module.ProgrammeID, &module.ActiveFlag,
		&module.CreatedAt, &module.UpdatedAt,
		&module.Programme.ID, &module.Programme.Code, &module.Programme.Name,
	)
	if err != nil {
		return nil, err
	}
	return module, nil
}

// GetByID retrieves a module by ID with its programme expanded.
// Inactive modules are still reachable by ID so existing enrolments can
// resolve their module reference.
func (r *ModuleRepository) GetByID(ctx context.Context, id int64) (*models.Module, error) {
	sql, args, err := r.sb.Select(moduleColumns...).
		From("modules m").
		Join("programmes p ON p.id = m.programme_id").
		Where(squirrel.Eq{"m.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get module query: %w", err)
	}

	module, err := scanModule(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrModuleNotFound
		}
		logger.Error().Err(err).Int64("moduleID", id).Msg("Error scanning module row")
		return nil, fmt.Errorf("error getting module by ID: %w", err)
	}

	return module, nil
}

// List retrieves active modules matching the filter, sorted by
// (year level, semester offered, title).
func (r *ModuleRepository) List(ctx context.Context, filter ModuleFilter) ([]*models.Module, error) {
	q := r.sb.Select(moduleColumns...).
		From("modules m").
		Join("programmes p ON p.id = m.programme_id").
		Where(squirrel.Eq{"m.active_flag": true}).
		OrderBy("m.year_level ASC", "m.semester_offered ASC", "m.title ASC")
	q = filter.apply(q)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list modules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list modules query")
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	modules := []*models.Module{}
	for rows.Next() {
		module, err := scanModule(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning module row: %w", err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating module rows: %w", err)
	}

	return modules, nil
}

// Update updates an existing module
func (r *ModuleRepository) Update(ctx context.Context, module *models.Module) error {
	sql, args, err := r.sb.Update("modules").
		SetMap(map[string]interface{}{
			"code":             module.Code,
			"title":            module.Title,
			"description":      module.Description,
			"credits":          module.Credits,
			"year_level":       module.YearLevel,
			"semester_offered": module.SemesterOffered,
			"programme_id":     module.ProgrammeID,
			"active_flag":      module.ActiveFlag,
		}).
		Where(squirrel.Eq{"id": module.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update module query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrModuleAlreadyExists
		}
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrProgrammeNotFound
		}
		logger.Error().Err(err).Int64("moduleID", module.ID).Msg("Error executing update module query")
		return fmt.Errorf("error updating module: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}

// Deactivate soft-deletes a module by clearing its active flag.
// The row and its enrolments stay in place.
func (r *ModuleRepository) Deactivate(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("modules").
		Set("active_flag", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build deactivate module query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("moduleID", id).Msg("Error executing deactivate module query")
		return fmt.Errorf("error deactivating module: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}
