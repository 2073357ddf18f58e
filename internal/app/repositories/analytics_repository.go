package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/pkg/logger"
)

// AnalyticsRepository computes the aggregation facets. Each facet is a
// single query over the current persisted state; facets read independent
// views, so minor skew between them under concurrent writes is expected
// and tolerated.
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func studentsByStatusQuery() squirrel.SelectBuilder {
	return squirrel.Select("status", "COUNT(*)").
		From("students").
		GroupBy("status")
}

func studentsByFacultyQuery() squirrel.SelectBuilder {
	return squirrel.Select("f.name", "COUNT(*)").
		From("students s").
		Join("programmes p ON p.id = s.programme_id").
		Join("faculties f ON f.id = p.faculty_id").
		GroupBy("f.name").
		OrderBy("COUNT(*) DESC", "f.name ASC")
}

func enrolmentsByStatusQuery() squirrel.SelectBuilder {
	return squirrel.Select("status", "COUNT(*)").
		From("enrolments").
		GroupBy("status")
}

// recentEnrolmentsQuery buckets per UTC calendar day. created_at is
// timestamptz, so the window comparison is instant-based either way;
// only the day rendering needs pinning to UTC.
func recentEnrolmentsQuery(since time.Time) squirrel.SelectBuilder {
	return squirrel.Select("to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day", "COUNT(*)").
		From("enrolments").
		Where(squirrel.GtOrEq{"created_at": since}).
		GroupBy("day").
		OrderBy("day ASC")
}

func topProgrammesQuery(limit uint64) squirrel.SelectBuilder {
	return squirrel.Select("p.name", "COUNT(*)").
		From("students s").
		Join("programmes p ON p.id = s.programme_id").
		GroupBy("p.name").
		OrderBy("COUNT(*) DESC", "p.name ASC").
		Limit(limit)
}

// Overview returns the headline record counts.
func (r *AnalyticsRepository) Overview(ctx context.Context) (models.Overview, error) {
	var overview models.Overview
	query := `
	SELECT
		(SELECT COUNT(*) FROM students),
		(SELECT COUNT(*) FROM programmes),
		(SELECT COUNT(*) FROM modules),
		(SELECT COUNT(*) FROM enrolments)`

	err := r.db.QueryRow(ctx, query).Scan(
		&overview.TotalStudents, &overview.TotalProgrammes,
		&overview.TotalModules, &overview.TotalEnrolments,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing overview counts")
		return models.Overview{}, fmt.Errorf("error computing overview counts: %w", err)
	}

	return overview, nil
}

// StudentsByStatus counts students grouped by status. Only statuses
// present in the data appear in the result.
func (r *AnalyticsRepository) StudentsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	sql, args, err := studentsByStatusQuery().PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build students by status query: %w", err)
	}

	return r.queryStatusCounts(ctx, sql, args)
}

// StudentsByFaculty counts students per faculty via the two-hop
// student -> programme -> faculty join, most populous faculty first.
// Faculties without students do not appear.
func (r *AnalyticsRepository) StudentsByFaculty(ctx context.Context) ([]models.FacultyCount, error) {
	sql, args, err := studentsByFacultyQuery().PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build students by faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing students by faculty")
		return nil, fmt.Errorf("error computing students by faculty: %w", err)
	}
	defer rows.Close()

	counts := []models.FacultyCount{}
	for rows.Next() {
		var c models.FacultyCount
		if err := rows.Scan(&c.Faculty, &c.Count); err != nil {
			return nil, fmt.Errorf("error scanning faculty count row: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// EnrolmentsByStatus counts enrolments grouped by status.
func (r *AnalyticsRepository) EnrolmentsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	sql, args, err := enrolmentsByStatusQuery().PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enrolments by status query: %w", err)
	}

	return r.queryStatusCounts(ctx, sql, args)
}

// RecentEnrolments counts enrolments created since the given instant,
// bucketed per calendar day and sorted ascending by date.
func (r *AnalyticsRepository) RecentEnrolments(ctx context.Context, since time.Time) ([]models.DateCount, error) {
	sql, args, err := recentEnrolmentsQuery(since).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent enrolments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing recent enrolments")
		return nil, fmt.Errorf("error computing recent enrolments: %w", err)
	}
	defer rows.Close()

	counts := []models.DateCount{}
	for rows.Next() {
		var c models.DateCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("error scanning date count row: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// TopProgrammes returns the most enrolled programmes by student count,
// descending, capped at limit.
func (r *AnalyticsRepository) TopProgrammes(ctx context.Context, limit uint64) ([]models.ProgrammeCount, error) {
	sql, args, err := topProgrammesQuery(limit).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build top programmes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing top programmes")
		return nil, fmt.Errorf("error computing top programmes: %w", err)
	}
	defer rows.Close()

	counts := []models.ProgrammeCount{}
	for rows.Next() {
		var c models.ProgrammeCount
		if err := rows.Scan(&c.Programme, &c.Count); err != nil {
			return nil, fmt.Errorf("error scanning programme count row: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

func (r *AnalyticsRepository) queryStatusCounts(ctx context.Context, sql string, args []interface{}) ([]models.StatusCount, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing status counts")
		return nil, fmt.Errorf("error computing status counts: %w", err)
	}
	defer rows.Close()

	counts := []models.StatusCount{}
	for rows.Next() {
		var c models.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("error scanning status count row: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
