package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/pkg/insights"
)

const (
	// recentWindow is the trailing period covered by the
	// recent-enrolments facet.
	recentWindow = 30 * 24 * time.Hour

	// topProgrammesLimit caps the top-programmes facet.
	topProgrammesLimit = 10

	// initializingInsights is served when snapshot computation fails.
	initializingInsights = "Analytics service is initializing. Please check back in a moment."
)

// SnapshotSource supplies the individual aggregation facets. Implemented
// by repositories.AnalyticsRepository; tests substitute fakes.
type SnapshotSource interface {
	Overview(ctx context.Context) (models.Overview, error)
	StudentsByStatus(ctx context.Context) ([]models.StatusCount, error)
	StudentsByFaculty(ctx context.Context) ([]models.FacultyCount, error)
	EnrolmentsByStatus(ctx context.Context) ([]models.StatusCount, error)
	RecentEnrolments(ctx context.Context, since time.Time) ([]models.DateCount, error)
	TopProgrammes(ctx context.Context, limit uint64) ([]models.ProgrammeCount, error)
}

// AnalyticsService assembles snapshots and narrated analytics.
type AnalyticsService interface {
	// ComputeSnapshot reads every facet from the source. Facets are read
	// independently; skew between them under concurrent writes is
	// acceptable.
	ComputeSnapshot(ctx context.Context) (models.Snapshot, error)

	// GenerateAnalytics returns a snapshot plus narrated insights. It
	// never fails: a snapshot error yields the zero-valued fallback with
	// a static initializing message.
	GenerateAnalytics(ctx context.Context) *models.Analytics
}

type analyticsServiceImpl struct {
	source   SnapshotSource
	narrator insights.Narrator
	logger   zerolog.Logger
}

// NewAnalyticsService creates an analytics service over the given facet
// source and narrator.
func NewAnalyticsService(source SnapshotSource, narrator insights.Narrator, logger zerolog.Logger) AnalyticsService {
	return &analyticsServiceImpl{
		source:   source,
		narrator: narrator,
		logger:   logger,
	}
}

// ComputeSnapshot implements AnalyticsService.
func (s *analyticsServiceImpl) ComputeSnapshot(ctx context.Context) (models.Snapshot, error) {
	now := time.Now().UTC()

	overview, err := s.source.Overview(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("overview facet: %w", err)
	}

	studentsByStatus, err := s.source.StudentsByStatus(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("students by status facet: %w", err)
	}

	studentsByFaculty, err := s.source.StudentsByFaculty(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("students by faculty facet: %w", err)
	}

	enrolmentsByStatus, err := s.source.EnrolmentsByStatus(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("enrolments by status facet: %w", err)
	}

	recentEnrolments, err := s.source.RecentEnrolments(ctx, now.Add(-recentWindow))
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("recent enrolments facet: %w", err)
	}

	topProgrammes, err := s.source.TopProgrammes(ctx, topProgrammesLimit)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("top programmes facet: %w", err)
	}

	return models.Snapshot{
		Overview: overview,
		Distributions: models.Distributions{
			StudentsByStatus:   studentsByStatus,
			StudentsByFaculty:  studentsByFaculty,
			EnrolmentsByStatus: enrolmentsByStatus,
		},
		Trends: models.Trends{
			RecentEnrolments: recentEnrolments,
			TopProgrammes:    topProgrammes,
		},
		Timestamp: now,
	}, nil
}

// GenerateAnalytics implements AnalyticsService.
func (s *analyticsServiceImpl) GenerateAnalytics(ctx context.Context) *models.Analytics {
	snapshot, err := s.ComputeSnapshot(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Snapshot computation failed, serving fallback analytics")
		return &models.Analytics{
			Snapshot: models.EmptySnapshot(time.Now().UTC()),
			Insights: initializingInsights,
		}
	}

	return &models.Analytics{
		Snapshot: snapshot,
		Insights: s.narrator.Narrate(ctx, snapshot),
	}
}
