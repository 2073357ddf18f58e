package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokoena/studenthub/internal/app/models"
)

type fakeSnapshotSource struct {
	overview models.Overview
	byStatus []models.StatusCount
	failWith error

	gotSince time.Time
	gotLimit uint64
}

func (f *fakeSnapshotSource) Overview(context.Context) (models.Overview, error) {
	return f.overview, f.failWith
}

func (f *fakeSnapshotSource) StudentsByStatus(context.Context) ([]models.StatusCount, error) {
	return f.byStatus, nil
}

func (f *fakeSnapshotSource) StudentsByFaculty(context.Context) ([]models.FacultyCount, error) {
	return []models.FacultyCount{{Faculty: "Faculty of Science", Count: 12}}, nil
}

func (f *fakeSnapshotSource) EnrolmentsByStatus(context.Context) ([]models.StatusCount, error) {
	return []models.StatusCount{{Status: "in-progress", Count: 7}}, nil
}

func (f *fakeSnapshotSource) RecentEnrolments(_ context.Context, since time.Time) ([]models.DateCount, error) {
	f.gotSince = since
	return []models.DateCount{{Date: "2026-08-30", Count: 3}}, nil
}

func (f *fakeSnapshotSource) TopProgrammes(_ context.Context, limit uint64) ([]models.ProgrammeCount, error) {
	f.gotLimit = limit
	return []models.ProgrammeCount{{Programme: "Diploma in Electrical Engineering", Count: 5}}, nil
}

type staticNarrator struct{ text string }

func (n staticNarrator) Narrate(context.Context, models.Snapshot) string { return n.text }

func TestComputeSnapshot(t *testing.T) {
	source := &fakeSnapshotSource{
		overview: models.Overview{TotalStudents: 20, TotalProgrammes: 3, TotalModules: 9, TotalEnrolments: 31},
		byStatus: []models.StatusCount{{Status: "active", Count: 18}},
	}
	svc := NewAnalyticsService(source, staticNarrator{}, zerolog.Nop())

	snapshot, err := svc.ComputeSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, source.overview, snapshot.Overview)
	assert.Equal(t, source.byStatus, snapshot.Distributions.StudentsByStatus)
	assert.Len(t, snapshot.Distributions.StudentsByFaculty, 1)
	assert.Len(t, snapshot.Trends.RecentEnrolments, 1)
	assert.Len(t, snapshot.Trends.TopProgrammes, 1)
	assert.False(t, snapshot.Timestamp.IsZero())

	// Trailing window and ranking limit passed through to the source.
	assert.Equal(t, uint64(topProgrammesLimit), source.gotLimit)
	assert.WithinDuration(t, time.Now().UTC().Add(-recentWindow), source.gotSince, time.Minute)
}

func TestGenerateAnalytics(t *testing.T) {
	t.Run("narrates a healthy snapshot", func(t *testing.T) {
		source := &fakeSnapshotSource{overview: models.Overview{TotalStudents: 20}}
		svc := NewAnalyticsService(source, staticNarrator{text: "all good"}, zerolog.Nop())

		analytics := svc.GenerateAnalytics(context.Background())

		assert.Equal(t, "all good", analytics.Insights)
		assert.Equal(t, int64(20), analytics.Overview.TotalStudents)
	})

	t.Run("serves the fallback when a facet fails", func(t *testing.T) {
		source := &fakeSnapshotSource{failWith: errors.New("connection refused")}
		svc := NewAnalyticsService(source, staticNarrator{text: "never used"}, zerolog.Nop())

		analytics := svc.GenerateAnalytics(context.Background())

		assert.Equal(t, initializingInsights, analytics.Insights)
		assert.Equal(t, models.Overview{}, analytics.Overview)
		assert.NotNil(t, analytics.Distributions.StudentsByStatus)
		assert.Empty(t, analytics.Distributions.StudentsByStatus)
		assert.NotNil(t, analytics.Trends.TopProgrammes)
		assert.False(t, analytics.Timestamp.IsZero())
	})
}
