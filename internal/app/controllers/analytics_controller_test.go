package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokoena/studenthub/internal/app/models"
)

type fakeAnalyticsService struct {
	analytics *models.Analytics
}

func (f *fakeAnalyticsService) ComputeSnapshot(context.Context) (models.Snapshot, error) {
	return f.analytics.Snapshot, nil
}

func (f *fakeAnalyticsService) GenerateAnalytics(context.Context) *models.Analytics {
	return f.analytics
}

func TestGetAnalytics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	snapshot := models.EmptySnapshot(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	snapshot.Overview = models.Overview{TotalStudents: 42, TotalProgrammes: 5}
	svc := &fakeAnalyticsService{analytics: &models.Analytics{
		Snapshot: snapshot,
		Insights: "Currently managing 42 students across 5 programmes.",
	}}

	router := gin.New()
	router.GET("/api/analytics", NewAnalyticsController(svc).GetAnalytics)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/analytics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Snapshot sections and insights sit side by side in one object.
	assert.Contains(t, body, "overview")
	assert.Contains(t, body, "distributions")
	assert.Contains(t, body, "trends")
	assert.Contains(t, body, "timestamp")
	assert.Contains(t, body, "insights")

	var overview models.Overview
	require.NoError(t, json.Unmarshal(body["overview"], &overview))
	assert.Equal(t, int64(42), overview.TotalStudents)

	// Empty facets render as arrays, never null.
	assert.Contains(t, string(body["trends"]), `"topProgrammes":[]`)
}
