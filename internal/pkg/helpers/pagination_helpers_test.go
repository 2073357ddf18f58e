package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func listContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/students"+query, nil)
	return c
}

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit values", "?page=3&limit=50", 3, 50},
		{"non-numeric falls back", "?page=abc&limit=xyz", 1, 20},
		{"zero page falls back", "?page=0", 1, 20},
		{"negative limit falls back", "?limit=-5", 1, 20},
		{"limit above cap falls back", "?limit=500", 1, 20},
		{"limit at cap kept", "?limit=100", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ParseListParams(listContext(t, tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 20)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, uint64(20), limit)

	offset, limit = CalculateOffsetLimit(4, 25)
	assert.Equal(t, uint64(75), offset)
	assert.Equal(t, uint64(25), limit)

	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, uint64(DefaultLimit), limit)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(93, 2, 20)
	assert.Equal(t, 2, p.Current)
	assert.Equal(t, 5, p.Pages)
	assert.Equal(t, int64(93), p.Total)

	p = NewPagination(0, 1, 20)
	assert.Equal(t, 0, p.Pages)
	assert.Equal(t, int64(0), p.Total)

	p = NewPagination(20, 1, 20)
	assert.Equal(t, 1, p.Pages)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, ParseDuration("30s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("bogus", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}
