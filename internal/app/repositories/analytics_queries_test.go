package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentsByStatusQuery(t *testing.T) {
	sql, args := buildSQL(t, studentsByStatusQuery())

	assert.Equal(t, "SELECT status, COUNT(*) FROM students GROUP BY status", sql)
	assert.Empty(t, args)
}

func TestEnrolmentsByStatusQuery(t *testing.T) {
	sql, args := buildSQL(t, enrolmentsByStatusQuery())

	assert.Equal(t, "SELECT status, COUNT(*) FROM enrolments GROUP BY status", sql)
	assert.Empty(t, args)
}

func TestStudentsByFacultyQuery(t *testing.T) {
	sql, args := buildSQL(t, studentsByFacultyQuery())

	assert.Contains(t, sql, "JOIN programmes p ON p.id = s.programme_id")
	assert.Contains(t, sql, "JOIN faculties f ON f.id = p.faculty_id")
	assert.Contains(t, sql, "GROUP BY f.name")
	assert.Contains(t, sql, "ORDER BY COUNT(*) DESC, f.name ASC")
	assert.Empty(t, args)
}

func TestRecentEnrolmentsQuery(t *testing.T) {
	since := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	sql, args := buildSQL(t, recentEnrolmentsQuery(since))

	t.Run("buckets per UTC day", func(t *testing.T) {
		assert.Contains(t, sql, "to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day")
		assert.Contains(t, sql, "GROUP BY day")
	})

	t.Run("windowed from since, ascending by day", func(t *testing.T) {
		assert.Contains(t, sql, "created_at >= ?")
		assert.Contains(t, sql, "ORDER BY day ASC")
		require.Len(t, args, 1)
		assert.Equal(t, since, args[0])
	})
}

func TestTopProgrammesQuery(t *testing.T) {
	sql, args := buildSQL(t, topProgrammesQuery(10))

	assert.Contains(t, sql, "JOIN programmes p ON p.id = s.programme_id")
	assert.Contains(t, sql, "GROUP BY p.name")
	assert.Contains(t, sql, "ORDER BY COUNT(*) DESC, p.name ASC")
	assert.Contains(t, sql, "LIMIT 10")
	assert.Empty(t, args)
}
