package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSQL(t *testing.T, q squirrel.SelectBuilder) (string, []interface{}) {
	t.Helper()
	sql, args, err := q.ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestStudentFilterApply(t *testing.T) {
	base := squirrel.Select("s.id").From("students s")

	t.Run("zero filter adds nothing", func(t *testing.T) {
		sql, args := buildSQL(t, StudentFilter{}.apply(base))
		assert.Equal(t, "SELECT s.id FROM students s", sql)
		assert.Empty(t, args)
	})

	t.Run("search matches names, student number and email", func(t *testing.T) {
		sql, args := buildSQL(t, StudentFilter{Search: "dlamini"}.apply(base))
		assert.Contains(t, sql, "s.first_name ILIKE ?")
		assert.Contains(t, sql, "s.last_name ILIKE ?")
		assert.Contains(t, sql, "s.student_no ILIKE ?")
		assert.Contains(t, sql, "s.email ILIKE ?")
		require.Len(t, args, 4)
		assert.Equal(t, "%dlamini%", args[0])
	})

	t.Run("status is an exact match", func(t *testing.T) {
		sql, args := buildSQL(t, StudentFilter{Status: "graduated"}.apply(base))
		assert.Contains(t, sql, "s.status = ?")
		assert.Equal(t, []interface{}{"graduated"}, args)
	})
}

func TestProgrammeFilterApply(t *testing.T) {
	base := squirrel.Select("p.id").From("programmes p")

	t.Run("combines search, level and faculty", func(t *testing.T) {
		filter := ProgrammeFilter{Search: "engineering", Level: "degree", FacultyID: 3}
		sql, args := buildSQL(t, filter.apply(base))

		assert.Contains(t, sql, "p.name ILIKE ?")
		assert.Contains(t, sql, "p.code ILIKE ?")
		assert.Contains(t, sql, "p.level = ?")
		assert.Contains(t, sql, "p.faculty_id = ?")
		assert.Len(t, args, 4)
	})

	t.Run("zero faculty id is no constraint", func(t *testing.T) {
		sql, _ := buildSQL(t, ProgrammeFilter{Level: "masters"}.apply(base))
		assert.NotContains(t, sql, "faculty_id")
	})
}

func TestModuleFilterApply(t *testing.T) {
	base := squirrel.Select("m.id").From("modules m")

	filter := ModuleFilter{Search: "calculus", ProgrammeID: 2, YearLevel: 1, Semester: 2}
	sql, args := buildSQL(t, filter.apply(base))

	assert.Contains(t, sql, "m.title ILIKE ?")
	assert.Contains(t, sql, "m.code ILIKE ?")
	assert.Contains(t, sql, "m.programme_id = ?")
	assert.Contains(t, sql, "m.year_level = ?")
	assert.Contains(t, sql, "m.semester_offered = ?")
	assert.Len(t, args, 5)
}

func TestEnrolmentFilterApply(t *testing.T) {
	base := squirrel.Select("e.id").From("enrolments e")

	t.Run("combines all constraints", func(t *testing.T) {
		filter := EnrolmentFilter{StudentID: 7, ModuleID: 9, Status: "completed", AcademicYear: 2026}
		sql, args := buildSQL(t, filter.apply(base))

		assert.Contains(t, sql, "e.student_id = ?")
		assert.Contains(t, sql, "e.module_id = ?")
		assert.Contains(t, sql, "e.status = ?")
		assert.Contains(t, sql, "e.academic_year = ?")
		assert.Len(t, args, 4)
	})

	t.Run("zero filter adds nothing", func(t *testing.T) {
		sql, args := buildSQL(t, EnrolmentFilter{}.apply(base))
		assert.Equal(t, "SELECT e.id FROM enrolments e", sql)
		assert.Empty(t, args)
	})
}
