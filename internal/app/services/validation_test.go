package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

// Validation runs before any repository call, so invalid input can be
// exercised with nil repositories.

func TestFacultyValidation(t *testing.T) {
	svc := NewFacultyService(nil)

	tests := []struct {
		name    string
		faculty *models.Faculty
	}{
		{"nil faculty", nil},
		{"empty name", &models.Faculty{Code: "ENG"}},
		{"empty code", &models.Faculty{Name: "Faculty of Engineering"}},
		{"whitespace name", &models.Faculty{Code: "ENG", Name: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateFaculty(context.Background(), tt.faculty)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestProgrammeValidation(t *testing.T) {
	svc := NewProgrammeService(nil, nil)

	valid := func() *models.Programme {
		return &models.Programme{
			Code:          "BENGCS",
			Name:          "Bachelor of Engineering in Computer Science",
			FacultyID:     1,
			Level:         models.LevelDegree,
			TotalCredits:  480,
			DurationYears: 4,
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.Programme)
	}{
		{"unknown level", func(p *models.Programme) { p.Level = "doctorate" }},
		{"zero credits", func(p *models.Programme) { p.TotalCredits = 0 }},
		{"negative duration", func(p *models.Programme) { p.DurationYears = -1 }},
		{"empty code", func(p *models.Programme) { p.Code = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			programme := valid()
			tt.mutate(programme)
			_, err := svc.CreateProgramme(context.Background(), programme)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestModuleValidation(t *testing.T) {
	svc := NewModuleService(nil, nil)

	valid := func() *models.Module {
		return &models.Module{
			Code:            "CS101",
			Title:           "Introduction to Programming",
			Credits:         12,
			YearLevel:       1,
			SemesterOffered: 1,
			ProgrammeID:     1,
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.Module)
	}{
		{"semester out of range", func(m *models.Module) { m.SemesterOffered = 3 }},
		{"zero year level", func(m *models.Module) { m.YearLevel = 0 }},
		{"zero credits", func(m *models.Module) { m.Credits = 0 }},
		{"empty title", func(m *models.Module) { m.Title = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module := valid()
			tt.mutate(module)
			_, err := svc.CreateModule(context.Background(), module)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestEnrolmentValidation(t *testing.T) {
	svc := NewEnrolmentService(nil, nil, nil)

	mark := func(v float64) *float64 { return &v }

	valid := func() *models.Enrolment {
		return &models.Enrolment{
			StudentID:    1,
			ModuleID:     2,
			AcademicYear: 2026,
			Semester:     1,
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.Enrolment)
	}{
		{"ancient academic year", func(e *models.Enrolment) { e.AcademicYear = 1980 }},
		{"semester out of range", func(e *models.Enrolment) { e.Semester = 0 }},
		{"mark above 100", func(e *models.Enrolment) { e.FinalMark = mark(101) }},
		{"negative mark", func(e *models.Enrolment) { e.FinalMark = mark(-1) }},
		{"unknown status", func(e *models.Enrolment) { e.Status = "abandoned" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enrolment := valid()
			tt.mutate(enrolment)
			_, err := svc.CreateEnrolment(context.Background(), enrolment)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreateDefaultsStatuses(t *testing.T) {
	t.Run("student defaults to active before validation", func(t *testing.T) {
		svc := NewStudentService(nil, nil)

		// Invalid for a different reason; status has already been
		// defaulted when validation reports the missing email.
		student := &models.Student{StudentNo: "ST1", FirstName: "A", LastName: "B", IDNumber: "X"}
		_, err := svc.CreateStudent(context.Background(), student)
		require.Error(t, err)
		assert.Equal(t, models.StudentActive, student.Status)
	})

	t.Run("enrolment defaults to not-started before validation", func(t *testing.T) {
		svc := NewEnrolmentService(nil, nil, nil)

		enrolment := &models.Enrolment{StudentID: 1, ModuleID: 2, AcademicYear: 2026, Semester: 3}
		_, err := svc.CreateEnrolment(context.Background(), enrolment)
		require.Error(t, err)
		assert.Equal(t, models.EnrolmentNotStarted, enrolment.Status)
	})
}
