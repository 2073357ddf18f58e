package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/app/models/dto"
	"github.com/mokoena/studenthub/internal/app/repositories"
	"github.com/mokoena/studenthub/internal/app/services"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

type fakeStudentService struct {
	students []*models.Student
	total    int64
	err      error

	gotFilter repositories.StudentFilter
	gotOffset uint64
	gotLimit  uint64
	created   *models.Student
	updated   *models.Student
}

func (f *fakeStudentService) CreateStudent(_ context.Context, student *models.Student) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	student.ID = 1
	f.created = student
	return student, nil
}

func (f *fakeStudentService) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, student := range f.students {
		if student.ID == id {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentService) GetStudents(_ context.Context, filter repositories.StudentFilter, offset, limit uint64) (*services.StudentList, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotFilter = filter
	f.gotOffset = offset
	f.gotLimit = limit
	return &services.StudentList{Students: f.students, Total: f.total}, nil
}

func (f *fakeStudentService) UpdateStudent(_ context.Context, student *models.Student) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = student
	return student, nil
}

func studentRouter(svc *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewStudentController(svc)
	group := router.Group("/api/students")
	group.GET("", controller.GetStudents)
	group.GET("/:id", controller.GetStudentByID)
	group.POST("", controller.CreateStudent)
	group.PUT("/:id", controller.UpdateStudent)
	return router
}

func TestGetStudentsPagination(t *testing.T) {
	svc := &fakeStudentService{
		students: []*models.Student{
			{ID: 1, StudentNo: "ST2026001", FirstName: "Naledi", LastName: "Mokoena"},
		},
		total: 93,
	}
	router := studentRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/students?page=2&limit=20&search=mokoena&status=active", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.StudentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Students, 1)
	assert.Equal(t, 2, body.Pagination.Current)
	assert.Equal(t, 5, body.Pagination.Pages)
	assert.Equal(t, int64(93), body.Pagination.Total)

	assert.Equal(t, repositories.StudentFilter{Search: "mokoena", Status: "active"}, svc.gotFilter)
	assert.Equal(t, uint64(20), svc.gotOffset)
	assert.Equal(t, uint64(20), svc.gotLimit)
}

func TestGetStudentsDefaults(t *testing.T) {
	svc := &fakeStudentService{students: []*models.Student{}}
	router := studentRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/students", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(0), svc.gotOffset)
	assert.Equal(t, uint64(20), svc.gotLimit)

	// Empty page still carries an array, never null.
	assert.Contains(t, rec.Body.String(), `"students":[]`)
}

func TestCreateStudent(t *testing.T) {
	t.Run("valid payload returns 201", func(t *testing.T) {
		svc := &fakeStudentService{}
		router := studentRouter(svc)

		body := strings.NewReader(`{
			"studentNo": "ST2026001",
			"firstName": "Naledi",
			"lastName": "Mokoena",
			"idNumber": "0301015800087",
			"email": "naledi@example.com",
			"programmeId": 2,
			"intakeYear": 2026
		}`)
		req := httptest.NewRequest("POST", "/api/students", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, svc.created)
		assert.Equal(t, "ST2026001", svc.created.StudentNo)
	})

	t.Run("bad email returns 400", func(t *testing.T) {
		router := studentRouter(&fakeStudentService{})

		body := strings.NewReader(`{
			"studentNo": "ST2026001",
			"firstName": "Naledi",
			"lastName": "Mokoena",
			"idNumber": "0301015800087",
			"email": "not-an-email",
			"programmeId": 2,
			"intakeYear": 2026
		}`)
		req := httptest.NewRequest("POST", "/api/students", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate student number returns 409", func(t *testing.T) {
		router := studentRouter(&fakeStudentService{err: apperrors.ErrStudentAlreadyExists})

		body := strings.NewReader(`{
			"studentNo": "ST2026001",
			"firstName": "Naledi",
			"lastName": "Mokoena",
			"idNumber": "0301015800087",
			"email": "naledi@example.com",
			"programmeId": 2,
			"intakeYear": 2026
		}`)
		req := httptest.NewRequest("POST", "/api/students", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdateStudentKeepsImmutableFields(t *testing.T) {
	svc := &fakeStudentService{students: []*models.Student{{
		ID:         5,
		StudentNo:  "ST2024001",
		IDNumber:   "0001015800083",
		IntakeYear: 2024,
		FirstName:  "Sipho",
		LastName:   "Ndlovu",
		Email:      "sipho@example.com",
		Status:     models.StudentActive,
	}}}
	router := studentRouter(svc)

	body := strings.NewReader(`{
		"firstName": "Sipho",
		"lastName": "Ndlovu",
		"email": "sipho.ndlovu@example.com",
		"programmeId": 3,
		"status": "graduated"
	}`)
	req := httptest.NewRequest("PUT", "/api/students/5", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.updated)
	assert.Equal(t, "ST2024001", svc.updated.StudentNo)
	assert.Equal(t, "0001015800083", svc.updated.IDNumber)
	assert.Equal(t, 2024, svc.updated.IntakeYear)
	assert.Equal(t, models.StudentGraduated, svc.updated.Status)
	assert.Equal(t, "sipho.ndlovu@example.com", svc.updated.Email)
}
