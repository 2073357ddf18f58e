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
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

type fakeFacultyService struct {
	faculties []*models.Faculty
	err       error
	created   *models.Faculty
	deletedID int64
}

func (f *fakeFacultyService) CreateFaculty(_ context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	if f.err != nil {
		return nil, f.err
	}
	faculty.ID = 1
	f.created = faculty
	return faculty, nil
}

func (f *fakeFacultyService) GetFacultyByID(_ context.Context, id int64) (*models.Faculty, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, faculty := range f.faculties {
		if faculty.ID == id {
			return faculty, nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (f *fakeFacultyService) GetAllFaculties(context.Context) ([]*models.Faculty, error) {
	return f.faculties, f.err
}

func (f *fakeFacultyService) UpdateFaculty(_ context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	if f.err != nil {
		return nil, f.err
	}
	return faculty, nil
}

func (f *fakeFacultyService) DeleteFaculty(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func facultyRouter(svc *fakeFacultyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewFacultyController(svc)
	group := router.Group("/api/faculties")
	group.GET("", controller.GetAllFaculties)
	group.GET("/:id", controller.GetFacultyByID)
	group.POST("", controller.CreateFaculty)
	group.PUT("/:id", controller.UpdateFaculty)
	group.DELETE("/:id", controller.DeleteFaculty)
	return router
}

func TestGetAllFaculties(t *testing.T) {
	svc := &fakeFacultyService{faculties: []*models.Faculty{
		{ID: 1, Code: "ENG", Name: "Faculty of Engineering"},
		{ID: 2, Code: "SCI", Name: "Faculty of Science"},
	}}
	router := facultyRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/faculties", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Faculty
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "ENG", got[0].Code)
}

func TestGetFacultyByID(t *testing.T) {
	svc := &fakeFacultyService{faculties: []*models.Faculty{{ID: 1, Code: "ENG", Name: "Faculty of Engineering"}}}
	router := facultyRouter(svc)

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/faculties/1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing returns 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/faculties/42", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/faculties/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateFaculty(t *testing.T) {
	t.Run("valid payload returns 201", func(t *testing.T) {
		svc := &fakeFacultyService{}
		router := facultyRouter(svc)

		body := strings.NewReader(`{"code":"COM","name":"Faculty of Commerce"}`)
		req := httptest.NewRequest("POST", "/api/faculties", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, svc.created)
		assert.Equal(t, "COM", svc.created.Code)
	})

	t.Run("missing name returns 400", func(t *testing.T) {
		router := facultyRouter(&fakeFacultyService{})

		req := httptest.NewRequest("POST", "/api/faculties", strings.NewReader(`{"code":"COM"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate code returns 409", func(t *testing.T) {
		router := facultyRouter(&fakeFacultyService{err: apperrors.ErrFacultyAlreadyExists})

		body := strings.NewReader(`{"code":"COM","name":"Faculty of Commerce"}`)
		req := httptest.NewRequest("POST", "/api/faculties", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestDeleteFaculty(t *testing.T) {
	t.Run("deletes and reports success", func(t *testing.T) {
		svc := &fakeFacultyService{}
		router := facultyRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/faculties/3", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(3), svc.deletedID)
	})

	t.Run("faculty with programmes returns 409", func(t *testing.T) {
		router := facultyRouter(&fakeFacultyService{err: apperrors.ErrFacultyHasProgrammes})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/faculties/3", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
