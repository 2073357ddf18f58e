package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokoena/studenthub/internal/app/models/dto"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/students/99", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return rec, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"programme not found", apperrors.ErrProgrammeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrModuleNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate enrolment", apperrors.ErrEnrolmentAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"faculty still referenced", apperrors.ErrFacultyHasProgrammes, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"validation failure", fmt.Errorf("%w: semester must be 1 or 2", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("unusable payload"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	_, body := handleError(t, errors.New("pq: password authentication failed"))
	assert.Equal(t, "Internal server error", body.Error.Message)
}
