package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mokoena/studenthub/internal/app/models/dto"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
	"github.com/mokoena/studenthub/internal/pkg/logger"
)

// notFoundErrors map service-level lookups that came back empty.
var notFoundErrors = []error{
	apperrors.ErrFacultyNotFound,
	apperrors.ErrProgrammeNotFound,
	apperrors.ErrModuleNotFound,
	apperrors.ErrStudentNotFound,
	apperrors.ErrEnrolmentNotFound,
	apperrors.ErrResourceNotFound,
}

// conflictErrors map uniqueness and referential violations.
var conflictErrors = []error{
	apperrors.ErrFacultyAlreadyExists,
	apperrors.ErrProgrammeAlreadyExists,
	apperrors.ErrModuleAlreadyExists,
	apperrors.ErrStudentAlreadyExists,
	apperrors.ErrEnrolmentAlreadyExists,
	apperrors.ErrFacultyHasProgrammes,
	apperrors.ErrResourceAlreadyExists,
}

// HandleAPIError translates application errors into HTTP responses.
// Controllers call this for any error coming out of the service layer.
func HandleAPIError(c *gin.Context, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, sentinel.Error())
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
			return
		}
	}

	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			detail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, sentinel.Error())
			c.JSON(http.StatusConflict, dto.NewErrorResponse(detail))
			return
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		detail = detail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	case errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}
