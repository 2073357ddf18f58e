package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/app/models/dto"
	"github.com/mokoena/studenthub/internal/app/repositories"
	"github.com/mokoena/studenthub/internal/app/services"
	"github.com/mokoena/studenthub/internal/middleware"
)

// ProgrammeController handles programme-related operations
type ProgrammeController struct {
	programmeService services.ProgrammeService
}

// NewProgrammeController creates a new ProgrammeController
func NewProgrammeController(programmeService services.ProgrammeService) *ProgrammeController {
	return &ProgrammeController{
		programmeService: programmeService,
	}
}

// GetProgrammes retrieves programmes matching the optional filters
// @Summary List programmes
// @Description Retrieves programmes ordered by name, optionally filtered by search text, level and faculty
// @Tags programmes
// @Accept json
// @Produce json
// @Param search query string false "Substring match on name and code"
// @Param level query string false "Programme level" Enums(certificate, diploma, degree, masters, phd)
// @Param facultyId query int false "Faculty ID"
// @Success 200 {array} models.Programme "Programmes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programmes [get]
func (c *ProgrammeController) GetProgrammes(ctx *gin.Context) {
	filter := repositories.ProgrammeFilter{
		Search: ctx.Query("search"),
		Level:  ctx.Query("level"),
	}
	if facultyStr := ctx.Query("facultyId"); facultyStr != "" {
		if facultyID, err := strconv.ParseInt(facultyStr, 10, 64); err == nil {
			filter.FacultyID = facultyID
		}
	}

	programmes, err := c.programmeService.GetProgrammes(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, programmes)
}

// GetProgrammeByID retrieves a programme by ID
// @Summary Get programme details
// @Description Retrieves a specific programme by its ID with the owning faculty expanded
// @Tags programmes
// @Accept json
// @Produce json
// @Param id path int true "Programme ID" Format(int64) minimum(1)
// @Success 200 {object} models.Programme "Programme retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid programme ID format"
// @Failure 404 {object} dto.ErrorResponse "Programme not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programmes/{id} [get]
func (c *ProgrammeController) GetProgrammeByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid programme ID")
		errorDetail = errorDetail.WithDetails("Programme ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	programme, err := c.programmeService.GetProgrammeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, programme)
}

// CreateProgramme handles programme creation
// @Summary Create a new programme
// @Description Creates a new programme under an existing faculty
// @Tags programmes
// @Accept json
// @Produce json
// @Param request body dto.CreateProgrammeRequest true "Programme information"
// @Success 201 {object} models.Programme "Programme created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Programme code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programmes [post]
func (c *ProgrammeController) CreateProgramme(ctx *gin.Context) {
	var req dto.CreateProgrammeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid programme data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	programme := &models.Programme{
		Code:          req.Code,
		Name:          req.Name,
		FacultyID:     req.FacultyID,
		Level:         models.ProgrammeLevel(req.Level),
		TotalCredits:  req.TotalCredits,
		DurationYears: req.DurationYears,
	}

	created, err := c.programmeService.CreateProgramme(ctx, programme)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateProgramme updates an existing programme
// @Summary Update a programme
// @Description Updates an existing programme with new information
// @Tags programmes
// @Accept json
// @Produce json
// @Param id path int true "Programme ID" Format(int64) minimum(1)
// @Param request body dto.UpdateProgrammeRequest true "Updated programme information"
// @Success 200 {object} models.Programme "Programme updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Programme or faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Programme code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programmes/{id} [put]
func (c *ProgrammeController) UpdateProgramme(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid programme ID")
		errorDetail = errorDetail.WithDetails("Programme ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProgrammeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid programme data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	programme := &models.Programme{
		ID:            id,
		Code:          req.Code,
		Name:          req.Name,
		FacultyID:     req.FacultyID,
		Level:         models.ProgrammeLevel(req.Level),
		TotalCredits:  req.TotalCredits,
		DurationYears: req.DurationYears,
	}

	updated, err := c.programmeService.UpdateProgramme(ctx, programme)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
