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

// EnrolmentController handles enrolment-related operations
type EnrolmentController struct {
	enrolmentService services.EnrolmentService
}

// NewEnrolmentController creates a new EnrolmentController
func NewEnrolmentController(enrolmentService services.EnrolmentService) *EnrolmentController {
	return &EnrolmentController{
		enrolmentService: enrolmentService,
	}
}

// GetEnrolments retrieves enrolments matching the optional filters
// @Summary List enrolments
// @Description Retrieves enrolments newest first with student and module summaries expanded
// @Tags enrolments
// @Accept json
// @Produce json
// @Param studentId query int false "Student ID"
// @Param moduleId query int false "Module ID"
// @Param status query string false "Enrolment status" Enums(not-started, in-progress, completed, withdrawn)
// @Param academicYear query int false "Academic year"
// @Success 200 {array} models.Enrolment "Enrolments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrolments [get]
func (c *EnrolmentController) GetEnrolments(ctx *gin.Context) {
	filter := repositories.EnrolmentFilter{
		Status: ctx.Query("status"),
	}
	if studentStr := ctx.Query("studentId"); studentStr != "" {
		if studentID, err := strconv.ParseInt(studentStr, 10, 64); err == nil {
			filter.StudentID = studentID
		}
	}
	if moduleStr := ctx.Query("moduleId"); moduleStr != "" {
		if moduleID, err := strconv.ParseInt(moduleStr, 10, 64); err == nil {
			filter.ModuleID = moduleID
		}
	}
	if yearStr := ctx.Query("academicYear"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.AcademicYear = year
		}
	}

	enrolments, err := c.enrolmentService.GetEnrolments(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrolments)
}

// GetEnrolmentByID retrieves an enrolment by ID
// @Summary Get enrolment details
// @Description Retrieves a specific enrolment by ID with student and module summaries expanded
// @Tags enrolments
// @Accept json
// @Produce json
// @Param id path int true "Enrolment ID" Format(int64) minimum(1)
// @Success 200 {object} models.Enrolment "Enrolment retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrolment ID format"
// @Failure 404 {object} dto.ErrorResponse "Enrolment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrolments/{id} [get]
func (c *EnrolmentController) GetEnrolmentByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrolment ID")
		errorDetail = errorDetail.WithDetails("Enrolment ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrolment, err := c.enrolmentService.GetEnrolmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrolment)
}

// CreateEnrolment handles enrolment creation
// @Summary Enrol a student in a module
// @Description Creates an enrolment joining a student to a module for one academic year and semester
// @Tags enrolments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrolmentRequest true "Enrolment information"
// @Success 201 {object} models.Enrolment "Enrolment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or module not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled in this module for the period"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrolments [post]
func (c *EnrolmentController) CreateEnrolment(ctx *gin.Context) {
	var req dto.CreateEnrolmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrolment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrolment := &models.Enrolment{
		StudentID:    req.StudentID,
		ModuleID:     req.ModuleID,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
	}

	created, err := c.enrolmentService.CreateEnrolment(ctx, enrolment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateEnrolment updates the status and results of an enrolment
// @Summary Update an enrolment
// @Description Updates an enrolment's status, final mark and letter grade
// @Tags enrolments
// @Accept json
// @Produce json
// @Param id path int true "Enrolment ID" Format(int64) minimum(1)
// @Param request body dto.UpdateEnrolmentRequest true "Updated enrolment information"
// @Success 200 {object} models.Enrolment "Enrolment updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Enrolment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrolments/{id} [put]
func (c *EnrolmentController) UpdateEnrolment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrolment ID")
		errorDetail = errorDetail.WithDetails("Enrolment ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateEnrolmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrolment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The join itself is immutable; only progress fields change
	current, err := c.enrolmentService.GetEnrolmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	enrolment := &models.Enrolment{
		ID:           id,
		StudentID:    current.StudentID,
		ModuleID:     current.ModuleID,
		AcademicYear: current.AcademicYear,
		Semester:     current.Semester,
		Status:       models.EnrolmentStatus(req.Status),
		FinalMark:    req.FinalMark,
		LetterGrade:  req.LetterGrade,
	}

	updated, err := c.enrolmentService.UpdateEnrolment(ctx, enrolment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
