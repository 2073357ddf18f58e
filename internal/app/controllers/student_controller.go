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
	"github.com/mokoena/studenthub/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudents retrieves one page of students
// @Summary List students
// @Description Retrieves students newest first with pagination, optionally filtered by search text and status
// @Tags students
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(20) maximum(100)
// @Param search query string false "Substring match on names, student number and email"
// @Param status query string false "Student status" Enums(active, graduated, suspended, withdrawn)
// @Success 200 {object} dto.StudentListResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	page, limit := helpers.ParseListParams(ctx)
	offset, lim := helpers.CalculateOffsetLimit(page, limit)

	filter := repositories.StudentFilter{
		Search: ctx.Query("search"),
		Status: ctx.Query("status"),
	}

	list, err := c.studentService.GetStudents(ctx, filter, offset, lim)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Students:   list.Students,
		Pagination: helpers.NewPagination(list.Total, page, limit),
	})
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Description Retrieves a specific student by ID with the programme expanded
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} models.Student "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent handles student admission
// @Summary Admit a new student
// @Description Registers a new student on an existing programme. Status defaults to active.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} models.Student "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Programme not found"
// @Failure 409 {object} dto.ErrorResponse "Student number, ID number or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student := &models.Student{
		StudentNo:   req.StudentNo,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IDNumber:    req.IDNumber,
		Email:       req.Email,
		Mobile:      req.Mobile,
		ProgrammeID: req.ProgrammeID,
		IntakeYear:  req.IntakeYear,
		Status:      models.StudentStatus(req.Status),
	}

	created, err := c.studentService.CreateStudent(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateStudent updates an existing student
// @Summary Update a student
// @Description Updates a student's mutable fields. Student number, national ID and intake year are immutable.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} models.Student "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or programme not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Immutable fields come from the stored row
	current, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student := &models.Student{
		ID:          id,
		StudentNo:   current.StudentNo,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IDNumber:    current.IDNumber,
		Email:       req.Email,
		Mobile:      req.Mobile,
		ProgrammeID: req.ProgrammeID,
		IntakeYear:  current.IntakeYear,
		Status:      models.StudentStatus(req.Status),
	}

	updated, err := c.studentService.UpdateStudent(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
