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

// ModuleController handles module-related operations
type ModuleController struct {
	moduleService services.ModuleService
}

// NewModuleController creates a new ModuleController
func NewModuleController(moduleService services.ModuleService) *ModuleController {
	return &ModuleController{
		moduleService: moduleService,
	}
}

// GetModules retrieves active modules matching the optional filters
// @Summary List modules
// @Description Retrieves active modules ordered by year level and semester
// @Tags modules
// @Accept json
// @Produce json
// @Param search query string false "Substring match on title and code"
// @Param programmeId query int false "Programme ID"
// @Param yearLevel query int false "Year of study the module sits in"
// @Param semester query int false "Semester offered" Enums(1, 2)
// @Success 200 {array} models.Module "Modules retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules [get]
func (c *ModuleController) GetModules(ctx *gin.Context) {
	filter := repositories.ModuleFilter{
		Search: ctx.Query("search"),
	}
	if programmeStr := ctx.Query("programmeId"); programmeStr != "" {
		if programmeID, err := strconv.ParseInt(programmeStr, 10, 64); err == nil {
			filter.ProgrammeID = programmeID
		}
	}
	if yearStr := ctx.Query("yearLevel"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.YearLevel = year
		}
	}
	if semStr := ctx.Query("semester"); semStr != "" {
		if sem, err := strconv.Atoi(semStr); err == nil {
			filter.Semester = sem
		}
	}

	modules, err := c.moduleService.GetModules(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, modules)
}

// GetModuleByID retrieves a module by ID
// @Summary Get module details
// @Description Retrieves a specific module by its ID, active or not
// @Tags modules
// @Accept json
// @Produce json
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Success 200 {object} models.Module "Module retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid module ID format"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules/{id} [get]
func (c *ModuleController) GetModuleByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid module ID")
		errorDetail = errorDetail.WithDetails("Module ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	module, err := c.moduleService.GetModuleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, module)
}

// CreateModule handles module creation
// @Summary Create a new module
// @Description Creates a new active module under an existing programme
// @Tags modules
// @Accept json
// @Produce json
// @Param request body dto.CreateModuleRequest true "Module information"
// @Success 201 {object} models.Module "Module created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Programme not found"
// @Failure 409 {object} dto.ErrorResponse "Module code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules [post]
func (c *ModuleController) CreateModule(ctx *gin.Context) {
	var req dto.CreateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid module data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	module := &models.Module{
		Code:            req.Code,
		Title:           req.Title,
		Description:     req.Description,
		Credits:         req.Credits,
		YearLevel:       req.YearLevel,
		SemesterOffered: req.SemesterOffered,
		ProgrammeID:     req.ProgrammeID,
	}

	created, err := c.moduleService.CreateModule(ctx, module)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateModule updates an existing module
// @Summary Update a module
// @Description Updates an existing module with new information
// @Tags modules
// @Accept json
// @Produce json
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Param request body dto.UpdateModuleRequest true "Updated module information"
// @Success 200 {object} models.Module "Module updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Module or programme not found"
// @Failure 409 {object} dto.ErrorResponse "Module code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules/{id} [put]
func (c *ModuleController) UpdateModule(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid module ID")
		errorDetail = errorDetail.WithDetails("Module ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid module data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Fetch the current row so an omitted activeFlag keeps its value
	current, err := c.moduleService.GetModuleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	module := &models.Module{
		ID:              id,
		Code:            req.Code,
		Title:           req.Title,
		Description:     req.Description,
		Credits:         req.Credits,
		YearLevel:       req.YearLevel,
		SemesterOffered: req.SemesterOffered,
		ProgrammeID:     req.ProgrammeID,
		ActiveFlag:      current.ActiveFlag,
	}
	if req.ActiveFlag != nil {
		module.ActiveFlag = *req.ActiveFlag
	}

	updated, err := c.moduleService.UpdateModule(ctx, module)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeactivateModule soft-deletes a module
// @Summary Deactivate a module
// @Description Marks a module inactive. Existing enrolments are kept.
// @Tags modules
// @Accept json
// @Produce json
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Module deactivated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid module ID format"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules/{id} [delete]
func (c *ModuleController) DeactivateModule(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid module ID")
		errorDetail = errorDetail.WithDetails("Module ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.moduleService.DeactivateModule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Module deactivated successfully"})
}
