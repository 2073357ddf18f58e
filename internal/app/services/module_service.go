package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/app/repositories"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

// ModuleService defines the interface for module-related operations
type ModuleService interface {
	CreateModule(ctx context.Context, module *models.Module) (*models.Module, error)
	GetModuleByID(ctx context.Context, id int64) (*models.Module, error)
	GetModules(ctx context.Context, filter repositories.ModuleFilter) ([]*models.Module, error)
	UpdateModule(ctx context.Context, module *models.Module) (*models.Module, error)
	DeactivateModule(ctx context.Context, id int64) error
}

// moduleServiceImpl implements the ModuleService interface
type moduleServiceImpl struct {
	moduleRepo    *repositories.ModuleRepository
	programmeRepo *repositories.ProgrammeRepository
}

// NewModuleService creates a new module service instance
func NewModuleService(moduleRepo *repositories.ModuleRepository, programmeRepo *repositories.ProgrammeRepository) ModuleService {
	return &moduleServiceImpl{
		moduleRepo:    moduleRepo,
		programmeRepo: programmeRepo,
	}
}

// validateModule validates module data before database operations
func (s *moduleServiceImpl) validateModule(module *models.Module) error {
	if module == nil {
		return fmt.Errorf("%w: module is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(module.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(module.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if module.Credits <= 0 {
		return fmt.Errorf("%w: credits must be positive", apperrors.ErrValidationFailed)
	}

	if module.YearLevel < 1 {
		return fmt.Errorf("%w: yearLevel must be at least 1", apperrors.ErrValidationFailed)
	}

	if module.SemesterOffered != 1 && module.SemesterOffered != 2 {
		return fmt.Errorf("%w: semesterOffered must be 1 or 2", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateModule creates a new module under an existing programme
func (s *moduleServiceImpl) CreateModule(ctx context.Context, module *models.Module) (*models.Module, error) {
	if err := s.validateModule(module); err != nil {
		return nil, err
	}

	// Verify the owning programme exists
	if _, err := s.programmeRepo.GetByID(ctx, module.ProgrammeID); err != nil {
		return nil, err
	}

	module.Code = strings.ToUpper(strings.TrimSpace(module.Code))
	module.Title = strings.TrimSpace(module.Title)
	module.ActiveFlag = true

	id, err := s.moduleRepo.Create(ctx, module)
	if err != nil {
		return nil, err
	}

	return s.moduleRepo.GetByID(ctx, id)
}

// GetModuleByID retrieves a module by its ID, active or not
func (s *moduleServiceImpl) GetModuleByID(ctx context.Context, id int64) (*models.Module, error) {
	return s.moduleRepo.GetByID(ctx, id)
}

// GetModules retrieves active modules matching the filter
func (s *moduleServiceImpl) GetModules(ctx context.Context, filter repositories.ModuleFilter) ([]*models.Module, error) {
	return s.moduleRepo.List(ctx, filter)
}

// UpdateModule updates an existing module
func (s *moduleServiceImpl) UpdateModule(ctx context.Context, module *models.Module) (*models.Module, error) {
	if err := s.validateModule(module); err != nil {
		return nil, err
	}

	if _, err := s.programmeRepo.GetByID(ctx, module.ProgrammeID); err != nil {
		return nil, err
	}

	module.Code = strings.ToUpper(strings.TrimSpace(module.Code))
	module.Title = strings.TrimSpace(module.Title)

	if err := s.moduleRepo.Update(ctx, module); err != nil {
		return nil, err
	}

	return s.moduleRepo.GetByID(ctx, module.ID)
}

// DeactivateModule soft-deletes a module. Its enrolments are kept.
func (s *moduleServiceImpl) DeactivateModule(ctx context.Context, id int64) error {
	return s.moduleRepo.Deactivate(ctx, id)
}
