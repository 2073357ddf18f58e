package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/app/repositories"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

// ProgrammeService defines the interface for programme-related operations
type ProgrammeService interface {
	CreateProgramme(ctx context.Context, programme *models.Programme) (*models.Programme, error)
	GetProgrammeByID(ctx context.Context, id int64) (*models.Programme, error)
	GetProgrammes(ctx context.Context, filter repositories.ProgrammeFilter) ([]*models.Programme, error)
	UpdateProgramme(ctx context.Context, programme *models.Programme) (*models.Programme, error)
}

// programmeServiceImpl implements the ProgrammeService interface
type programmeServiceImpl struct {
	programmeRepo *repositories.ProgrammeRepository
	facultyRepo   *repositories.FacultyRepository
}

// NewProgrammeService creates a new programme service instance
func NewProgrammeService(programmeRepo *repositories.ProgrammeRepository, facultyRepo *repositories.FacultyRepository) ProgrammeService {
	return &programmeServiceImpl{
		programmeRepo: programmeRepo,
		facultyRepo:   facultyRepo,
	}
}

// validateProgramme validates programme data before database operations
func (s *programmeServiceImpl) validateProgramme(programme *models.Programme) error {
	if programme == nil {
		return fmt.Errorf("%w: programme is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(programme.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(programme.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !models.ValidProgrammeLevel(string(programme.Level)) {
		return fmt.Errorf("%w: invalid programme level '%s'", apperrors.ErrValidationFailed, programme.Level)
	}

	if programme.TotalCredits <= 0 {
		return fmt.Errorf("%w: totalCredits must be positive", apperrors.ErrValidationFailed)
	}

	if programme.DurationYears <= 0 {
		return fmt.Errorf("%w: durationYears must be positive", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateProgramme creates a new programme under an existing faculty
func (s *programmeServiceImpl) CreateProgramme(ctx context.Context, programme *models.Programme) (*models.Programme, error) {
	if err := s.validateProgramme(programme); err != nil {
		return nil, err
	}

	// Verify the owning faculty exists
	if _, err := s.facultyRepo.GetByID(ctx, programme.FacultyID); err != nil {
		return nil, err
	}

	programme.Code = strings.ToUpper(strings.TrimSpace(programme.Code))
	programme.Name = strings.TrimSpace(programme.Name)

	id, err := s.programmeRepo.Create(ctx, programme)
	if err != nil {
		return nil, err
	}

	return s.programmeRepo.GetByID(ctx, id)
}

// GetProgrammeByID retrieves a programme by its ID with the faculty expanded
func (s *programmeServiceImpl) GetProgrammeByID(ctx context.Context, id int64) (*models.Programme, error) {
	return s.programmeRepo.GetByID(ctx, id)
}

// GetProgrammes retrieves programmes matching the filter
func (s *programmeServiceImpl) GetProgrammes(ctx context.Context, filter repositories.ProgrammeFilter) ([]*models.Programme, error) {
	return s.programmeRepo.List(ctx, filter)
}

// UpdateProgramme updates an existing programme
func (s *programmeServiceImpl) UpdateProgramme(ctx context.Context, programme *models.Programme) (*models.Programme, error) {
	if err := s.validateProgramme(programme); err != nil {
		return nil, err
	}

	if _, err := s.facultyRepo.GetByID(ctx, programme.FacultyID); err != nil {
		return nil, err
	}

	programme.Code = strings.ToUpper(strings.TrimSpace(programme.Code))
	programme.Name = strings.TrimSpace(programme.Name)

	if err := s.programmeRepo.Update(ctx, programme); err != nil {
		return nil, err
	}

	return s.programmeRepo.GetByID(ctx, programme.ID)
}
