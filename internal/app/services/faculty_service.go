package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/app/repositories"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo *repositories.FacultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo *repositories.FacultyRepository) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
	}
}

// validateFaculty validates faculty data before database operations
func (s *facultyServiceImpl) validateFaculty(faculty *models.Faculty) error {
	if faculty == nil {
		return fmt.Errorf("%w: faculty is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(faculty.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(faculty.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateFaculty creates a new faculty
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	if err := s.validateFaculty(faculty); err != nil {
		return nil, err
	}

	faculty.Code = strings.ToUpper(strings.TrimSpace(faculty.Code))
	faculty.Name = strings.TrimSpace(faculty.Name)

	id, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		return nil, err
	}

	return s.facultyRepo.GetByID(ctx, id)
}

// GetFacultyByID retrieves a faculty by its ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

// GetAllFaculties retrieves all faculties ordered by name
func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	return s.facultyRepo.GetAll(ctx)
}

// UpdateFaculty updates an existing faculty
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	if err := s.validateFaculty(faculty); err != nil {
		return nil, err
	}

	faculty.Code = strings.ToUpper(strings.TrimSpace(faculty.Code))
	faculty.Name = strings.TrimSpace(faculty.Name)

	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return nil, err
	}

	return s.facultyRepo.GetByID(ctx, faculty.ID)
}

// DeleteFaculty deletes a faculty when no programmes reference it
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	return s.facultyRepo.Delete(ctx, id)
}
