package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/app/repositories"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

// EnrolmentService defines the interface for enrolment-related operations
type EnrolmentService interface {
	CreateEnrolment(ctx context.Context, enrolment *models.Enrolment) (*models.Enrolment, error)
	GetEnrolmentByID(ctx context.Context, id int64) (*models.Enrolment, error)
	GetEnrolments(ctx context.Context, filter repositories.EnrolmentFilter) ([]*models.Enrolment, error)
	UpdateEnrolment(ctx context.Context, enrolment *models.Enrolment) (*models.Enrolment, error)
}

// enrolmentServiceImpl implements the EnrolmentService interface
type enrolmentServiceImpl struct {
	enrolmentRepo *repositories.EnrolmentRepository
	studentRepo   *repositories.StudentRepository
	moduleRepo    *repositories.ModuleRepository
}

// NewEnrolmentService creates a new enrolment service instance
func NewEnrolmentService(enrolmentRepo *repositories.EnrolmentRepository, studentRepo *repositories.StudentRepository, moduleRepo *repositories.ModuleRepository) EnrolmentService {
	return &enrolmentServiceImpl{
		enrolmentRepo: enrolmentRepo,
		studentRepo:   studentRepo,
		moduleRepo:    moduleRepo,
	}
}

// validateEnrolment validates enrolment data before database operations
func (s *enrolmentServiceImpl) validateEnrolment(enrolment *models.Enrolment) error {
	if enrolment == nil {
		return fmt.Errorf("%w: enrolment is nil", apperrors.ErrValidationFailed)
	}

	if enrolment.AcademicYear < 2000 || enrolment.AcademicYear > time.Now().Year()+1 {
		return fmt.Errorf("%w: academicYear %d is out of range", apperrors.ErrValidationFailed, enrolment.AcademicYear)
	}

	if enrolment.Semester != 1 && enrolment.Semester != 2 {
		return fmt.Errorf("%w: semester must be 1 or 2", apperrors.ErrValidationFailed)
	}

	if !models.ValidEnrolmentStatus(string(enrolment.Status)) {
		return fmt.Errorf("%w: invalid enrolment status '%s'", apperrors.ErrValidationFailed, enrolment.Status)
	}

	if enrolment.FinalMark != nil && (*enrolment.FinalMark < 0 || *enrolment.FinalMark > 100) {
		return fmt.Errorf("%w: finalMark must be between 0 and 100", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateEnrolment enrols a student in a module for one academic year and
// semester. Status defaults to not-started when not supplied.
func (s *enrolmentServiceImpl) CreateEnrolment(ctx context.Context, enrolment *models.Enrolment) (*models.Enrolment, error) {
	if enrolment != nil && enrolment.Status == "" {
		enrolment.Status = models.EnrolmentNotStarted
	}

	if err := s.validateEnrolment(enrolment); err != nil {
		return nil, err
	}

	if _, err := s.studentRepo.GetByID(ctx, enrolment.StudentID); err != nil {
		return nil, err
	}

	if _, err := s.moduleRepo.GetByID(ctx, enrolment.ModuleID); err != nil {
		return nil, err
	}

	id, err := s.enrolmentRepo.Create(ctx, enrolment)
	if err != nil {
		return nil, err
	}

	return s.enrolmentRepo.GetByID(ctx, id)
}

// GetEnrolmentByID retrieves an enrolment by ID with the student and
// module summaries expanded
func (s *enrolmentServiceImpl) GetEnrolmentByID(ctx context.Context, id int64) (*models.Enrolment, error) {
	return s.enrolmentRepo.GetByID(ctx, id)
}

// GetEnrolments retrieves enrolments matching the filter
func (s *enrolmentServiceImpl) GetEnrolments(ctx context.Context, filter repositories.EnrolmentFilter) ([]*models.Enrolment, error) {
	return s.enrolmentRepo.List(ctx, filter)
}

// UpdateEnrolment updates the status and results of an existing
// enrolment. The student, module, year and semester are immutable.
func (s *enrolmentServiceImpl) UpdateEnrolment(ctx context.Context, enrolment *models.Enrolment) (*models.Enrolment, error) {
	if err := s.validateEnrolment(enrolment); err != nil {
		return nil, err
	}

	if err := s.enrolmentRepo.Update(ctx, enrolment); err != nil {
		return nil, err
	}

	return s.enrolmentRepo.GetByID(ctx, enrolment.ID)
}
