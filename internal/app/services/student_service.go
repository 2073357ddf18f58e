package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/app/repositories"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

// StudentList bundles a student page with its total match count.
type StudentList struct {
	Students []*models.Student
	Total    int64
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetStudents(ctx context.Context, filter repositories.StudentFilter, offset, limit uint64) (*StudentList, error)
	UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo   *repositories.StudentRepository
	programmeRepo *repositories.ProgrammeRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, programmeRepo *repositories.ProgrammeRepository) StudentService {
	return &studentServiceImpl{
		studentRepo:   studentRepo,
		programmeRepo: programmeRepo,
	}
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.StudentNo) == "" {
		return fmt.Errorf("%w: studentNo cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.FirstName) == "" {
		return fmt.Errorf("%w: firstName cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: lastName cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	if !models.ValidStudentStatus(string(student.Status)) {
		return fmt.Errorf("%w: invalid student status '%s'", apperrors.ErrValidationFailed, student.Status)
	}

	return nil
}

// CreateStudent registers a new student on an existing programme.
// Status defaults to active when not supplied.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student != nil && student.Status == "" {
		student.Status = models.StudentActive
	}

	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	if _, err := s.programmeRepo.GetByID(ctx, student.ProgrammeID); err != nil {
		return nil, err
	}

	student.Email = strings.ToLower(strings.TrimSpace(student.Email))

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, id)
}

// GetStudentByID retrieves a student by ID with the programme expanded
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetStudents retrieves one page of students matching the filter plus
// the total match count for pagination.
func (s *studentServiceImpl) GetStudents(ctx context.Context, filter repositories.StudentFilter, offset, limit uint64) (*StudentList, error) {
	students, err := s.studentRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.studentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &StudentList{Students: students, Total: total}, nil
}

// UpdateStudent updates an existing student. StudentNo, IDNumber and
// IntakeYear are immutable and ignored by the repository.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	if _, err := s.programmeRepo.GetByID(ctx, student.ProgrammeID); err != nil {
		return nil, err
	}

	student.Email = strings.ToLower(strings.TrimSpace(student.Email))

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, student.ID)
}
