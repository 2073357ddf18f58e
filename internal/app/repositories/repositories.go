package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	FacultyRepository   *FacultyRepository
	ProgrammeRepository *ProgrammeRepository
	ModuleRepository    *ModuleRepository
	StudentRepository   *StudentRepository
	EnrolmentRepository *EnrolmentRepository
	AnalyticsRepository *AnalyticsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyRepository:   NewFacultyRepository(db),
		ProgrammeRepository: NewProgrammeRepository(db),
		ModuleRepository:    NewModuleRepository(db),
		StudentRepository:   NewStudentRepository(db),
		EnrolmentRepository: NewEnrolmentRepository(db),
		AnalyticsRepository: NewAnalyticsRepository(db),
	}
}
