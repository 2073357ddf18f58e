package models

import "time"

// Programme represents a programme of study offered by a faculty.
type Programme struct {
	ID            int64          `json:"id" db:"id"`
	Code          string         `json:"code" db:"code"`
	Name          string         `json:"name" db:"name"`
	FacultyID     int64          `json:"facultyId" db:"faculty_id"`
	Level         ProgrammeLevel `json:"level" db:"level"`
	TotalCredits  int            `json:"totalCredits" db:"total_credits"`
	DurationYears int            `json:"durationYears" db:"duration_years"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Faculty *Faculty `json:"faculty,omitempty"`
}
