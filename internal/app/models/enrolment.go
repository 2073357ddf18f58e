package models

import "time"

// Enrolment joins a student to a module for one academic year and semester.
// FinalMark and LetterGrade are captured as results come in.
type Enrolment struct {
	ID           int64           `json:"id" db:"id"`
	StudentID    int64           `json:"studentId" db:"student_id"`
	ModuleID     int64           `json:"moduleId" db:"module_id"`
	AcademicYear int             `json:"academicYear" db:"academic_year"`
	Semester     int             `json:"semester" db:"semester"`
	Status       EnrolmentStatus `json:"status" db:"status"`
	FinalMark    *float64        `json:"finalMark,omitempty" db:"final_mark"`    // Nullable
	LetterGrade  *string         `json:"letterGrade,omitempty" db:"letter_grade"` // Nullable
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Module  *Module  `json:"module,omitempty"`
}
