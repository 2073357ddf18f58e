package models

import "time"

// Student represents an admitted student. Students are never hard-deleted
// by normal flow; the status field tracks their lifecycle.
type Student struct {
	ID          int64         `json:"id" db:"id"`
	StudentNo   string        `json:"studentNo" db:"student_no"`
	FirstName   string        `json:"firstName" db:"first_name"`
	LastName    string        `json:"lastName" db:"last_name"`
	IDNumber    string        `json:"idNumber" db:"id_number"`
	Email       string        `json:"email" db:"email"`
	Mobile      *string       `json:"mobile,omitempty" db:"mobile"` // Nullable
	ProgrammeID int64         `json:"programmeId" db:"programme_id"`
	IntakeYear  int           `json:"intakeYear" db:"intake_year"`
	Status      StudentStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Programme *Programme `json:"programme,omitempty"`
}
