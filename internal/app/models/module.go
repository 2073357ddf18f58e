package models

import "time"

// Module represents a taught module belonging to a programme.
// ActiveFlag is a soft-delete marker; inactive modules are hidden from
// list results but their enrolments remain.
type Module struct {
	ID              int64     `json:"id" db:"id"`
	Code            string    `json:"code" db:"code"`
	Title           string    `json:"title" db:"title"`
	Description     *string   `json:"description,omitempty" db:"description"` // Nullable
	Credits         int       `json:"credits" db:"credits"`
	YearLevel       int       `json:"yearLevel" db:"year_level"`
	SemesterOffered int       `json:"semesterOffered" db:"semester_offered"`
	ProgrammeID     int64     `json:"programmeId" db:"programme_id"`
	ActiveFlag      bool      `json:"activeFlag" db:"active_flag"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Programme *Programme `json:"programme,omitempty"`
}
