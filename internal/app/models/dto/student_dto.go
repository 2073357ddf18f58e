package dto

// CreateStudentRequest represents student admission data.
type CreateStudentRequest struct {
	StudentNo   string  `json:"studentNo" binding:"required"`
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	IDNumber    string  `json:"idNumber" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Mobile      *string `json:"mobile"`
	ProgrammeID int64   `json:"programmeId" binding:"required"`
	IntakeYear  int     `json:"intakeYear" binding:"required,gte=1900"`
	Status      string  `json:"status" binding:"omitempty,oneof=active graduated suspended withdrawn"`
}

// UpdateStudentRequest represents student update data, including
// status transitions (active -> graduated and the like).
type UpdateStudentRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Mobile      *string `json:"mobile"`
	ProgrammeID int64   `json:"programmeId" binding:"required"`
	Status      string  `json:"status" binding:"required,oneof=active graduated suspended withdrawn"`
}
