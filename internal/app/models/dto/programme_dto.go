package dto

// CreateProgrammeRequest represents programme creation data.
type CreateProgrammeRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	FacultyID     int64  `json:"facultyId" binding:"required"`
	Level         string `json:"level" binding:"required,oneof=certificate diploma degree masters phd"`
	TotalCredits  int    `json:"totalCredits" binding:"required,gt=0"`
	DurationYears int    `json:"durationYears" binding:"required,gt=0"`
}

// UpdateProgrammeRequest represents programme update data.
type UpdateProgrammeRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	FacultyID     int64  `json:"facultyId" binding:"required"`
	Level         string `json:"level" binding:"required,oneof=certificate diploma degree masters phd"`
	TotalCredits  int    `json:"totalCredits" binding:"required,gt=0"`
	DurationYears int    `json:"durationYears" binding:"required,gt=0"`
}
