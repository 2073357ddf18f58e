package dto

// CreateEnrolmentRequest registers a student for a module in a period.
type CreateEnrolmentRequest struct {
	StudentID    int64 `json:"studentId" binding:"required"`
	ModuleID     int64 `json:"moduleId" binding:"required"`
	AcademicYear int   `json:"academicYear" binding:"required,gte=1900"`
	Semester     int   `json:"semester" binding:"required,oneof=1 2"`
}

// UpdateEnrolmentRequest captures progress and marks for an enrolment.
type UpdateEnrolmentRequest struct {
	Status      string   `json:"status" binding:"required,oneof=not-started in-progress completed withdrawn"`
	FinalMark   *float64 `json:"finalMark" binding:"omitempty,gte=0,lte=100"`
	LetterGrade *string  `json:"letterGrade"`
}
