package dto

// CreateModuleRequest represents module creation data.
// YearLevel is not checked against the owning programme's duration;
// the source system never enforced that bound and we keep its behaviour.
type CreateModuleRequest struct {
	Code            string  `json:"code" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Description     *string `json:"description"`
	Credits         int     `json:"credits" binding:"required,gt=0"`
	YearLevel       int     `json:"yearLevel" binding:"required,gte=1"`
	SemesterOffered int     `json:"semesterOffered" binding:"required,oneof=1 2"`
	ProgrammeID     int64   `json:"programmeId" binding:"required"`
}

// UpdateModuleRequest represents module update data.
type UpdateModuleRequest struct {
	Code            string  `json:"code" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Description     *string `json:"description"`
	Credits         int     `json:"credits" binding:"required,gt=0"`
	YearLevel       int     `json:"yearLevel" binding:"required,gte=1"`
	SemesterOffered int     `json:"semesterOffered" binding:"required,oneof=1 2"`
	ProgrammeID     int64   `json:"programmeId" binding:"required"`
	ActiveFlag      *bool   `json:"activeFlag"`
}
