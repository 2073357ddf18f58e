package dto

// CreateFacultyRequest represents faculty creation data.
type CreateFacultyRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// UpdateFacultyRequest represents faculty update data.
type UpdateFacultyRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}
