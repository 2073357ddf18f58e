package dto

import "github.com/mokoena/studenthub/internal/app/models"

// Pagination describes the position of a page within a paged list.
type Pagination struct {
	Current int   `json:"current" example:"1"`
	Pages   int   `json:"pages" example:"5"`
	Total   int64 `json:"total" example:"93"`
}

// StudentListResponse is the paged students listing.
type StudentListResponse struct {
	Students   []*models.Student `json:"students"`
	Pagination Pagination        `json:"pagination"`
}

// SuccessResponse represents a plain success message.
type SuccessResponse struct {
	Message string `json:"message" example:"deleted"`
}
