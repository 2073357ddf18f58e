package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mokoena/studenthub/internal/app/models/dto"
)

const (
	DefaultPage  = 1 // page numbers are 1-based
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseListParams extracts and validates page/limit query parameters,
// falling back to the documented defaults on anything invalid.
func ParseListParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return page, limit
}

// CalculateOffsetLimit converts a 1-based page number to a SQL offset.
func CalculateOffsetLimit(page, limit int) (offset uint64, lim uint64) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * limit), uint64(limit)
}

// NewPagination builds the pagination block returned alongside paged lists.
func NewPagination(total int64, page, limit int) dto.Pagination {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
	}
}
