package helpers

import (
	"math"

	"github.com/Visall666/school-api/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	DefaultPage     = 1 // Pages are 1-based
)

// NewListMeta creates the standard list metadata envelope.
// page is the 1-based page number, limit the requested page size.
func NewListMeta(totalItems int64, page, limit int) dto.ListMeta {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	return dto.ListMeta{
		TotalItems: totalItems,
		Page:       page,
		TotalPages: totalPages,
	}
}
