package query

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is applied when the limit parameter is absent or not a
	// positive integer.
	DefaultLimit = 10
	// DefaultPage is the first page; pages are 1-based.
	DefaultPage = 1
)

// SortDirection is the direction applied to the creation-time ordering key.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ListSpec is the normalized fetch specification for a list endpoint.
type ListSpec struct {
	Page     int
	Limit    int
	Offset   int
	Order    SortDirection
	Includes []*IncludeNode
}

// Has reports whether rel is a root include of the spec.
func (s ListSpec) Has(rel Relation) bool {
	return FindInclude(s.Includes, rel) != nil
}

// Include returns the root include node for rel, or nil.
func (s ListSpec) Include(rel Relation) *IncludeNode {
	return FindInclude(s.Includes, rel)
}

// ParseListSpec translates the raw page/limit/sort/populate query parameters
// into a ListSpec using the resource's include mapping.
func ParseListSpec(c *gin.Context, mapping IncludeMapping) ListSpec {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	// Only the exact literal "desc" flips the direction.
	order := SortAsc
	if c.Query("sort") == "desc" {
		order = SortDesc
	}

	return ListSpec{
		Page:     page,
		Limit:    limit,
		Offset:   (page - 1) * limit,
		Order:    order,
		Includes: BuildIncludeTree(mapping, c.Query("populate")),
	}
}
