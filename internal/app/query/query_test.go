package query

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/teachers?"+rawQuery, nil)
	return c
}

func TestParseListSpecPagination(t *testing.T) {
	tests := []struct {
		name       string
		rawQuery   string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "no parameters", rawQuery: "", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "explicit page and limit", rawQuery: "page=3&limit=5", wantPage: 3, wantLimit: 5, wantOffset: 10},
		{name: "non-numeric limit falls back", rawQuery: "limit=abc", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "zero limit falls back", rawQuery: "limit=0", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "negative limit falls back", rawQuery: "limit=-4", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "non-numeric page falls back", rawQuery: "page=first", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "zero page falls back", rawQuery: "page=0&limit=7", wantPage: 1, wantLimit: 7, wantOffset: 0},
		{name: "large limit is not capped", rawQuery: "limit=5000", wantPage: 1, wantLimit: 5000, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseListSpec(newTestContext(t, tt.rawQuery), TeacherIncludes)

			require.Equal(t, tt.wantPage, spec.Page)
			require.Equal(t, tt.wantLimit, spec.Limit)
			require.Equal(t, tt.wantOffset, spec.Offset)
		})
	}
}

func TestParseListSpecSort(t *testing.T) {
	tests := []struct {
		name      string
		rawQuery  string
		wantOrder SortDirection
	}{
		{name: "default is ascending", rawQuery: "", wantOrder: SortAsc},
		{name: "asc stays ascending", rawQuery: "sort=asc", wantOrder: SortAsc},
		{name: "desc flips direction", rawQuery: "sort=desc", wantOrder: SortDesc},
		{name: "uppercase DESC is not recognized", rawQuery: "sort=DESC", wantOrder: SortAsc},
		{name: "unknown value stays ascending", rawQuery: "sort=newest", wantOrder: SortAsc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseListSpec(newTestContext(t, tt.rawQuery), TeacherIncludes)
			require.Equal(t, tt.wantOrder, spec.Order)
		})
	}
}

func TestParseListSpecIncludes(t *testing.T) {
	t.Run("teacher list has no default includes", func(t *testing.T) {
		spec := ParseListSpec(newTestContext(t, ""), TeacherIncludes)
		require.Empty(t, spec.Includes)
		require.False(t, spec.Has(RelationCourses))
	})

	t.Run("student list always includes the course", func(t *testing.T) {
		spec := ParseListSpec(newTestContext(t, ""), StudentIncludes)
		require.True(t, spec.Has(RelationCourse))
	})

	t.Run("populate token resolves to a root include", func(t *testing.T) {
		spec := ParseListSpec(newTestContext(t, "populate=CourseId"), TeacherIncludes)
		require.True(t, spec.Has(RelationCourses))
		require.Nil(t, spec.Include(RelationCourses).Children)
	})
}
