package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIncludeTree(t *testing.T) {
	t.Run("empty populate without defaults yields no tree", func(t *testing.T) {
		require.Empty(t, BuildIncludeTree(TeacherIncludes, ""))
	})

	t.Run("defaults are present without populate", func(t *testing.T) {
		tree := BuildIncludeTree(StudentIncludes, "")

		require.Len(t, tree, 1)
		require.Equal(t, RelationCourse, tree[0].Relation)
		require.Empty(t, tree[0].Children)
	})

	t.Run("token expands to nested path", func(t *testing.T) {
		tree := BuildIncludeTree(TeacherIncludes, "StudentId")

		require.Len(t, tree, 1)
		require.Equal(t, RelationCourses, tree[0].Relation)
		require.Len(t, tree[0].Children, 1)
		require.Equal(t, RelationStudents, tree[0].Children[0].Relation)
	})

	t.Run("token nests under an existing default", func(t *testing.T) {
		tree := BuildIncludeTree(StudentIncludes, "TeacherId")

		require.Len(t, tree, 1)
		require.Equal(t, RelationCourse, tree[0].Relation)
		require.Len(t, tree[0].Children, 1)
		require.Equal(t, RelationTeacher, tree[0].Children[0].Relation)
	})

	t.Run("unrecognized tokens are ignored", func(t *testing.T) {
		require.Empty(t, BuildIncludeTree(TeacherIncludes, "Foo,Bar,teacherid"))
	})

	t.Run("tokens are trimmed", func(t *testing.T) {
		tree := BuildIncludeTree(CourseIncludes, " TeacherId , StudentId ")

		require.Len(t, tree, 2)
		require.NotNil(t, FindInclude(tree, RelationTeacher))
		require.NotNil(t, FindInclude(tree, RelationStudents))
	})

	t.Run("repeated tokens are idempotent", func(t *testing.T) {
		tree := BuildIncludeTree(TeacherIncludes, "CourseId,CourseId,StudentId,StudentId")

		require.Len(t, tree, 1)
		require.Len(t, tree[0].Children, 1)
	})

	t.Run("token order does not change the tree shape", func(t *testing.T) {
		forward := BuildIncludeTree(TeacherIncludes, "CourseId,StudentId")
		backward := BuildIncludeTree(TeacherIncludes, "StudentId,CourseId")

		require.Equal(t, forward, backward)
	})
}

func TestFindInclude(t *testing.T) {
	tree := BuildIncludeTree(CourseIncludes, "TeacherId")

	require.NotNil(t, FindInclude(tree, RelationTeacher))
	require.Nil(t, FindInclude(tree, RelationStudents))
	require.Nil(t, FindInclude(nil, RelationTeacher))
}
