package query

import "strings"

// Relation names a related entity that can be eager-loaded alongside a resource.
type Relation string

const (
	// RelationCourses is the set of courses taught by a teacher.
	RelationCourses Relation = "courses"
	// RelationCourse is the course a student is enrolled in.
	RelationCourse Relation = "course"
	// RelationStudents is the set of students enrolled in a course.
	RelationStudents Relation = "students"
	// RelationTeacher is the teacher of a course.
	RelationTeacher Relation = "teacher"
)

// IncludeNode is one node of an eager-load tree.
type IncludeNode struct {
	Relation Relation
	Children []*IncludeNode
}

// IncludeMapping declares, per resource, which populate tokens are recognized
// and what they load. Defaults are root relations that are always present,
// whether or not a populate parameter was sent.
type IncludeMapping struct {
	Defaults []Relation
	Tokens   map[string][]Relation // token -> path of relations from the root
}

// TeacherIncludes maps populate tokens for teacher listings. Courses are only
// included when a recognized token asks for them.
var TeacherIncludes = IncludeMapping{
	Tokens: map[string][]Relation{
		"CourseId":  {RelationCourses},
		"StudentId": {RelationCourses, RelationStudents},
	},
}

// StudentIncludes maps populate tokens for student listings. The course include
// is always present; populate can only nest the teacher inside it.
var StudentIncludes = IncludeMapping{
	Defaults: []Relation{RelationCourse},
	Tokens: map[string][]Relation{
		"CourseId":  {RelationCourse},
		"TeacherId": {RelationCourse, RelationTeacher},
	},
}

// CourseIncludes maps populate tokens for course listings.
var CourseIncludes = IncludeMapping{
	Tokens: map[string][]Relation{
		"TeacherId": {RelationTeacher},
		"StudentId": {RelationStudents},
	},
}

// BuildIncludeTree turns a raw comma-separated populate parameter into an
// eager-load tree. Tokens are trimmed, unrecognized tokens are ignored, and
// inserting the same path twice is idempotent, so token order does not affect
// the resulting tree shape.
func BuildIncludeTree(mapping IncludeMapping, populate string) []*IncludeNode {
	var roots []*IncludeNode

	for _, rel := range mapping.Defaults {
		roots = insertPath(roots, []Relation{rel})
	}

	if populate == "" {
		return roots
	}

	for _, token := range strings.Split(populate, ",") {
		token = strings.TrimSpace(token)
		path, ok := mapping.Tokens[token]
		if !ok {
			continue
		}
		roots = insertPath(roots, path)
	}

	return roots
}

// insertPath walks the tree along path, creating nodes that are missing.
func insertPath(roots []*IncludeNode, path []Relation) []*IncludeNode {
	if len(path) == 0 {
		return roots
	}

	node := FindInclude(roots, path[0])
	if node == nil {
		node = &IncludeNode{Relation: path[0]}
		roots = append(roots, node)
	}

	node.Children = insertPath(node.Children, path[1:])
	return roots
}

// FindInclude returns the node for rel among nodes, or nil.
func FindInclude(nodes []*IncludeNode, rel Relation) *IncludeNode {
	for _, n := range nodes {
		if n.Relation == rel {
			return n
		}
	}
	return nil
}
