package dto

// CreateCourseRequest is the body of POST /courses.
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required" example:"Algorithms"`
	Description *string `json:"description,omitempty"`
	TeacherID   int64   `json:"teacherId" binding:"required" example:"1"`
}

// UpdateCourseRequest is the body of PUT /courses/:id. Absent fields are
// left untouched.
type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	TeacherID   *int64  `json:"teacherId,omitempty"`
}
