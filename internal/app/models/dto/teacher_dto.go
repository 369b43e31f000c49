package dto

// CreateTeacherRequest is the body of POST /teachers.
type CreateTeacherRequest struct {
	Name       string `json:"name" binding:"required" example:"Alan Turing"`
	Department string `json:"department" binding:"required" example:"Computer Science"`
}

// UpdateTeacherRequest is the body of PUT /teachers/:id. Absent fields are
// left untouched.
type UpdateTeacherRequest struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
}
