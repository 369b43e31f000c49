package dto

// CreateStudentRequest is the body of POST /students.
type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required" example:"Ada Lovelace"`
	Email    string `json:"email" binding:"required,email" example:"ada@school.edu"`
	Year     int    `json:"year" example:"2"`
	CourseID *int64 `json:"courseId,omitempty" example:"1"`
}

// UpdateStudentRequest is the body of PUT /students/:id. Absent fields are
// left untouched.
type UpdateStudentRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Year     *int    `json:"year,omitempty"`
	CourseID *int64  `json:"courseId,omitempty"`
}
