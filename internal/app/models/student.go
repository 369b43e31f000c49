package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Ada Lovelace"`
	Email     string    `json:"email" db:"email" example:"ada@school.edu"`
	Year      int       `json:"year" db:"year" example:"2"` // Year of study
	CourseID  *int64    `json:"courseId,omitempty" db:"course_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"` // Course the student is enrolled in
}
