package models

import "time"

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	Name       string    `json:"name" db:"name" example:"Alan Turing"`
	Department string    `json:"department" db:"department" example:"Computer Science"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"` // Courses taught by this teacher
}
