package models

import "time"

// Course represents a course taught by a teacher.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"` // Nullable
	TeacherID   int64     `json:"teacherId" db:"teacher_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Teacher  *Teacher   `json:"teacher,omitempty"`
	Students []*Student `json:"students,omitempty"`
}
