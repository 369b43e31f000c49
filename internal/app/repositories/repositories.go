package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency injection.
type Repositories struct {
	UserRepository    *UserRepository
	TeacherRepository *TeacherRepository
	StudentRepository *StudentRepository
	CourseRepository  *CourseRepository
}

// NewRepositories creates all repositories sharing a single connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		TeacherRepository: NewTeacherRepository(db),
		StudentRepository: NewStudentRepository(db),
		CourseRepository:  NewCourseRepository(db),
	}
}
