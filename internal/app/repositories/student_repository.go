package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Visall666/school-api/internal/app/models"
	"github.com/Visall666/school-api/internal/app/query"
	"github.com/Visall666/school-api/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	q := `
		INSERT INTO students (name, email, year, course_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, q, student.Name, student.Email, student.Year, student.CourseID).
		Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return total, nil
}

// GetAll retrieves one page of students ordered by creation time. The spec's
// include tree always carries the course relation for student listings and may
// nest the course's teacher inside it.
func (r *StudentRepository) GetAll(ctx context.Context, spec query.ListSpec) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "year", "course_id", "created_at").
		From("students").
		OrderBy("created_at " + string(spec.Order)).
		Limit(uint64(spec.Limit)).
		Offset(uint64(spec.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Year,
			&student.CourseID,
			&student.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if node := spec.Include(query.RelationCourse); node != nil && len(students) > 0 {
		withTeacher := query.FindInclude(node.Children, query.RelationTeacher) != nil
		if err := r.attachCourse(ctx, students, withTeacher); err != nil {
			return nil, err
		}
	}

	return students, nil
}

// GetByID retrieves a student by ID, always including the student's course.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	q := `
		SELECT id, name, email, year, course_id, created_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, q, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Year,
		&student.CourseID,
		&student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if err := r.attachCourse(ctx, []*models.Student{&student}, false); err != nil {
		return nil, err
	}

	return &student, nil
}

// Update persists changed student fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	q := `
		UPDATE students
		SET name = $1, email = $2, year = $3, course_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, q,
		student.Name, student.Email, student.Year, student.CourseID, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// attachCourse loads each student's course in one query and, when withTeacher
// is set, nests the course's teacher as well. Students without a course are
// left untouched.
func (r *StudentRepository) attachCourse(ctx context.Context, students []*models.Student, withTeacher bool) error {
	ids := make([]int64, 0, len(students))
	for _, s := range students {
		if s.CourseID != nil {
			ids = append(ids, *s.CourseID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	q := `
		SELECT id, name, description, teacher_id, created_at
		FROM courses
		WHERE id = ANY($1)
	`

	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return fmt.Errorf("error querying student courses: %w", err)
	}
	defer rows.Close()

	coursesByID := make(map[int64]*models.Course)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Description,
			&course.TeacherID,
			&course.CreatedAt,
		); err != nil {
			return fmt.Errorf("error scanning course row: %w", err)
		}
		coursesByID[course.ID] = &course
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if withTeacher && len(coursesByID) > 0 {
		courses := make([]*models.Course, 0, len(coursesByID))
		for _, c := range coursesByID {
			courses = append(courses, c)
		}
		if err := attachTeacher(ctx, r.db, courses); err != nil {
			return err
		}
	}

	for _, student := range students {
		if student.CourseID != nil {
			student.Course = coursesByID[*student.CourseID]
		}
	}

	return nil
}

// attachTeacher loads the teacher for each course in one query. Shared between
// the student and course repositories.
func attachTeacher(ctx context.Context, db *pgxpool.Pool, courses []*models.Course) error {
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.TeacherID)
	}

	q := `
		SELECT id, name, department, created_at
		FROM teachers
		WHERE id = ANY($1)
	`

	rows, err := db.Query(ctx, q, ids)
	if err != nil {
		return fmt.Errorf("error querying course teachers: %w", err)
	}
	defer rows.Close()

	teachersByID := make(map[int64]*models.Teacher)
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.Name,
			&teacher.Department,
			&teacher.CreatedAt,
		); err != nil {
			return fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachersByID[teacher.ID] = &teacher
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, course := range courses {
		course.Teacher = teachersByID[course.TeacherID]
	}

	return nil
}
