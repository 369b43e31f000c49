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

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	q := `
		INSERT INTO teachers (name, department)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, q, teacher.Name, teacher.Department).
		Scan(&teacher.ID, &teacher.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// Count returns the total number of teachers
func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return total, nil
}

// GetAll retrieves one page of teachers ordered by creation time, resolving
// the spec's include tree on top of the page.
func (r *TeacherRepository) GetAll(ctx context.Context, spec query.ListSpec) ([]*models.Teacher, error) {
	sql, args, err := r.sb.Select("id", "name", "department", "created_at").
		From("teachers").
		OrderBy("created_at " + string(spec.Order)).
		Limit(uint64(spec.Limit)).
		Offset(uint64(spec.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.Name,
			&teacher.Department,
			&teacher.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, &teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if node := spec.Include(query.RelationCourses); node != nil && len(teachers) > 0 {
		withStudents := query.FindInclude(node.Children, query.RelationStudents) != nil
		if err := r.attachCourses(ctx, teachers, withStudents); err != nil {
			return nil, err
		}
	}

	return teachers, nil
}

// GetByID retrieves a teacher by ID, always including the teacher's courses.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	q := `
		SELECT id, name, department, created_at
		FROM teachers
		WHERE id = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, q, id).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.Department,
		&teacher.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	if err := r.attachCourses(ctx, []*models.Teacher{&teacher}, false); err != nil {
		return nil, err
	}

	return &teacher, nil
}

// Update persists changed teacher fields
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	q := `
		UPDATE teachers
		SET name = $1, department = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, q, teacher.Name, teacher.Department, teacher.ID)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete removes a teacher by ID
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// attachCourses loads the courses for the given teachers in one query and,
// when withStudents is set, nests each course's students as well.
func (r *TeacherRepository) attachCourses(ctx context.Context, teachers []*models.Teacher, withStudents bool) error {
	ids := make([]int64, 0, len(teachers))
	byID := make(map[int64]*models.Teacher, len(teachers))
	for _, t := range teachers {
		ids = append(ids, t.ID)
		byID[t.ID] = t
	}

	q := `
		SELECT id, name, description, teacher_id, created_at
		FROM courses
		WHERE teacher_id = ANY($1)
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return fmt.Errorf("error querying teacher courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
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
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, course := range courses {
		if teacher, ok := byID[course.TeacherID]; ok {
			teacher.Courses = append(teacher.Courses, course)
		}
	}

	if withStudents && len(courses) > 0 {
		if err := attachStudents(ctx, r.db, courses); err != nil {
			return err
		}
	}

	return nil
}

// attachStudents loads the students for the given courses in one query and
// nests them under their course. Shared between the teacher and course
// repositories.
func attachStudents(ctx context.Context, db *pgxpool.Pool, courses []*models.Course) error {
	ids := make([]int64, 0, len(courses))
	byID := make(map[int64]*models.Course, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}

	q := `
		SELECT id, name, email, year, course_id, created_at
		FROM students
		WHERE course_id = ANY($1)
		ORDER BY created_at
	`

	rows, err := db.Query(ctx, q, ids)
	if err != nil {
		return fmt.Errorf("error querying course students: %w", err)
	}
	defer rows.Close()

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
			return fmt.Errorf("error scanning student row: %w", err)
		}
		if student.CourseID != nil {
			if course, ok := byID[*student.CourseID]; ok {
				course.Students = append(course.Students, &student)
			}
		}
	}

	return rows.Err()
}
