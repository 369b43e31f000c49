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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	q := `
		INSERT INTO courses (name, description, teacher_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, q, course.Name, course.Description, course.TeacherID).
		Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// Count returns the total number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// GetAll retrieves one page of courses ordered by creation time, resolving
// the spec's include tree on top of the page.
func (r *CourseRepository) GetAll(ctx context.Context, spec query.ListSpec) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "teacher_id", "created_at").
		From("courses").
		OrderBy("created_at " + string(spec.Order)).
		Limit(uint64(spec.Limit)).
		Offset(uint64(spec.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
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
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(courses) > 0 {
		if spec.Has(query.RelationTeacher) {
			if err := attachTeacher(ctx, r.db, courses); err != nil {
				return nil, err
			}
		}
		if spec.Has(query.RelationStudents) {
			if err := attachStudents(ctx, r.db, courses); err != nil {
				return nil, err
			}
		}
	}

	return courses, nil
}

// GetByID retrieves a course by ID, always including the course's teacher.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	q := `
		SELECT id, name, description, teacher_id, created_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, q, id).Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.TeacherID,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if err := attachTeacher(ctx, r.db, []*models.Course{&course}); err != nil {
		return nil, err
	}

	return &course, nil
}

// Update persists changed course fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	q := `
		UPDATE courses
		SET name = $1, description = $2, teacher_id = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, q,
		course.Name, course.Description, course.TeacherID, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
