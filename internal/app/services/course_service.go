package services

import (
	"context"

	"github.com/Visall666/school-api/internal/app/models"
	"github.com/Visall666/school-api/internal/app/models/dto"
	"github.com/Visall666/school-api/internal/app/query"
	"github.com/Visall666/school-api/internal/app/repositories"
)

// CourseService handles course business operations.
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetAllCourses(ctx context.Context, spec query.ListSpec) ([]*models.Course, int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type courseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		TeacherID:   req.TeacherID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetAllCourses returns one page of courses plus the unfiltered total count.
func (s *courseService) GetAllCourses(ctx context.Context, spec query.ListSpec) ([]*models.Course, int64, error) {
	total, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	courses, err := s.courseRepo.GetAll(ctx, spec)
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// UpdateCourse merges the request's present fields into the stored course.
func (s *courseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.TeacherID != nil {
		course.TeacherID = *req.TeacherID
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, id)
}
