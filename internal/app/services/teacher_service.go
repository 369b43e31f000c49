package services

import (
	"context"

	"github.com/Visall666/school-api/internal/app/models"
	"github.com/Visall666/school-api/internal/app/models/dto"
	"github.com/Visall666/school-api/internal/app/query"
	"github.com/Visall666/school-api/internal/app/repositories"
)

// TeacherService handles teacher business operations.
type TeacherService interface {
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context, spec query.ListSpec) ([]*models.Teacher, int64, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

type teacherService struct {
	teacherRepo *repositories.TeacherRepository
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teacherRepo *repositories.TeacherRepository) TeacherService {
	return &teacherService{teacherRepo: teacherRepo}
}

func (s *teacherService) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	teacher := &models.Teacher{
		Name:       req.Name,
		Department: req.Department,
	}

	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

// GetAllTeachers returns one page of teachers plus the unfiltered total count.
// The count and the page are separate queries and are not guaranteed mutually
// consistent under concurrent writes.
func (s *teacherService) GetAllTeachers(ctx context.Context, spec query.ListSpec) ([]*models.Teacher, int64, error) {
	total, err := s.teacherRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	teachers, err := s.teacherRepo.GetAll(ctx, spec)
	if err != nil {
		return nil, 0, err
	}

	return teachers, total, nil
}

func (s *teacherService) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// UpdateTeacher merges the request's present fields into the stored teacher.
func (s *teacherService) UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Department != nil {
		teacher.Department = *req.Department
	}

	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

func (s *teacherService) DeleteTeacher(ctx context.Context, id int64) error {
	if _, err := s.teacherRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.teacherRepo.Delete(ctx, id)
}
