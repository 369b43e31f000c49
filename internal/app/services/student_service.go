package services

import (
	"context"

	"github.com/Visall666/school-api/internal/app/models"
	"github.com/Visall666/school-api/internal/app/models/dto"
	"github.com/Visall666/school-api/internal/app/query"
	"github.com/Visall666/school-api/internal/app/repositories"
)

// StudentService handles student business operations.
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetAllStudents(ctx context.Context, spec query.ListSpec) ([]*models.Student, int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		Name:     req.Name,
		Email:    req.Email,
		Year:     req.Year,
		CourseID: req.CourseID,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetAllStudents returns one page of students plus the unfiltered total count.
func (s *studentService) GetAllStudents(ctx context.Context, spec query.ListSpec) ([]*models.Student, int64, error) {
	total, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	students, err := s.studentRepo.GetAll(ctx, spec)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// UpdateStudent merges the request's present fields into the stored student.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.CourseID != nil {
		student.CourseID = req.CourseID
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, id)
}
