package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Visall666/school-api/internal/app/models"
	"github.com/Visall666/school-api/internal/app/models/dto"
	"github.com/Visall666/school-api/internal/app/query"
	"github.com/Visall666/school-api/internal/pkg/apperrors"
)

type fakeStudentService struct {
	students []*models.Student
	total    int64
	lastSpec query.ListSpec
}

func (f *fakeStudentService) CreateStudent(_ context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: 1, Name: req.Name, Email: req.Email, Year: req.Year, CourseID: req.CourseID}, nil
}

func (f *fakeStudentService) GetAllStudents(_ context.Context, spec query.ListSpec) ([]*models.Student, int64, error) {
	f.lastSpec = spec
	return f.students, f.total, nil
}

func (f *fakeStudentService) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	for _, student := range f.students {
		if student.ID == id {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentService) UpdateStudent(_ context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := f.GetStudentByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.CourseID != nil {
		student.CourseID = req.CourseID
	}
	return student, nil
}

func (f *fakeStudentService) DeleteStudent(_ context.Context, id int64) error {
	_, err := f.GetStudentByID(context.Background(), id)
	return err
}

func newStudentTestRouter(svc *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	controller := NewStudentController(svc)
	router.POST("/students", controller.CreateStudent)
	router.GET("/students", controller.GetAllStudents)
	router.GET("/students/:id", controller.GetStudentByID)
	router.PUT("/students/:id", controller.UpdateStudent)
	router.DELETE("/students/:id", controller.DeleteStudent)
	return router
}

func TestGetAllStudentsIncludesCourseByDefault(t *testing.T) {
	svc := &fakeStudentService{total: 1}
	router := newStudentTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, svc.lastSpec.Has(query.RelationCourse))
}

func TestGetAllStudentsTeacherIdNestsUnderCourse(t *testing.T) {
	svc := &fakeStudentService{}
	router := newStudentTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students?populate=TeacherId", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	course := svc.lastSpec.Include(query.RelationCourse)
	require.NotNil(t, course)
	require.NotNil(t, query.FindInclude(course.Children, query.RelationTeacher))
}

func TestCreateStudentWithoutCourse(t *testing.T) {
	router := newStudentTestRouter(&fakeStudentService{})

	body := bytes.NewBufferString(`{"name":"Ada Lovelace","email":"ada@school.edu","year":2}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var student models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &student))
	require.Nil(t, student.CourseID)
}

func TestUpdateStudentCourseAssignment(t *testing.T) {
	svc := &fakeStudentService{
		students: []*models.Student{{ID: 1, Name: "Ada Lovelace", Email: "ada@school.edu", Year: 2}},
	}
	router := newStudentTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/students/1", bytes.NewBufferString(`{"courseId":5}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var student models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &student))
	require.NotNil(t, student.CourseID)
	require.EqualValues(t, 5, *student.CourseID)
	require.Equal(t, "Ada Lovelace", student.Name)
}

func TestDeleteStudentNotFound(t *testing.T) {
	router := newStudentTestRouter(&fakeStudentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/students/123", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
