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

// fakeTeacherService records calls and serves canned responses.
type fakeTeacherService struct {
	teachers  []*models.Teacher
	total     int64
	err       error
	lastSpec  query.ListSpec
	deletedID int64
}

func (f *fakeTeacherService) CreateTeacher(_ context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Teacher{ID: 1, Name: req.Name, Department: req.Department}, nil
}

func (f *fakeTeacherService) GetAllTeachers(_ context.Context, spec query.ListSpec) ([]*models.Teacher, int64, error) {
	f.lastSpec = spec
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.teachers, f.total, nil
}

func (f *fakeTeacherService) GetTeacherByID(_ context.Context, id int64) (*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, teacher := range f.teachers {
		if teacher.ID == id {
			return teacher, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (f *fakeTeacherService) UpdateTeacher(_ context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := f.GetTeacherByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Department != nil {
		teacher.Department = *req.Department
	}
	return teacher, nil
}

func (f *fakeTeacherService) DeleteTeacher(_ context.Context, id int64) error {
	if _, err := f.GetTeacherByID(context.Background(), id); err != nil {
		return err
	}
	f.deletedID = id
	return nil
}

func newTeacherTestRouter(svc *fakeTeacherService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	controller := NewTeacherController(svc)
	router.POST("/teachers", controller.CreateTeacher)
	router.GET("/teachers", controller.GetAllTeachers)
	router.GET("/teachers/:id", controller.GetTeacherByID)
	router.PUT("/teachers/:id", controller.UpdateTeacher)
	router.DELETE("/teachers/:id", controller.DeleteTeacher)
	return router
}

func TestCreateTeacher(t *testing.T) {
	t.Run("valid request returns 201", func(t *testing.T) {
		router := newTeacherTestRouter(&fakeTeacherService{})

		body := bytes.NewBufferString(`{"name":"Alan Turing","department":"Computer Science"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/teachers", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var teacher models.Teacher
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teacher))
		require.Equal(t, "Alan Turing", teacher.Name)
	})

	t.Run("missing required field returns 400", func(t *testing.T) {
		router := newTeacherTestRouter(&fakeTeacherService{})

		body := bytes.NewBufferString(`{"name":"Alan Turing"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/teachers", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAllTeachers(t *testing.T) {
	svc := &fakeTeacherService{
		teachers: []*models.Teacher{
			{ID: 1, Name: "Alan Turing", Department: "Computer Science"},
			{ID: 2, Name: "Grace Hopper", Department: "Computer Science"},
		},
		total: 21,
	}
	router := newTeacherTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teachers?page=2&limit=2&sort=desc&populate=StudentId", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// The raw query parameters must reach the service as a normalized spec.
	require.Equal(t, 2, svc.lastSpec.Page)
	require.Equal(t, 2, svc.lastSpec.Limit)
	require.Equal(t, 2, svc.lastSpec.Offset)
	require.Equal(t, query.SortDesc, svc.lastSpec.Order)
	require.True(t, svc.lastSpec.Has(query.RelationCourses))

	var resp struct {
		Meta dto.ListMeta     `json:"meta"`
		Data []models.Teacher `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.EqualValues(t, 21, resp.Meta.TotalItems)
	require.Equal(t, 2, resp.Meta.Page)
	require.Equal(t, 11, resp.Meta.TotalPages)
	require.Len(t, resp.Data, 2)
}

func TestGetTeacherByID(t *testing.T) {
	svc := &fakeTeacherService{
		teachers: []*models.Teacher{{ID: 1, Name: "Alan Turing", Department: "Computer Science"}},
	}
	router := newTeacherTestRouter(svc)

	t.Run("existing teacher", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/teachers/1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown teacher returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/teachers/99", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/teachers/abc", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateTeacher(t *testing.T) {
	svc := &fakeTeacherService{
		teachers: []*models.Teacher{{ID: 1, Name: "Alan Turing", Department: "Computer Science"}},
	}
	router := newTeacherTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/teachers/1", bytes.NewBufferString(`{"department":"Mathematics"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var teacher models.Teacher
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teacher))
	require.Equal(t, "Alan Turing", teacher.Name)
	require.Equal(t, "Mathematics", teacher.Department)
}

func TestDeleteTeacher(t *testing.T) {
	svc := &fakeTeacherService{
		teachers: []*models.Teacher{{ID: 1, Name: "Alan Turing", Department: "Computer Science"}},
	}
	router := newTeacherTestRouter(svc)

	t.Run("existing teacher", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/teachers/1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.EqualValues(t, 1, svc.deletedID)

		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Message)
	})

	t.Run("unknown teacher returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/teachers/99", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
