package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/pkg/apperrors"
)

type fakeStudentService struct {
	registerFn             func(ctx context.Context, req dto.RegisterStudentRequest) (*models.User, error)
	registerWithSubjectFn  func(ctx context.Context, req dto.RegisterStudentWithSubjectRequest) (*dto.StudentWithSubjects, error)
	registerWithSubjectsFn func(ctx context.Context, req dto.RegisterStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error)
	listFn                 func(ctx context.Context) ([]dto.StudentSummary, error)
	listWithSubjectsFn     func(ctx context.Context) ([]dto.StudentWithSubjects, error)
	updateWithSubjectsFn   func(ctx context.Context, id int64, req dto.UpdateStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error)
	updateWithSubjectFn    func(ctx context.Context, id int64, req dto.UpdateStudentWithSubjectRequest) (*dto.StudentWithSubjects, error)
	deleteFn               func(ctx context.Context, id int64) error
}

func (f *fakeStudentService) Register(ctx context.Context, req dto.RegisterStudentRequest) (*models.User, error) {
	return f.registerFn(ctx, req)
}
func (f *fakeStudentService) RegisterWithSubject(ctx context.Context, req dto.RegisterStudentWithSubjectRequest) (*dto.StudentWithSubjects, error) {
	return f.registerWithSubjectFn(ctx, req)
}
func (f *fakeStudentService) RegisterWithSubjects(ctx context.Context, req dto.RegisterStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error) {
	return f.registerWithSubjectsFn(ctx, req)
}
func (f *fakeStudentService) List(ctx context.Context) ([]dto.StudentSummary, error) {
	return f.listFn(ctx)
}
func (f *fakeStudentService) ListWithSubjects(ctx context.Context) ([]dto.StudentWithSubjects, error) {
	return f.listWithSubjectsFn(ctx)
}
func (f *fakeStudentService) UpdateWithSubjects(ctx context.Context, id int64, req dto.UpdateStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error) {
	return f.updateWithSubjectsFn(ctx, id, req)
}
func (f *fakeStudentService) UpdateWithSubject(ctx context.Context, id int64, req dto.UpdateStudentWithSubjectRequest) (*dto.StudentWithSubjects, error) {
	return f.updateWithSubjectFn(ctx, id, req)
}
func (f *fakeStudentService) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func newStudentRouter(svc *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewStudentController(svc)
	admin := router.Group("/api/admin")
	admin.POST("/registerStudent", controller.RegisterStudent)
	admin.POST("/registerStudentWithSubjects", controller.RegisterStudentWithSubjects)
	admin.GET("/students", controller.GetStudents)
	admin.GET("/studentsWithSubjects", controller.GetStudentsWithSubjects)
	admin.PUT("/updateStudentWithSubjects/:id", controller.UpdateStudentWithSubjects)
	admin.DELETE("/deleteStudent/:id", controller.DeleteStudent)
	return router
}

func TestRegisterStudent(t *testing.T) {
	svc := &fakeStudentService{
		registerFn: func(ctx context.Context, req dto.RegisterStudentRequest) (*models.User, error) {
			return &models.User{ID: 10, Name: req.Name, Email: req.Email, Role: models.RoleStudent}, nil
		},
	}
	router := newStudentRouter(svc)

	body := `{"name":"Priya Sharma","email":"priya@example.com"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registerStudent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	// The password must never appear in the response
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaked the password field: %s", rec.Body.String())
	}
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	svc := &fakeStudentService{
		registerFn: func(ctx context.Context, req dto.RegisterStudentRequest) (*models.User, error) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "User already exists with this email")
		},
	}
	router := newStudentRouter(svc)

	body := `{"name":"Priya Sharma","email":"priya@example.com"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registerStudent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already exists") {
		t.Fatalf("expected the duplicate-email message: %s", rec.Body.String())
	}
}

func TestRegisterStudentWithSubjects(t *testing.T) {
	svc := &fakeStudentService{
		registerWithSubjectsFn: func(ctx context.Context, req dto.RegisterStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error) {
			return &dto.StudentWithSubjects{
				ID: 10, Name: req.Name, Email: req.Email, Role: "student",
				Subjects: []*models.Subject{{ID: 1, Standard: 10, SubjectName: "Science", Board: "ICSE"}},
			}, nil
		},
	}
	router := newStudentRouter(svc)

	body := `{"name":"Priya Sharma","email":"priya@example.com","subjects":[{"standard":10,"subject":"Science","board":"ICSE"}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registerStudentWithSubjects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
}

func TestGetStudentsWithSubjects(t *testing.T) {
	svc := &fakeStudentService{
		listWithSubjectsFn: func(ctx context.Context) ([]dto.StudentWithSubjects, error) {
			return []dto.StudentWithSubjects{
				{ID: 10, Name: "Priya", Email: "priya@example.com", Role: "student",
					Subjects: []*models.Subject{{ID: 1, Standard: 10, SubjectName: "Science", Board: "ICSE"}}},
				{ID: 11, Name: "Rahul", Email: "rahul@example.com", Role: "student",
					Subjects: []*models.Subject{}},
			}, nil
		},
	}
	router := newStudentRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/studentsWithSubjects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count == nil || *resp.Count != 2 {
		t.Fatalf("expected count 2, got %+v", resp.Count)
	}
}

func TestUpdateStudentWithSubjectsAllowsEmptyList(t *testing.T) {
	svc := &fakeStudentService{
		updateWithSubjectsFn: func(ctx context.Context, id int64, req dto.UpdateStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error) {
			if len(req.Subjects) != 0 {
				t.Fatalf("expected no subject refs, got %d", len(req.Subjects))
			}
			return &dto.StudentWithSubjects{ID: id, Name: req.Name, Email: req.Email, Role: "student"}, nil
		},
	}
	router := newStudentRouter(svc)

	body := `{"name":"Priya Sharma","email":"priya@example.com"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/updateStudentWithSubjects/10", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteStudentNotFound(t *testing.T) {
	svc := &fakeStudentService{
		deleteFn: func(ctx context.Context, id int64) error {
			return apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found")
		},
	}
	router := newStudentRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/deleteStudent/99", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
