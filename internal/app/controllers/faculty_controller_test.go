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

type fakeFacultyService struct {
	listFn     func(ctx context.Context) ([]dto.FacultyWithSubjects, error)
	registerFn func(ctx context.Context, req dto.RegisterFacultyWithSubjectsRequest) (*dto.RegisteredFaculty, error)
	updateFn   func(ctx context.Context, id int64, req dto.UpdateFacultyWithSubjectsRequest) (*dto.FacultyWithSubjects, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (f *fakeFacultyService) ListWithSubjects(ctx context.Context) ([]dto.FacultyWithSubjects, error) {
	return f.listFn(ctx)
}
func (f *fakeFacultyService) RegisterWithSubjects(ctx context.Context, req dto.RegisterFacultyWithSubjectsRequest) (*dto.RegisteredFaculty, error) {
	return f.registerFn(ctx, req)
}
func (f *fakeFacultyService) UpdateWithSubjects(ctx context.Context, id int64, req dto.UpdateFacultyWithSubjectsRequest) (*dto.FacultyWithSubjects, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeFacultyService) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func newFacultyRouter(svc *fakeFacultyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewFacultyController(svc)
	admin := router.Group("/api/admin")
	admin.GET("/facultiesWithSubjects", controller.GetFacultiesWithSubjects)
	admin.POST("/registerFacultyWithSubjects", controller.RegisterFacultyWithSubjects)
	admin.PUT("/updateFacultyWithSubjects/:id", controller.UpdateFacultyWithSubjects)
	admin.DELETE("/deleteFaculty/:id", controller.DeleteFaculty)
	return router
}

func TestRegisterFacultyWithSubjects(t *testing.T) {
	svc := &fakeFacultyService{
		registerFn: func(ctx context.Context, req dto.RegisterFacultyWithSubjectsRequest) (*dto.RegisteredFaculty, error) {
			if len(req.Subjects) != 2 {
				t.Fatalf("expected 2 subject refs, got %d", len(req.Subjects))
			}
			return &dto.RegisteredFaculty{
				ID:    3,
				Name:  req.Name,
				Email: req.Email,
				Subjects: []*models.Subject{
					{ID: 1, Standard: 10, SubjectName: "Mathematics", Board: "CBSE"},
					{ID: 2, Standard: 10, SubjectName: "Science", Board: "CBSE"},
				},
			}, nil
		},
	}
	router := newFacultyRouter(svc)

	body := `{"name":"Arun Kumar","email":"arun@example.com","subjects":[
		{"standard":10,"subject":"Mathematics","board":"CBSE"},
		{"standard":10,"subject":"Science","board":"CBSE"}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registerFacultyWithSubjects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterFacultyUnknownSubjectTriple(t *testing.T) {
	svc := &fakeFacultyService{
		registerFn: func(ctx context.Context, req dto.RegisterFacultyWithSubjectsRequest) (*dto.RegisteredFaculty, error) {
			return nil, apperrors.NewSubjectTripleNotFoundError("History", 8, "ICSE")
		},
	}
	router := newFacultyRouter(svc)

	body := `{"name":"Arun Kumar","email":"arun@example.com","subjects":[{"standard":8,"subject":"History","board":"ICSE"}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registerFacultyWithSubjects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "does not exist in our database") {
		t.Fatalf("expected the triple message in the body: %s", rec.Body.String())
	}
}

func TestRegisterFacultyRequiresSubjects(t *testing.T) {
	svc := &fakeFacultyService{
		registerFn: func(ctx context.Context, req dto.RegisterFacultyWithSubjectsRequest) (*dto.RegisteredFaculty, error) {
			t.Fatalf("service must not be called on a bind failure")
			return nil, nil
		},
	}
	router := newFacultyRouter(svc)

	body := `{"name":"Arun Kumar","email":"arun@example.com","subjects":[]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registerFacultyWithSubjects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetFacultiesWithSubjects(t *testing.T) {
	svc := &fakeFacultyService{
		listFn: func(ctx context.Context) ([]dto.FacultyWithSubjects, error) {
			return []dto.FacultyWithSubjects{
				{
					ID: 3, Name: "Arun Kumar", Email: "arun@example.com",
					Subjects: []*models.Subject{{ID: 1, Standard: 10, SubjectName: "Mathematics", Board: "CBSE"}},
					Students: []dto.StudentSummary{{ID: 10, Name: "Priya", Email: "priya@example.com"}},
				},
			}, nil
		},
	}
	router := newFacultyRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/facultiesWithSubjects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count == nil || *resp.Count != 1 {
		t.Fatalf("expected count 1, got %+v", resp.Count)
	}
}

func TestDeleteFacultyNotFound(t *testing.T) {
	svc := &fakeFacultyService{
		deleteFn: func(ctx context.Context, id int64) error {
			return apperrors.NewCustomError(apperrors.ErrFacultyNotFound, "Faculty not found")
		},
	}
	router := newFacultyRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/deleteFaculty/99", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
