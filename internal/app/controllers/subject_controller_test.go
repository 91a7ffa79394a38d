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

type fakeSubjectService struct {
	createFn  func(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error)
	listFn    func(ctx context.Context) ([]*models.Subject, error)
	updateFn  func(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error)
	deleteFn  func(ctx context.Context, id int64) error
	checkDBFn func(ctx context.Context) (*dto.DatabaseCheck, error)
}

func (f *fakeSubjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
	return f.createFn(ctx, req)
}
func (f *fakeSubjectService) List(ctx context.Context) ([]*models.Subject, error) {
	return f.listFn(ctx)
}
func (f *fakeSubjectService) Update(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeSubjectService) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeSubjectService) CheckDatabase(ctx context.Context) (*dto.DatabaseCheck, error) {
	return f.checkDBFn(ctx)
}

func newSubjectRouter(svc *fakeSubjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewSubjectController(svc)
	admin := router.Group("/api/admin")
	admin.POST("/addSubjects", controller.AddSubject)
	admin.GET("/subjects", controller.GetSubjects)
	admin.PUT("/updateSubject/:id", controller.UpdateSubject)
	admin.DELETE("/deleteSubject/:id", controller.DeleteSubject)
	return router
}

func TestAddSubject(t *testing.T) {
	svc := &fakeSubjectService{
		createFn: func(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
			return &models.Subject{ID: 7, Standard: req.Standard, SubjectName: req.SubjectName, Board: req.Board}, nil
		},
	}
	router := newSubjectRouter(svc)

	body := `{"standard":10,"subjectname":"Mathematics","board":"CBSE"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/addSubjects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"subjectname":"Mathematics"`) {
		t.Fatalf("response did not echo the subject: %s", rec.Body.String())
	}
}

func TestAddSubjectMissingField(t *testing.T) {
	svc := &fakeSubjectService{
		createFn: func(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
			t.Fatalf("service must not be called on a bind failure")
			return nil, nil
		},
	}
	router := newSubjectRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/addSubjects", strings.NewReader(`{"standard":10}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetSubjectsIncludesCount(t *testing.T) {
	svc := &fakeSubjectService{
		listFn: func(ctx context.Context) ([]*models.Subject, error) {
			return []*models.Subject{
				{ID: 1, Standard: 9, SubjectName: "Science", Board: "ICSE"},
				{ID: 2, Standard: 10, SubjectName: "Mathematics", Board: "CBSE"},
			}, nil
		},
	}
	router := newSubjectRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/subjects", nil)
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

func TestUpdateSubjectNotFound(t *testing.T) {
	svc := &fakeSubjectService{
		updateFn: func(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error) {
			return nil, apperrors.NewCustomError(apperrors.ErrSubjectNotFound, "Subject not found")
		},
	}
	router := newSubjectRouter(svc)

	body := `{"standard":10,"subjectname":"Mathematics","board":"CBSE"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/updateSubject/99", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateSubjectInvalidID(t *testing.T) {
	svc := &fakeSubjectService{
		updateFn: func(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error) {
			t.Fatalf("service must not be called with an invalid id")
			return nil, nil
		},
	}
	router := newSubjectRouter(svc)

	body := `{"standard":10,"subjectname":"Mathematics","board":"CBSE"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/updateSubject/abc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteSubject(t *testing.T) {
	var deletedID int64
	svc := &fakeSubjectService{
		deleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	router := newSubjectRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/deleteSubject/5", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if deletedID != 5 {
		t.Fatalf("service received id %d, want 5", deletedID)
	}
}
