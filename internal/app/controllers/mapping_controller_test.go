package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/pkg/apperrors"
)

type fakeMappingService struct {
	studentMappingsFn  func(ctx context.Context, facultyID int64) ([]dto.MappedStudent, error)
	mapStudentsFn      func(ctx context.Context, req dto.MapStudentsToFacultyRequest) (*dto.MappingResult, error)
	removeMappingFn    func(ctx context.Context, req dto.RemoveFacultyStudentMappingRequest) error
	unmappedStudentsFn func(ctx context.Context, facultyID int64) ([]dto.StudentSummary, error)
}

func (f *fakeMappingService) StudentMappings(ctx context.Context, facultyID int64) ([]dto.MappedStudent, error) {
	return f.studentMappingsFn(ctx, facultyID)
}
func (f *fakeMappingService) MapStudents(ctx context.Context, req dto.MapStudentsToFacultyRequest) (*dto.MappingResult, error) {
	return f.mapStudentsFn(ctx, req)
}
func (f *fakeMappingService) RemoveMapping(ctx context.Context, req dto.RemoveFacultyStudentMappingRequest) error {
	return f.removeMappingFn(ctx, req)
}
func (f *fakeMappingService) UnmappedStudents(ctx context.Context, facultyID int64) ([]dto.StudentSummary, error) {
	return f.unmappedStudentsFn(ctx, facultyID)
}

func newMappingRouter(svc *fakeMappingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewMappingController(svc)
	admin := router.Group("/api/admin")
	admin.GET("/facultyStudentMappings/:facultyId", controller.GetFacultyStudentMappings)
	admin.POST("/mapStudentsToFaculty", controller.MapStudentsToFaculty)
	admin.DELETE("/removeFacultyStudentMapping", controller.RemoveFacultyStudentMapping)
	admin.GET("/unmappedStudents/:facultyId", controller.GetUnmappedStudents)
	return router
}

func TestMapStudentsToFaculty(t *testing.T) {
	svc := &fakeMappingService{
		mapStudentsFn: func(ctx context.Context, req dto.MapStudentsToFacultyRequest) (*dto.MappingResult, error) {
			if req.FacultyID != 3 || len(req.StudentIDs) != 2 || len(req.SubjectIDs) != 1 {
				t.Fatalf("unexpected request passed to service: %+v", req)
			}
			return &dto.MappingResult{MappingsCreated: 2, AlreadyMapped: 0}, nil
		},
	}
	router := newMappingRouter(svc)

	body := `{"facultyId":3,"studentIds":[10,11],"subjectIds":[5]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/mapStudentsToFaculty", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Message != "Students mapped successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestMapStudentsSubjectNotAssigned(t *testing.T) {
	svc := &fakeMappingService{
		mapStudentsFn: func(ctx context.Context, req dto.MapStudentsToFacultyRequest) (*dto.MappingResult, error) {
			return nil, apperrors.NewCustomError(apperrors.ErrSubjectNotAssigned, "Subject 5 is not assigned to this faculty")
		},
	}
	router := newMappingRouter(svc)

	body := `{"facultyId":3,"studentIds":[10],"subjectIds":[5]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/mapStudentsToFaculty", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not assigned to this faculty") {
		t.Fatalf("expected the custom message in the body: %s", rec.Body.String())
	}
}

func TestMapStudentsMissingIDs(t *testing.T) {
	svc := &fakeMappingService{
		mapStudentsFn: func(ctx context.Context, req dto.MapStudentsToFacultyRequest) (*dto.MappingResult, error) {
			t.Fatalf("service must not be called on a bind failure")
			return nil, nil
		},
	}
	router := newMappingRouter(svc)

	body := `{"facultyId":3,"studentIds":[]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/mapStudentsToFaculty", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRemoveMappingNotFound(t *testing.T) {
	svc := &fakeMappingService{
		removeMappingFn: func(ctx context.Context, req dto.RemoveFacultyStudentMappingRequest) error {
			return apperrors.NewCustomError(apperrors.ErrMappingNotFound, "No mapping found between this student and faculty")
		},
	}
	router := newMappingRouter(svc)

	body := `{"facultyId":3,"studentId":10}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/removeFacultyStudentMapping", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetFacultyStudentMappings(t *testing.T) {
	svc := &fakeMappingService{
		studentMappingsFn: func(ctx context.Context, facultyID int64) ([]dto.MappedStudent, error) {
			if facultyID != 4 {
				t.Fatalf("facultyID = %d, want 4", facultyID)
			}
			return []dto.MappedStudent{{ID: 10, Name: "Priya", Email: "priya@example.com"}}, nil
		},
	}
	router := newMappingRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/facultyStudentMappings/4", nil)
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

func TestGetUnmappedStudentsFacultyNotFound(t *testing.T) {
	svc := &fakeMappingService{
		unmappedStudentsFn: func(ctx context.Context, facultyID int64) ([]dto.StudentSummary, error) {
			return nil, apperrors.NewCustomError(apperrors.ErrFacultyNotFound, "Faculty not found")
		},
	}
	router := newMappingRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/unmappedStudents/99", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
