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

type fakeAuthService struct {
	loginFn func(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.loginFn(ctx, req)
}

func newAuthRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(svc)
	router.POST("/api/auth/login", controller.Login)
	return router
}

func TestLoginSuccess(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
			if req.Email != "admin@tutionapp.com" || req.Password != "123" {
				t.Fatalf("unexpected credentials passed to service: %+v", req)
			}
			return &dto.LoginResponse{ID: 1, Name: "Admin", Email: req.Email, Role: "admin"}, nil
		},
	}
	router := newAuthRouter(svc)

	body := `{"email":"admin@tutionapp.com","password":"123"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Message != "Login successful" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password")
		},
	}
	router := newAuthRouter(svc)

	body := `{"email":"admin@tutionapp.com","password":"wrong"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success || resp.Message != "Invalid email or password" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
			t.Fatalf("service must not be called on a bind failure")
			return nil, nil
		},
	}
	router := newAuthRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"admin@tutionapp.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
