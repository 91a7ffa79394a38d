package services

import (
	"context"
	"errors"

	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/repositories"
	"github.com/tutionapp/backend/internal/pkg/apperrors"
	"github.com/tutionapp/backend/internal/pkg/logger"
)

// AuthService handles login credential verification
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo *repositories.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login verifies an email/password pair against the users table. The
// comparison is exact equality on the stored plaintext password; a miss on
// either field returns ErrInvalidCredentials without distinguishing which.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Warn().Str("email", req.Email).Msg("Login failed: invalid credentials")
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password")
		}
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}, nil
}
