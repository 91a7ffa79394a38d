package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the response envelope. Sentinel
// matching uses errors.Is so services can wrap sentinels in CustomError and
// still reach the right status; the CustomError message wins over the
// per-status fallback. Anything unmatched is a 500 that carries the raw
// error text in the envelope's error field.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(apperrors.Message(err, "Invalid email or password")))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Email already exists")))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrSubjectNotAssigned):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Invalid request")))
	case errors.Is(err, apperrors.ErrSubjectNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Message(err, "Subject not found")))
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Message(err, "Faculty not found")))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Message(err, "Student not found")))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Message(err, "User not found")))
	case errors.Is(err, apperrors.ErrMappingNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Message(err, "Mapping not found")))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewServerErrorResponse("Internal server error", err))
	}
}
