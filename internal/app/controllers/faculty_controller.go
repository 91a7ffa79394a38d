package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/services"
	"github.com/tutionapp/backend/internal/middleware"
)

// FacultyController handles faculty registration and subject assignment
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// GetFacultiesWithSubjects lists faculties with subjects and derived students
// @Summary List faculties with subjects
// @Description Returns every faculty with their assigned subjects and the students enrolled in any of those subjects
// @Tags faculties
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyWithSubjects} "Faculties fetched"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/facultiesWithSubjects [get]
func (c *FacultyController) GetFacultiesWithSubjects(ctx *gin.Context) {
	faculties, err := c.facultyService.ListWithSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(faculties), faculties))
}

// RegisterFacultyWithSubjects registers a faculty with assigned subjects
// @Summary Register a faculty with subjects
// @Description Creates a faculty user and assigns every resolved subject. Fails atomically if any triple does not resolve.
// @Tags faculties
// @Accept json
// @Produce json
// @Param request body dto.RegisterFacultyWithSubjectsRequest true "Faculty fields and subject triples"
// @Success 201 {object} dto.APIResponse{data=dto.RegisteredFaculty} "Faculty registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email already registered"
// @Failure 404 {object} dto.ErrorResponse "Subject triple not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/registerFacultyWithSubjects [post]
func (c *FacultyController) RegisterFacultyWithSubjects(ctx *gin.Context) {
	var req dto.RegisterFacultyWithSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email and at least one subject are required"))
		return
	}

	faculty, err := c.facultyService.RegisterWithSubjects(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Faculty registered successfully",
		Data:    faculty,
	})
}

// UpdateFacultyWithSubjects updates a faculty and reconciles enrollments
// @Summary Update a faculty and their subject set
// @Description Updates name and email and replaces the subject set. Students lose enrollments in subjects removed from the faculty.
// @Tags faculties
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyWithSubjectsRequest true "Faculty fields and subject triples"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyWithSubjects} "Faculty updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email taken"
// @Failure 404 {object} dto.ErrorResponse "Faculty or subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/updateFacultyWithSubjects/{id} [put]
func (c *FacultyController) UpdateFacultyWithSubjects(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyWithSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email and at least one subject are required"))
		return
	}

	faculty, err := c.facultyService.UpdateWithSubjects(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Faculty updated successfully",
		Data:    faculty,
	})
}

// DeleteFaculty removes a faculty and their subject assignments
// @Summary Delete a faculty
// @Description Deletes the faculty row and their subject assignments. Student enrollments are left in place.
// @Tags faculties
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse "Faculty deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/deleteFaculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty deleted successfully"))
}
