package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/services"
	"github.com/tutionapp/backend/internal/middleware"
)

// SubjectController handles subject catalog operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// AddSubject creates a new subject
// @Summary Add a subject
// @Description Adds a subject identified by its standard, name and board. Duplicate triples are allowed.
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.CreateSubjectRequest true "Subject fields"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject added successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/addSubjects [post]
func (c *SubjectController) AddSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Standard, subjectname and board are required"))
		return
	}

	subject, err := c.subjectService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Subject added successfully",
		Data:    subject,
	})
}

// GetSubjects lists the subject catalog
// @Summary List subjects
// @Description Returns every subject ordered by standard then name
// @Tags subjects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects fetched"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch subjects"
// @Router /admin/subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(subjects), subjects))
}

// UpdateSubject updates an existing subject
// @Summary Update a subject
// @Description Replaces the standard, name and board of the subject with the given id
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Subject fields"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/updateSubject/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Standard, subjectname and board are required"))
		return
	}

	subject, err := c.subjectService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Subject updated successfully",
		Data:    subject,
	})
}

// DeleteSubject removes a subject
// @Summary Delete a subject
// @Description Deletes the subject with the given id along with dependent assignments and enrollments
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse "Subject deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/deleteSubject/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject deleted successfully"))
}

// CheckDatabase reports subjects table diagnostics
// @Summary Inspect the subjects table
// @Description Returns the subjects table structure, a sample of rows and the total count
// @Tags subjects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DatabaseCheck} "Database check result"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/check-db [get]
func (c *SubjectController) CheckDatabase(ctx *gin.Context) {
	check, err := c.subjectService.CheckDatabase(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(check))
}
