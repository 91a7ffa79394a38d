package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/services"
	"github.com/tutionapp/backend/internal/middleware"
)

// MappingController handles faculty/student mapping operations
type MappingController struct {
	mappingService services.MappingService
}

// NewMappingController creates a new MappingController
func NewMappingController(mappingService services.MappingService) *MappingController {
	return &MappingController{mappingService: mappingService}
}

// GetFacultyStudentMappings lists students mapped to a faculty
// @Summary List a faculty's mapped students
// @Description Returns the students who share at least one subject with the faculty, each with the shared subjects
// @Tags mappings
// @Produce json
// @Param facultyId path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MappedStudent} "Mappings fetched"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/facultyStudentMappings/{facultyId} [get]
func (c *MappingController) GetFacultyStudentMappings(ctx *gin.Context) {
	facultyID, ok := parseIDParam(ctx, "facultyId")
	if !ok {
		return
	}

	mappings, err := c.mappingService.StudentMappings(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(mappings), mappings))
}

// MapStudentsToFaculty bulk-enrolls students in a faculty's subjects
// @Summary Map students to a faculty
// @Description Enrolls every (student, subject) pair from the Cartesian product of the id lists. Existing pairs are skipped.
// @Tags mappings
// @Accept json
// @Produce json
// @Param request body dto.MapStudentsToFacultyRequest true "Faculty, student and subject ids"
// @Success 200 {object} dto.APIResponse{data=dto.MappingResult} "Students mapped successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing ids or subject not assigned to faculty"
// @Failure 404 {object} dto.ErrorResponse "Faculty or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mapStudentsToFaculty [post]
func (c *MappingController) MapStudentsToFaculty(ctx *gin.Context) {
	var req dto.MapStudentsToFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("facultyId, studentIds and subjectIds are required"))
		return
	}

	result, err := c.mappingService.MapStudents(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Students mapped successfully",
		Data:    result,
	})
}

// RemoveFacultyStudentMapping detaches a student from a faculty
// @Summary Remove a faculty/student mapping
// @Description Deletes the student's enrollments in the faculty's subjects. Enrollments in other subjects are untouched.
// @Tags mappings
// @Accept json
// @Produce json
// @Param request body dto.RemoveFacultyStudentMappingRequest true "Faculty and student ids"
// @Success 200 {object} dto.APIResponse "Mapping removed successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing ids"
// @Failure 404 {object} dto.ErrorResponse "Faculty, student or mapping not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/removeFacultyStudentMapping [delete]
func (c *MappingController) RemoveFacultyStudentMapping(ctx *gin.Context) {
	var req dto.RemoveFacultyStudentMappingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("facultyId and studentId are required"))
		return
	}

	if err := c.mappingService.RemoveMapping(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Mapping removed successfully"))
}

// GetUnmappedStudents lists students not mapped to a faculty
// @Summary List students not mapped to a faculty
// @Description Returns the students who share no subject with the faculty
// @Tags mappings
// @Produce json
// @Param facultyId path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentSummary} "Unmapped students fetched"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/unmappedStudents/{facultyId} [get]
func (c *MappingController) GetUnmappedStudents(ctx *gin.Context) {
	facultyID, ok := parseIDParam(ctx, "facultyId")
	if !ok {
		return
	}

	students, err := c.mappingService.UnmappedStudents(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(students), students))
}
