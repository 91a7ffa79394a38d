package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/services"
	"github.com/tutionapp/backend/internal/middleware"
)

// StudentController handles student registration and listing
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// RegisterStudent registers a user with no enrollments
// @Summary Register a user
// @Description Creates a user row. Password and role default to the demo password and student role when omitted.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "User fields"
// @Success 201 {object} dto.APIResponse{data=models.User} "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/registerStudent [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name and email are required"))
		return
	}

	user, err := c.studentService.Register(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    user,
	})
}

// RegisterStudentWithSubject registers a student enrolled in one subject
// @Summary Register a student with one subject
// @Description Creates a student and enrolls them in the subject resolved from the (subject, standard, board) triple
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentWithSubjectRequest true "Student and subject triple"
// @Success 201 {object} dto.APIResponse{data=dto.StudentWithSubjects} "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email already registered"
// @Failure 404 {object} dto.ErrorResponse "Subject triple not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/registerStudentWithSubject [post]
func (c *StudentController) RegisterStudentWithSubject(ctx *gin.Context) {
	var req dto.RegisterStudentWithSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email, standard, subject and board are required"))
		return
	}

	student, err := c.studentService.RegisterWithSubject(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Student registered successfully",
		Data:    student,
	})
}

// RegisterStudentWithSubjects registers a student enrolled in several subjects
// @Summary Register a student with subjects
// @Description Creates a student and enrolls them in every resolved subject. Fails atomically if any triple does not resolve.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentWithSubjectsRequest true "Student and subject triples"
// @Success 201 {object} dto.APIResponse{data=dto.StudentWithSubjects} "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email already registered"
// @Failure 404 {object} dto.ErrorResponse "Subject triple not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/registerStudentWithSubjects [post]
func (c *StudentController) RegisterStudentWithSubjects(ctx *gin.Context) {
	var req dto.RegisterStudentWithSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email and at least one subject are required"))
		return
	}

	student, err := c.studentService.RegisterWithSubjects(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Student registered successfully",
		Data:    student,
	})
}

// GetStudents lists all students
// @Summary List students
// @Description Returns every student row without enrollments
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentSummary} "Students fetched"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(students), students))
}

// GetStudentsWithSubjects lists students with their enrollments
// @Summary List students with subjects
// @Description Returns every student with the subjects they are enrolled in
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentWithSubjects} "Students fetched"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/studentsWithSubjects [get]
func (c *StudentController) GetStudentsWithSubjects(ctx *gin.Context) {
	students, err := c.studentService.ListWithSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(students), students))
}

// UpdateStudentWithSubjects updates a student and replaces their enrollments
// @Summary Update a student and their subject set
// @Description Updates name and email; a non-empty subjects array replaces the whole enrollment set
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentWithSubjectsRequest true "Student fields and subject triples"
// @Success 200 {object} dto.APIResponse{data=dto.StudentWithSubjects} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email taken"
// @Failure 404 {object} dto.ErrorResponse "Student or subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/updateStudentWithSubjects/{id} [put]
func (c *StudentController) UpdateStudentWithSubjects(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentWithSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name and email are required"))
		return
	}

	student, err := c.studentService.UpdateWithSubjects(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Student updated successfully",
		Data:    student,
	})
}

// UpdateStudentWithSubject updates a student and retargets one enrollment
// @Summary Update a student and one enrollment
// @Description Updates name and email; when a subject triple is supplied, the enrollment named by subjectId is moved to it
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentWithSubjectRequest true "Student fields and optional subject triple"
// @Success 200 {object} dto.APIResponse{data=dto.StudentWithSubjects} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email taken"
// @Failure 404 {object} dto.ErrorResponse "Student or subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/updateStudentWithSubject/{id} [put]
func (c *StudentController) UpdateStudentWithSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentWithSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name and email are required"))
		return
	}

	student, err := c.studentService.UpdateWithSubject(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Student updated successfully",
		Data:    student,
	})
}

// DeleteStudent removes a student and their enrollments
// @Summary Delete a student
// @Description Deletes the student row and every enrollment belonging to it
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/deleteStudent/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted successfully"))
}
