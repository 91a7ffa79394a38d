package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tutionapp/backend/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	subjectController *controllers.SubjectController,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	mappingController *controllers.MappingController,
) {
	api := router.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Admin routes. The route names mirror the admin screens that call
	// them; there is no authentication layer in front of them.
	admin := api.Group("/admin")
	{
		// Subject catalog
		admin.POST("/addSubjects", subjectController.AddSubject)
		admin.GET("/subjects", subjectController.GetSubjects)
		admin.PUT("/updateSubject/:id", subjectController.UpdateSubject)
		admin.DELETE("/deleteSubject/:id", subjectController.DeleteSubject)
		admin.GET("/check-db", subjectController.CheckDatabase)

		// Students
		admin.POST("/registerStudent", studentController.RegisterStudent)
		admin.POST("/registerStudentWithSubject", studentController.RegisterStudentWithSubject)
		admin.POST("/registerStudentWithSubjects", studentController.RegisterStudentWithSubjects)
		admin.GET("/students", studentController.GetStudents)
		admin.GET("/studentsWithSubjects", studentController.GetStudentsWithSubjects)
		admin.PUT("/updateStudentWithSubjects/:id", studentController.UpdateStudentWithSubjects)
		admin.PUT("/updateStudentWithSubject/:id", studentController.UpdateStudentWithSubject)
		admin.DELETE("/deleteStudent/:id", studentController.DeleteStudent)

		// Faculties
		admin.GET("/facultiesWithSubjects", facultyController.GetFacultiesWithSubjects)
		admin.POST("/registerFacultyWithSubjects", facultyController.RegisterFacultyWithSubjects)
		admin.PUT("/updateFacultyWithSubjects/:id", facultyController.UpdateFacultyWithSubjects)
		admin.DELETE("/deleteFaculty/:id", facultyController.DeleteFaculty)

		// Faculty/student mappings
		admin.GET("/facultyStudentMappings/:facultyId", mappingController.GetFacultyStudentMappings)
		admin.POST("/mapStudentsToFaculty", mappingController.MapStudentsToFaculty)
		admin.DELETE("/removeFacultyStudentMapping", mappingController.RemoveFacultyStudentMapping)
		admin.GET("/unmappedStudents/:facultyId", mappingController.GetUnmappedStudents)
	}
}
