package dto

import "github.com/tutionapp/backend/internal/app/models"

// RegisterStudentRequest registers a bare student with no subject mappings.
// Password and role fall back to defaults when omitted.
type RegisterStudentRequest struct {
	Name     string `json:"name" binding:"required" example:"Priya Sharma"`
	Email    string `json:"email" binding:"required" example:"priya@example.com"`
	Password string `json:"password" example:"123"`
	Role     string `json:"role" example:"student"`
}

// RegisterStudentWithSubjectRequest registers a student enrolled in a single
// subject resolved by its triple.
type RegisterStudentWithSubjectRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Standard int    `json:"standard" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	Board    string `json:"board" binding:"required"`
}

// RegisterStudentWithSubjectsRequest registers a student enrolled in several
// subjects at once.
type RegisterStudentWithSubjectsRequest struct {
	Name     string       `json:"name" binding:"required"`
	Email    string       `json:"email" binding:"required"`
	Subjects []SubjectRef `json:"subjects" binding:"required,min=1,dive"`
}

// UpdateStudentWithSubjectsRequest updates a student's name/email and, when
// Subjects is a non-empty array, replaces the whole enrollment set.
type UpdateStudentWithSubjectsRequest struct {
	Name     string       `json:"name" binding:"required"`
	Email    string       `json:"email" binding:"required"`
	Subjects []SubjectRef `json:"subjects" binding:"omitempty,dive"`
}

// UpdateStudentWithSubjectRequest updates a student and retargets a single
// enrollment. SubjectID optionally names the enrollment to retarget.
type UpdateStudentWithSubjectRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Standard  int    `json:"standard"`
	Subject   string `json:"subject"`
	Board     string `json:"board"`
	SubjectID int64  `json:"subjectId"`
}

// StudentSummary is the compact user row returned by listing endpoints
type StudentSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StudentWithSubjects is a student together with their enrolled subjects
type StudentWithSubjects struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Role     string            `json:"role"`
	Subjects []*models.Subject `json:"subjects"`
}
