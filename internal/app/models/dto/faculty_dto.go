package dto

import "github.com/tutionapp/backend/internal/app/models"

// RegisterFacultyWithSubjectsRequest registers a faculty member along with
// the subjects they teach.
type RegisterFacultyWithSubjectsRequest struct {
	Name     string       `json:"name" binding:"required"`
	Email    string       `json:"email" binding:"required"`
	Subjects []SubjectRef `json:"subjects" binding:"required,min=1,dive"`
}

// UpdateFacultyWithSubjectsRequest replaces a faculty's subject set and
// triggers enrollment reconciliation for removed subjects.
type UpdateFacultyWithSubjectsRequest struct {
	Name     string       `json:"name" binding:"required"`
	Email    string       `json:"email" binding:"required"`
	Subjects []SubjectRef `json:"subjects" binding:"required,min=1,dive"`
}

// FacultyWithSubjects is a faculty row with assigned subjects and the
// derived list of students relevant to those subjects.
type FacultyWithSubjects struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Subjects []*models.Subject `json:"subjects"`
	Students []StudentSummary  `json:"students"`
}

// RegisteredFaculty is the creation response body for a new faculty
type RegisteredFaculty struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Subjects []*models.Subject `json:"subjects"`
}
