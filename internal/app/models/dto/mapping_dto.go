package dto

import "github.com/tutionapp/backend/internal/app/models"

// MapStudentsToFacultyRequest enrolls every (student, subject) pair from the
// Cartesian product of the two id lists. Existing pairs are skipped.
type MapStudentsToFacultyRequest struct {
	FacultyID  int64   `json:"facultyId" binding:"required"`
	StudentIDs []int64 `json:"studentIds" binding:"required,min=1"`
	SubjectIDs []int64 `json:"subjectIds" binding:"required,min=1"`
}

// RemoveFacultyStudentMappingRequest detaches one student from one faculty
type RemoveFacultyStudentMappingRequest struct {
	FacultyID int64 `json:"facultyId" binding:"required"`
	StudentID int64 `json:"studentId" binding:"required"`
}

// MappingResult reports how many enrollment rows a mapping call created and
// how many pairs already existed.
type MappingResult struct {
	MappingsCreated int `json:"mappingsCreated"`
	AlreadyMapped   int `json:"alreadyMapped"`
}

// MappedStudent is a student mapped to a faculty, with the subjects they
// share with that faculty.
type MappedStudent struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Subjects []*models.Subject `json:"subjects"`
}
