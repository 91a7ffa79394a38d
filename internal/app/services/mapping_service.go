package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/repositories"
	"github.com/tutionapp/backend/internal/pkg/apperrors"
	"github.com/tutionapp/backend/internal/pkg/helpers"
	"github.com/tutionapp/backend/internal/pkg/logger"
)

// MappingService handles the faculty/student mapping views and bulk
// operations. A mapping is not a stored relation: a student is mapped to a
// faculty exactly when they share at least one subject through enrollments.
type MappingService interface {
	StudentMappings(ctx context.Context, facultyID int64) ([]dto.MappedStudent, error)
	MapStudents(ctx context.Context, req dto.MapStudentsToFacultyRequest) (*dto.MappingResult, error)
	RemoveMapping(ctx context.Context, req dto.RemoveFacultyStudentMappingRequest) error
	UnmappedStudents(ctx context.Context, facultyID int64) ([]dto.StudentSummary, error)
}

type mappingService struct {
	database Database
	repos    *repositories.Repositories
}

// NewMappingService creates a new mapping service instance
func NewMappingService(database Database, repos *repositories.Repositories) MappingService {
	return &mappingService{database: database, repos: repos}
}

func (s *mappingService) requireFaculty(ctx context.Context, users *repositories.UserRepository, facultyID int64) error {
	if _, err := users.GetByIDAndRole(ctx, facultyID, models.RoleFaculty); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewCustomError(apperrors.ErrFacultyNotFound, "Faculty not found")
		}
		return err
	}
	return nil
}

// StudentMappings returns the students mapped to the faculty, each with the
// subjects they share with that faculty.
func (s *mappingService) StudentMappings(ctx context.Context, facultyID int64) ([]dto.MappedStudent, error) {
	if err := s.requireFaculty(ctx, s.repos.Users, facultyID); err != nil {
		return nil, err
	}

	facultySubjectIDs, err := s.repos.FacultySubjects.ListSubjectIDs(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	students, err := s.repos.Enrollments.ListStudentsBySubjects(ctx, facultySubjectIDs)
	if err != nil {
		return nil, err
	}

	mapped := make([]dto.MappedStudent, 0, len(students))
	for _, student := range students {
		shared, err := s.repos.Enrollments.ListSubjectsByStudentIn(ctx, student.ID, facultySubjectIDs)
		if err != nil {
			return nil, err
		}
		mapped = append(mapped, dto.MappedStudent{
			ID:       student.ID,
			Name:     student.Name,
			Email:    student.Email,
			Subjects: shared,
		})
	}
	return mapped, nil
}

// MapStudents enrolls every (student, subject) pair from the Cartesian
// product of the request's id lists. Every subject must already be assigned
// to the faculty and every student id must reference a real student; pairs
// that already exist are counted as skipped, not errors.
func (s *mappingService) MapStudents(ctx context.Context, req dto.MapStudentsToFacultyRequest) (*dto.MappingResult, error) {
	var result *dto.MappingResult

	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users := s.repos.Users.WithTx(tx)
		facultySubjects := s.repos.FacultySubjects.WithTx(tx)
		enrollments := s.repos.Enrollments.WithTx(tx)

		if err := s.requireFaculty(ctx, users, req.FacultyID); err != nil {
			return err
		}

		studentIDs := helpers.Dedupe(req.StudentIDs)
		count, err := users.CountByIDsAndRole(ctx, studentIDs, models.RoleStudent)
		if err != nil {
			return err
		}
		if count != len(studentIDs) {
			return apperrors.NewCustomError(apperrors.ErrStudentNotFound, "One or more students do not exist")
		}

		facultySubjectIDs, err := facultySubjects.ListSubjectIDs(ctx, req.FacultyID)
		if err != nil {
			return err
		}

		subjectIDs := helpers.Dedupe(req.SubjectIDs)
		for _, subjectID := range subjectIDs {
			if !helpers.Contains(facultySubjectIDs, subjectID) {
				return apperrors.NewCustomError(apperrors.ErrSubjectNotAssigned,
					fmt.Sprintf("Subject %d is not assigned to this faculty", subjectID))
			}
		}

		created, skipped := 0, 0
		for _, studentID := range studentIDs {
			for _, subjectID := range subjectIDs {
				inserted, err := enrollments.Create(ctx, studentID, subjectID)
				if err != nil {
					return err
				}
				if inserted {
					created++
				} else {
					skipped++
				}
			}
		}

		result = &dto.MappingResult{MappingsCreated: created, AlreadyMapped: skipped}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("facultyID", req.FacultyID).
		Int("created", result.MappingsCreated).
		Int("skipped", result.AlreadyMapped).
		Msg("Students mapped to faculty")
	return result, nil
}

// RemoveMapping detaches a student from a faculty by deleting the student's
// enrollments in the faculty's subjects. Enrollments in subjects the
// faculty does not teach are untouched; if another faculty teaches one of
// the deleted subjects, that mapping disappears too, since relevance is
// derived from subject overlap alone.
func (s *mappingService) RemoveMapping(ctx context.Context, req dto.RemoveFacultyStudentMappingRequest) error {
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users := s.repos.Users.WithTx(tx)
		facultySubjects := s.repos.FacultySubjects.WithTx(tx)
		enrollments := s.repos.Enrollments.WithTx(tx)

		if err := s.requireFaculty(ctx, users, req.FacultyID); err != nil {
			return err
		}

		if _, err := users.GetByIDAndRole(ctx, req.StudentID, models.RoleStudent); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found")
			}
			return err
		}

		facultySubjectIDs, err := facultySubjects.ListSubjectIDs(ctx, req.FacultyID)
		if err != nil {
			return err
		}

		deleted, err := enrollments.DeleteByStudentAndSubjects(ctx, req.StudentID, facultySubjectIDs)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return apperrors.NewCustomError(apperrors.ErrMappingNotFound, "No mapping found between this student and faculty")
		}

		logger.Info().
			Int64("facultyID", req.FacultyID).
			Int64("studentID", req.StudentID).
			Int64("deletedEnrollments", deleted).
			Msg("Faculty/student mapping removed")
		return nil
	})
	return err
}

// UnmappedStudents returns the students who share no subject with the
// faculty and are therefore candidates for mapping.
func (s *mappingService) UnmappedStudents(ctx context.Context, facultyID int64) ([]dto.StudentSummary, error) {
	if err := s.requireFaculty(ctx, s.repos.Users, facultyID); err != nil {
		return nil, err
	}

	facultySubjectIDs, err := s.repos.FacultySubjects.ListSubjectIDs(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	mappedIDs, err := s.repos.Enrollments.ListStudentIDsBySubjects(ctx, facultySubjectIDs)
	if err != nil {
		return nil, err
	}

	all, err := s.repos.Users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	unmapped := []dto.StudentSummary{}
	for _, u := range all {
		if helpers.Contains(mappedIDs, u.ID) {
			continue
		}
		unmapped = append(unmapped, dto.StudentSummary{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return unmapped, nil
}
