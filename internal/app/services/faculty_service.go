package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/repositories"
	"github.com/tutionapp/backend/internal/pkg/apperrors"
	"github.com/tutionapp/backend/internal/pkg/helpers"
	"github.com/tutionapp/backend/internal/pkg/logger"
)

// FacultyService handles faculty registration and subject-set updates.
// A faculty's students are never stored: they are derived from enrollment
// overlap with the faculty's assigned subjects.
type FacultyService interface {
	ListWithSubjects(ctx context.Context) ([]dto.FacultyWithSubjects, error)
	RegisterWithSubjects(ctx context.Context, req dto.RegisterFacultyWithSubjectsRequest) (*dto.RegisteredFaculty, error)
	UpdateWithSubjects(ctx context.Context, id int64, req dto.UpdateFacultyWithSubjectsRequest) (*dto.FacultyWithSubjects, error)
	Delete(ctx context.Context, id int64) error
}

type facultyService struct {
	database Database
	repos    *repositories.Repositories
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(database Database, repos *repositories.Repositories) FacultyService {
	return &facultyService{database: database, repos: repos}
}

// ListWithSubjects returns every faculty with their assigned subjects and
// the derived set of students enrolled in any of those subjects.
func (s *facultyService) ListWithSubjects(ctx context.Context) ([]dto.FacultyWithSubjects, error) {
	users, err := s.repos.Users.ListByRole(ctx, models.RoleFaculty)
	if err != nil {
		return nil, err
	}

	faculties := make([]dto.FacultyWithSubjects, 0, len(users))
	for _, u := range users {
		subjects, err := s.repos.FacultySubjects.ListSubjects(ctx, u.ID)
		if err != nil {
			return nil, err
		}

		subjectIDs := make([]int64, 0, len(subjects))
		for _, subject := range subjects {
			subjectIDs = append(subjectIDs, subject.ID)
		}

		students, err := s.repos.Enrollments.ListStudentsBySubjects(ctx, subjectIDs)
		if err != nil {
			return nil, err
		}

		faculties = append(faculties, dto.FacultyWithSubjects{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Subjects: subjects,
			Students: students,
		})
	}
	return faculties, nil
}

// RegisterWithSubjects creates a faculty user and assigns the resolved
// subjects in one transaction. Every triple must resolve or nothing is
// written.
func (s *facultyService) RegisterWithSubjects(ctx context.Context, req dto.RegisterFacultyWithSubjectsRequest) (*dto.RegisteredFaculty, error) {
	var result *dto.RegisteredFaculty

	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users := s.repos.Users.WithTx(tx)
		subjects := s.repos.Subjects.WithTx(tx)
		facultySubjects := s.repos.FacultySubjects.WithTx(tx)

		exists, err := users.EmailExists(ctx, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Faculty already exists with this email")
		}

		subjectIDs, resolved, err := resolveSubjectRefs(ctx, subjects, req.Subjects)
		if err != nil {
			return err
		}

		facultyID, err := users.Create(ctx, &models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: models.DefaultPassword,
			Role:     models.RoleFaculty,
		})
		if err != nil {
			return err
		}

		if err := facultySubjects.Assign(ctx, facultyID, subjectIDs); err != nil {
			return err
		}

		result = &dto.RegisteredFaculty{
			ID:       facultyID,
			Name:     req.Name,
			Email:    req.Email,
			Subjects: resolved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("facultyID", result.ID).Int("subjects", len(result.Subjects)).Msg("Faculty registered with subjects")
	return result, nil
}

// UpdateWithSubjects updates a faculty's name and email and replaces their
// subject set. Enrollments are reconciled: students lose their enrollments
// in subjects the faculty no longer teaches, while enrollments in kept and
// newly added subjects survive untouched.
func (s *facultyService) UpdateWithSubjects(ctx context.Context, id int64, req dto.UpdateFacultyWithSubjectsRequest) (*dto.FacultyWithSubjects, error) {
	var result *dto.FacultyWithSubjects

	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users := s.repos.Users.WithTx(tx)
		subjects := s.repos.Subjects.WithTx(tx)
		facultySubjects := s.repos.FacultySubjects.WithTx(tx)
		enrollments := s.repos.Enrollments.WithTx(tx)

		if _, err := users.GetByIDAndRole(ctx, id, models.RoleFaculty); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewCustomError(apperrors.ErrFacultyNotFound, "Faculty not found")
			}
			return err
		}

		taken, err := users.EmailExistsForOther(ctx, req.Email, id)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Another user already has this email")
		}

		if err := users.UpdateNameEmail(ctx, id, req.Name, req.Email); err != nil {
			return err
		}

		oldIDs, err := facultySubjects.ListSubjectIDs(ctx, id)
		if err != nil {
			return err
		}

		newIDs, resolved, err := resolveSubjectRefs(ctx, subjects, req.Subjects)
		if err != nil {
			return err
		}

		if err := facultySubjects.DeleteByFaculty(ctx, id); err != nil {
			return err
		}
		if err := facultySubjects.Assign(ctx, id, newIDs); err != nil {
			return err
		}

		// Subjects dropped from this faculty take their enrollments with
		// them. Students keep enrollments in every subject that stayed.
		removed := helpers.Diff(oldIDs, newIDs)
		if len(removed) > 0 {
			affected, err := enrollments.ListStudentIDsBySubjects(ctx, removed)
			if err != nil {
				return err
			}
			deleted, err := enrollments.DeleteByStudentsAndSubjects(ctx, affected, removed)
			if err != nil {
				return err
			}
			logger.Info().
				Int64("facultyID", id).
				Int("removedSubjects", len(removed)).
				Int64("deletedEnrollments", deleted).
				Msg("Reconciled enrollments after subject removal")
		}

		students, err := enrollments.ListStudentsBySubjects(ctx, newIDs)
		if err != nil {
			return err
		}

		result = &dto.FacultyWithSubjects{
			ID:       id,
			Name:     req.Name,
			Email:    req.Email,
			Subjects: resolved,
			Students: students,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Delete removes a faculty and their subject assignments. Student
// enrollments are left in place: they belong to the student/subject pair,
// not to the faculty.
func (s *facultyService) Delete(ctx context.Context, id int64) error {
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users := s.repos.Users.WithTx(tx)
		facultySubjects := s.repos.FacultySubjects.WithTx(tx)

		if _, err := users.GetByIDAndRole(ctx, id, models.RoleFaculty); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewCustomError(apperrors.ErrFacultyNotFound, "Faculty not found")
			}
			return err
		}

		if err := facultySubjects.DeleteByFaculty(ctx, id); err != nil {
			return err
		}

		return users.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("facultyID", id).Msg("Faculty deleted")
	return nil
}
