package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/repositories"
	"github.com/tutionapp/backend/internal/pkg/apperrors"
	"github.com/tutionapp/backend/internal/pkg/dberrors"
	"github.com/tutionapp/backend/internal/pkg/logger"
)

// StudentService handles student registration, listing and updates
type StudentService interface {
	Register(ctx context.Context, req dto.RegisterStudentRequest) (*models.User, error)
	RegisterWithSubject(ctx context.Context, req dto.RegisterStudentWithSubjectRequest) (*dto.StudentWithSubjects, error)
	RegisterWithSubjects(ctx context.Context, req dto.RegisterStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error)
	List(ctx context.Context) ([]dto.StudentSummary, error)
	ListWithSubjects(ctx context.Context) ([]dto.StudentWithSubjects, error)
	UpdateWithSubjects(ctx context.Context, id int64, req dto.UpdateStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error)
	UpdateWithSubject(ctx context.Context, id int64, req dto.UpdateStudentWithSubjectRequest) (*dto.StudentWithSubjects, error)
	Delete(ctx context.Context, id int64) error
}

type studentService struct {
	database Database
	repos    *repositories.Repositories
}

// NewStudentService creates a new student service instance
func NewStudentService(database Database, repos *repositories.Repositories) StudentService {
	return &studentService{database: database, repos: repos}
}

// Register creates a bare user row with no enrollments. Password defaults
// to the shared demo password and role defaults to student when omitted.
func (s *studentService) Register(ctx context.Context, req dto.RegisterStudentRequest) (*models.User, error) {
	exists, err := s.repos.Users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "User already exists with this email")
	}

	password := req.Password
	if password == "" {
		password = models.DefaultPassword
	}
	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleStudent
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: password,
		Role:     role,
	}

	id, err := s.repos.Users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info().Int64("userID", id).Str("role", string(role)).Msg("User registered")
	return user, nil
}

// RegisterWithSubject registers a student and enrolls them in one subject
// resolved by its triple. User creation and enrollment commit together.
func (s *studentService) RegisterWithSubject(ctx context.Context, req dto.RegisterStudentWithSubjectRequest) (*dto.StudentWithSubjects, error) {
	return s.registerEnrolled(ctx, req.Name, req.Email, []dto.SubjectRef{{
		Standard: req.Standard,
		Subject:  req.Subject,
		Board:    req.Board,
	}})
}

// RegisterWithSubjects registers a student enrolled in several subjects
func (s *studentService) RegisterWithSubjects(ctx context.Context, req dto.RegisterStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error) {
	return s.registerEnrolled(ctx, req.Name, req.Email, req.Subjects)
}

func (s *studentService) registerEnrolled(ctx context.Context, name, email string, refs []dto.SubjectRef) (*dto.StudentWithSubjects, error) {
	var result *dto.StudentWithSubjects

	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users := s.repos.Users.WithTx(tx)
		subjects := s.repos.Subjects.WithTx(tx)
		enrollments := s.repos.Enrollments.WithTx(tx)

		exists, err := users.EmailExists(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Student already exists with this email")
		}

		subjectIDs, resolved, err := resolveSubjectRefs(ctx, subjects, refs)
		if err != nil {
			return err
		}

		studentID, err := users.Create(ctx, &models.User{
			Name:     name,
			Email:    email,
			Password: models.DefaultPassword,
			Role:     models.RoleStudent,
		})
		if err != nil {
			return err
		}

		for _, subjectID := range subjectIDs {
			if _, err := enrollments.Create(ctx, studentID, subjectID); err != nil {
				return err
			}
		}

		result = &dto.StudentWithSubjects{
			ID:       studentID,
			Name:     name,
			Email:    email,
			Role:     string(models.RoleStudent),
			Subjects: resolved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", result.ID).Int("subjects", len(result.Subjects)).Msg("Student registered with subjects")
	return result, nil
}

// List returns all student rows without their enrollments
func (s *studentService) List(ctx context.Context) ([]dto.StudentSummary, error) {
	users, err := s.repos.Users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	students := make([]dto.StudentSummary, 0, len(users))
	for _, u := range users {
		students = append(students, dto.StudentSummary{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return students, nil
}

// ListWithSubjects returns every student with their enrolled subjects
func (s *studentService) ListWithSubjects(ctx context.Context) ([]dto.StudentWithSubjects, error) {
	users, err := s.repos.Users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	students := make([]dto.StudentWithSubjects, 0, len(users))
	for _, u := range users {
		subjects, err := s.repos.Enrollments.ListSubjectsByStudent(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		students = append(students, dto.StudentWithSubjects{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     string(u.Role),
			Subjects: subjects,
		})
	}
	return students, nil
}

// UpdateWithSubjects updates a student's name and email and, when the
// request carries a non-empty subject list, replaces the whole enrollment
// set with the resolved subjects. An empty list leaves enrollments alone.
func (s *studentService) UpdateWithSubjects(ctx context.Context, id int64, req dto.UpdateStudentWithSubjectsRequest) (*dto.StudentWithSubjects, error) {
	var result *dto.StudentWithSubjects

	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users := s.repos.Users.WithTx(tx)
		subjects := s.repos.Subjects.WithTx(tx)
		enrollments := s.repos.Enrollments.WithTx(tx)

		student, err := users.GetByIDAndRole(ctx, id, models.RoleStudent)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found")
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

		if len(req.Subjects) > 0 {
			subjectIDs, _, err := resolveSubjectRefs(ctx, subjects, req.Subjects)
			if err != nil {
				return err
			}
			if _, err := enrollments.DeleteByStudent(ctx, id); err != nil {
				return err
			}
			for _, subjectID := range subjectIDs {
				if _, err := enrollments.Create(ctx, id, subjectID); err != nil {
					return err
				}
			}
		}

		enrolled, err := enrollments.ListSubjectsByStudent(ctx, id)
		if err != nil {
			return err
		}

		result = &dto.StudentWithSubjects{
			ID:       id,
			Name:     req.Name,
			Email:    req.Email,
			Role:     string(student.Role),
			Subjects: enrolled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateWithSubject updates a student's name and email and optionally
// retargets one enrollment. When the request names a subject triple, the
// enrollment identified by subjectId is moved to the resolved subject; with
// no subjectId the resolved subject is enrolled directly.
func (s *studentService) UpdateWithSubject(ctx context.Context, id int64, req dto.UpdateStudentWithSubjectRequest) (*dto.StudentWithSubjects, error) {
	var result *dto.StudentWithSubjects

	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users := s.repos.Users.WithTx(tx)
		subjects := s.repos.Subjects.WithTx(tx)
		enrollments := s.repos.Enrollments.WithTx(tx)

		student, err := users.GetByIDAndRole(ctx, id, models.RoleStudent)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found")
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

		if req.Subject != "" {
			target, err := subjects.GetByTriple(ctx, req.Subject, req.Standard, req.Board)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return apperrors.NewSubjectTripleNotFoundError(req.Subject, req.Standard, req.Board)
				}
				return err
			}

			if req.SubjectID > 0 {
				// The retarget UPDATE can hit the unique pair constraint
				// when the student is already enrolled in the target, which
				// aborts the surrounding transaction. Run it under a
				// savepoint so the recovery path still has a live tx.
				sp, err := tx.Begin(ctx)
				if err != nil {
					return err
				}
				moved, err := s.repos.Enrollments.WithTx(sp).Retarget(ctx, id, req.SubjectID, target.ID)
				switch {
				case dberrors.IsDuplicateConstraintError(err, "enrollments_pair"):
					// Already enrolled in the target; drop the old enrollment.
					if err := sp.Rollback(ctx); err != nil {
						return err
					}
					if _, err := enrollments.DeleteByStudentAndSubjects(ctx, id, []int64{req.SubjectID}); err != nil {
						return err
					}
				case err != nil:
					_ = sp.Rollback(ctx)
					return err
				default:
					if err := sp.Commit(ctx); err != nil {
						return err
					}
					if moved == 0 {
						// The named enrollment no longer exists; enroll instead.
						if _, err := enrollments.Create(ctx, id, target.ID); err != nil {
							return err
						}
					}
				}
			} else {
				if _, err := enrollments.Create(ctx, id, target.ID); err != nil {
					return err
				}
			}
		}

		enrolled, err := enrollments.ListSubjectsByStudent(ctx, id)
		if err != nil {
			return err
		}

		result = &dto.StudentWithSubjects{
			ID:       id,
			Name:     req.Name,
			Email:    req.Email,
			Role:     string(student.Role),
			Subjects: enrolled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Delete removes a student and every one of their enrollments
func (s *studentService) Delete(ctx context.Context, id int64) error {
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users := s.repos.Users.WithTx(tx)
		enrollments := s.repos.Enrollments.WithTx(tx)

		if _, err := users.GetByIDAndRole(ctx, id, models.RoleStudent); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found")
			}
			return err
		}

		if _, err := enrollments.DeleteByStudent(ctx, id); err != nil {
			return err
		}

		return users.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}
