package services

import (
	"context"
	"errors"

	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/repositories"
	"github.com/tutionapp/backend/internal/pkg/apperrors"
	"github.com/tutionapp/backend/internal/pkg/logger"
)

// SubjectService handles the subject catalog and database diagnostics
type SubjectService interface {
	Create(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error)
	List(ctx context.Context) ([]*models.Subject, error)
	Update(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error)
	Delete(ctx context.Context, id int64) error
	CheckDatabase(ctx context.Context) (*dto.DatabaseCheck, error)
}

type subjectService struct {
	subjectRepo *repositories.SubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository) SubjectService {
	return &subjectService{subjectRepo: subjectRepo}
}

// Create adds a subject to the catalog. Duplicate triples are allowed; the
// catalog has no uniqueness constraint.
func (s *subjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
	subject := &models.Subject{
		Standard:    req.Standard,
		SubjectName: req.SubjectName,
		Board:       req.Board,
	}

	id, err := s.subjectRepo.Create(ctx, subject)
	if err != nil {
		return nil, err
	}
	subject.ID = id

	logger.Info().Int64("subjectID", id).Str("subject", subject.SubjectName).Msg("Subject created")
	return subject, nil
}

// List returns the whole subject catalog
func (s *subjectService) List(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.List(ctx)
}

// Update replaces all three identity fields of a subject
func (s *subjectService) Update(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject := &models.Subject{
		ID:          id,
		Standard:    req.Standard,
		SubjectName: req.SubjectName,
		Board:       req.Board,
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrSubjectNotFound, "Subject not found")
		}
		return nil, err
	}

	return subject, nil
}

// Delete removes a subject from the catalog. Enrollments and faculty
// assignments referencing it are removed by the cascading foreign keys.
func (s *subjectService) Delete(ctx context.Context, id int64) error {
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewCustomError(apperrors.ErrSubjectNotFound, "Subject not found")
		}
		return err
	}

	logger.Info().Int64("subjectID", id).Msg("Subject deleted")
	return nil
}

// CheckDatabase reports the subjects table structure, a small data sample
// and the total row count.
func (s *subjectService) CheckDatabase(ctx context.Context) (*dto.DatabaseCheck, error) {
	columns, err := s.subjectRepo.TableInfo(ctx)
	if err != nil {
		return nil, err
	}

	sample, err := s.subjectRepo.Sample(ctx, 5)
	if err != nil {
		return nil, err
	}

	all, err := s.subjectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DatabaseCheck{
		TableStructure: columns,
		SampleData:     sample,
		TotalSubjects:  len(all),
	}, nil
}
