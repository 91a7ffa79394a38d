package services

import (
	"context"
	"errors"

	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/app/repositories"
	"github.com/tutionapp/backend/internal/pkg/apperrors"
	"github.com/tutionapp/backend/internal/pkg/helpers"
)

// resolveSubjectRefs maps each (subject, standard, board) triple to its
// catalog row. The first unresolvable triple aborts the whole call so a
// registration never partially succeeds. Duplicate triples resolve to one id.
func resolveSubjectRefs(ctx context.Context, repo *repositories.SubjectRepository, refs []dto.SubjectRef) ([]int64, []*models.Subject, error) {
	ids := make([]int64, 0, len(refs))
	subjects := make([]*models.Subject, 0, len(refs))

	for _, ref := range refs {
		subject, err := repo.GetByTriple(ctx, ref.Subject, ref.Standard, ref.Board)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, nil, apperrors.NewSubjectTripleNotFoundError(ref.Subject, ref.Standard, ref.Board)
			}
			return nil, nil, err
		}
		if helpers.Contains(ids, subject.ID) {
			continue
		}
		ids = append(ids, subject.ID)
		subjects = append(subjects, subject)
	}

	return ids, subjects, nil
}
