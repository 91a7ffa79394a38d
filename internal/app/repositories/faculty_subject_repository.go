package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/pkg/logger"
)

// FacultySubjectRepository handles the faculty_subjects join table, the
// normalized form of a faculty's subject assignment.
type FacultySubjectRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewFacultySubjectRepository creates a new FacultySubjectRepository
func NewFacultySubjectRepository(db Querier) *FacultySubjectRepository {
	return &FacultySubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *FacultySubjectRepository) WithTx(tx pgx.Tx) *FacultySubjectRepository {
	return &FacultySubjectRepository{db: tx, sb: r.sb}
}

// Assign inserts assignment rows for the faculty, skipping pairs that
// already exist.
func (r *FacultySubjectRepository) Assign(ctx context.Context, facultyID int64, subjectIDs []int64) error {
	if len(subjectIDs) == 0 {
		return nil
	}

	builder := r.sb.Insert("faculty_subjects").Columns("faculty_id", "subject_id")
	for _, subjectID := range subjectIDs {
		builder = builder.Values(facultyID, subjectID)
	}
	sql, args, err := builder.
		Suffix("ON CONFLICT (faculty_id, subject_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assign subjects query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error assigning subjects to faculty")
		return fmt.Errorf("error assigning subjects: %w", err)
	}

	return nil
}

// ListSubjectIDs returns the subject ids assigned to the faculty
func (r *FacultySubjectRepository) ListSubjectIDs(ctx context.Context, facultyID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("subject_id").
		From("faculty_subjects").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("subject_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subject ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error listing faculty subject ids")
		return nil, fmt.Errorf("error querying faculty subject ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning subject id row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject id rows: %w", err)
	}

	return ids, nil
}

// ListSubjects returns the subject rows assigned to the faculty
func (r *FacultySubjectRepository) ListSubjects(ctx context.Context, facultyID int64) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("s.id", "s.standard", "s.subject_name", "s.board").
		From("subjects s").
		Join("faculty_subjects fs ON fs.subject_id = s.id").
		Where(squirrel.Eq{"fs.faculty_id": facultyID}).
		OrderBy("s.standard ASC", "s.subject_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error listing faculty subjects")
		return nil, fmt.Errorf("error querying faculty subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Standard, &subject.SubjectName, &subject.Board); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

// DeleteByFaculty removes every assignment row for the faculty
func (r *FacultySubjectRepository) DeleteByFaculty(ctx context.Context, facultyID int64) error {
	sql, args, err := r.sb.Delete("faculty_subjects").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty subjects query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error deleting faculty subject assignments")
		return fmt.Errorf("error deleting faculty subject assignments: %w", err)
	}

	return nil
}
