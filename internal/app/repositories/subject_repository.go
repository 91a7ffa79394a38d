package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/pkg/logger"
)

// SubjectRepository handles subject table database operations
type SubjectRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db Querier) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *SubjectRepository) WithTx(tx pgx.Tx) *SubjectRepository {
	return &SubjectRepository{db: tx, sb: r.sb}
}

// Create inserts a new subject and returns its id
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) (int64, error) {
	sql, args, err := r.sb.Insert("subjects").
		Columns("standard", "subject_name", "board").
		Values(subject.Standard, subject.SubjectName, subject.Board).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create subject query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("subject", subject.SubjectName).Msg("Error executing create subject query")
		return 0, fmt.Errorf("error creating subject: %w", err)
	}

	return id, nil
}

// GetByID retrieves a subject by id
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "standard", "subject_name", "board").
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	subject := &models.Subject{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID, &subject.Standard, &subject.SubjectName, &subject.Board)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error getting subject by id: %w", err)
	}

	return subject, nil
}

// GetByTriple resolves a subject by its (subjectname, standard, board)
// identity. Returns ErrNotFound when the triple matches no row.
func (r *SubjectRepository) GetByTriple(ctx context.Context, name string, standard int, board string) (*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "standard", "subject_name", "board").
		From("subjects").
		Where(squirrel.Eq{"subject_name": name, "standard": standard, "board": board}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build subject triple query: %w", err)
	}

	subject := &models.Subject{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID, &subject.Standard, &subject.SubjectName, &subject.Board)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("subject", name).Int("standard", standard).Str("board", board).Msg("Error resolving subject triple")
		return nil, fmt.Errorf("error resolving subject triple: %w", err)
	}

	return subject, nil
}

// List retrieves all subjects ordered by standard then name
func (r *SubjectRepository) List(ctx context.Context) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "standard", "subject_name", "board").
		From("subjects").
		OrderBy("standard ASC", "subject_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	return r.querySubjects(ctx, sql, args)
}

func (r *SubjectRepository) querySubjects(ctx context.Context, sql string, args []interface{}) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing subjects query")
		return nil, fmt.Errorf("error querying subjects: %w", err)
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

// Update updates an existing subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Update("subjects").
		SetMap(map[string]interface{}{
			"standard":     subject.Standard,
			"subject_name": subject.SubjectName,
			"board":        subject.Board,
		}).
		Where(squirrel.Eq{"id": subject.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subject.ID).Msg("Error executing update subject query")
		return fmt.Errorf("error updating subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a subject by id
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("subjects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error executing delete subject query")
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// TableInfo reports the subjects table structure from information_schema,
// for the database diagnostics endpoint.
func (r *SubjectRepository) TableInfo(ctx context.Context) ([]dto.ColumnInfo, error) {
	const sql = `
		SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_name = 'subjects' AND table_schema = current_schema()
		ORDER BY ordinal_position`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying subjects table structure")
		return nil, fmt.Errorf("error querying table structure: %w", err)
	}
	defer rows.Close()

	columns := []dto.ColumnInfo{}
	for rows.Next() {
		var col dto.ColumnInfo
		if err := rows.Scan(&col.ColumnName, &col.DataType, &col.IsNullable, &col.ColumnDefault); err != nil {
			return nil, fmt.Errorf("error scanning column info row: %w", err)
		}
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column info rows: %w", err)
	}

	return columns, nil
}

// Sample retrieves up to limit subject rows for diagnostics
func (r *SubjectRepository) Sample(ctx context.Context, limit uint64) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "standard", "subject_name", "board").
		From("subjects").
		OrderBy("id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sample subjects query: %w", err)
	}

	return r.querySubjects(ctx, sql, args)
}
