package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/app/models/dto"
	"github.com/tutionapp/backend/internal/pkg/logger"
)

// EnrollmentRepository handles the enrollments join table pairing students
// with subjects. This table is the source of truth for which students are
// relevant to a faculty: relevance is derived by subject overlap, never
// stored.
type EnrollmentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db Querier) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *EnrollmentRepository) WithTx(tx pgx.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{db: tx, sb: r.sb}
}

// Create inserts an enrollment unless the pair already exists. Returns
// whether a row was actually created, so callers can report created vs
// skipped counts.
func (r *EnrollmentRepository) Create(ctx context.Context, studentID, subjectID int64) (bool, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "subject_id").
		Values(studentID, subjectID).
		Suffix("ON CONFLICT (student_id, subject_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("subjectID", subjectID).Msg("Error creating enrollment")
		return false, fmt.Errorf("error creating enrollment: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// ListSubjectsByStudent returns the subjects the student is enrolled in
func (r *EnrollmentRepository) ListSubjectsByStudent(ctx context.Context, studentID int64) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("s.id", "s.standard", "s.subject_name", "s.board").
		From("subjects s").
		Join("enrollments e ON e.subject_id = s.id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("s.standard ASC", "s.subject_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student subjects query: %w", err)
	}

	return r.querySubjects(ctx, sql, args)
}

// ListSubjectsByStudentIn returns the student's subjects restricted to the
// given subject-id set: the subjects a student shares with a faculty.
func (r *EnrollmentRepository) ListSubjectsByStudentIn(ctx context.Context, studentID int64, subjectIDs []int64) ([]*models.Subject, error) {
	if len(subjectIDs) == 0 {
		return []*models.Subject{}, nil
	}

	sql, args, err := r.sb.Select("s.id", "s.standard", "s.subject_name", "s.board").
		From("subjects s").
		Join("enrollments e ON e.subject_id = s.id").
		Where(squirrel.Eq{"e.student_id": studentID, "e.subject_id": subjectIDs}).
		OrderBy("s.standard ASC", "s.subject_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student subjects-in query: %w", err)
	}

	return r.querySubjects(ctx, sql, args)
}

func (r *EnrollmentRepository) querySubjects(ctx context.Context, sql string, args []interface{}) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing enrollment subjects query")
		return nil, fmt.Errorf("error querying enrolled subjects: %w", err)
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

// ListStudentsBySubjects returns the distinct students enrolled in any of
// the given subjects: the derived "students of this faculty" set.
func (r *EnrollmentRepository) ListStudentsBySubjects(ctx context.Context, subjectIDs []int64) ([]dto.StudentSummary, error) {
	if len(subjectIDs) == 0 {
		return []dto.StudentSummary{}, nil
	}

	sql, args, err := r.sb.Select("DISTINCT u.id", "u.name", "u.email").
		From("users u").
		Join("enrollments e ON e.student_id = u.id").
		Where(squirrel.Eq{"e.subject_id": subjectIDs, "u.role": models.RoleStudent}).
		OrderBy("u.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build students by subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students by subjects")
		return nil, fmt.Errorf("error querying students by subjects: %w", err)
	}
	defer rows.Close()

	students := []dto.StudentSummary{}
	for rows.Next() {
		var s dto.StudentSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// ListStudentIDsBySubjects returns the distinct student ids enrolled in any
// of the given subjects.
func (r *EnrollmentRepository) ListStudentIDsBySubjects(ctx context.Context, subjectIDs []int64) ([]int64, error) {
	if len(subjectIDs) == 0 {
		return []int64{}, nil
	}

	sql, args, err := r.sb.Select("DISTINCT student_id").
		From("enrollments").
		Where(squirrel.Eq{"subject_id": subjectIDs}).
		OrderBy("student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student ids by subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying student ids by subjects")
		return nil, fmt.Errorf("error querying student ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning student id row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student id rows: %w", err)
	}

	return ids, nil
}

// DeleteByStudent removes every enrollment of the student
func (r *EnrollmentRepository) DeleteByStudent(ctx context.Context, studentID int64) (int64, error) {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete enrollments query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error deleting student enrollments")
		return 0, fmt.Errorf("error deleting student enrollments: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// DeleteByStudentAndSubjects removes the student's enrollments restricted
// to the given subject set.
func (r *EnrollmentRepository) DeleteByStudentAndSubjects(ctx context.Context, studentID int64, subjectIDs []int64) (int64, error) {
	if len(subjectIDs) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"student_id": studentID, "subject_id": subjectIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build scoped delete enrollments query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error deleting scoped enrollments")
		return 0, fmt.Errorf("error deleting scoped enrollments: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// DeleteByStudentsAndSubjects removes enrollments for the given students
// restricted to the given subject set. Used when subjects are removed from
// a faculty.
func (r *EnrollmentRepository) DeleteByStudentsAndSubjects(ctx context.Context, studentIDs, subjectIDs []int64) (int64, error) {
	if len(studentIDs) == 0 || len(subjectIDs) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"student_id": studentIDs, "subject_id": subjectIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk delete enrollments query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error bulk deleting enrollments")
		return 0, fmt.Errorf("error bulk deleting enrollments: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Retarget moves one of the student's enrollments from oldSubjectID to
// newSubjectID. Returns the number of rows updated.
func (r *EnrollmentRepository) Retarget(ctx context.Context, studentID, oldSubjectID, newSubjectID int64) (int64, error) {
	sql, args, err := r.sb.Update("enrollments").
		Set("subject_id", newSubjectID).
		Where(squirrel.Eq{"student_id": studentID, "subject_id": oldSubjectID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build retarget enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error retargeting enrollment")
		return 0, fmt.Errorf("error retargeting enrollment: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
