package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is the shared sentinel for lookups that match no row
var ErrNotFound = errors.New("record not found")

// Querier is the subset of pgx operations repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repository code runs
// against the pool or inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles all repository instances
type Repositories struct {
	Users           *UserRepository
	Subjects        *SubjectRepository
	FacultySubjects *FacultySubjectRepository
	Enrollments     *EnrollmentRepository
}

// NewRepositories creates all repositories backed by the given querier,
// usually the connection pool.
func NewRepositories(db Querier) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(db),
		Subjects:        NewSubjectRepository(db),
		FacultySubjects: NewFacultySubjectRepository(db),
		Enrollments:     NewEnrollmentRepository(db),
	}
}
