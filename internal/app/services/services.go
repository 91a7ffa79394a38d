package services

// Services defined in this package:
// - AuthService: credential verification for the admin login screen
// - SubjectService: subject catalog CRUD and database diagnostics
// - StudentService: student registration, listing and enrollment updates
// - FacultyService: faculty registration and subject-set reconciliation
// - MappingService: faculty/student mapping built on enrollment overlap

import (
	"context"

	"github.com/tutionapp/backend/internal/db"
)

// Database is the transactional surface the services need.
// *db.PostgresDB satisfies it.
type Database interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}
