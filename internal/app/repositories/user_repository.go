package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tutionapp/backend/internal/app/models"
	"github.com/tutionapp/backend/internal/pkg/logger"
)

// UserRepository handles user table database operations
type UserRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *UserRepository) WithTx(tx pgx.Tx) *UserRepository {
	return &UserRepository{db: tx, sb: r.sb}
}

// Create inserts a new user and returns its id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.Password, user.Role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "role").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Name, &user.Email, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}

	return user, nil
}

// GetByCredentials finds the user matching email and password exactly.
// Passwords are compared in plaintext; the caller maps a miss to 401.
func (r *UserRepository) GetByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "role").
		From("users").
		Where(squirrel.Eq{"email": email, "password": password}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build credentials query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Name, &user.Email, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing credentials query")
		return nil, fmt.Errorf("error querying credentials: %w", err)
	}

	return user, nil
}

// EmailExists reports whether any user row has the given email.
// Uniqueness is deliberately an application-level check, not a constraint.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.emailExists(ctx, squirrel.Eq{"email": email})
}

// EmailExistsForOther reports whether a user other than excludeID has the email
func (r *UserRepository) EmailExistsForOther(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.emailExists(ctx, squirrel.And{
		squirrel.Eq{"email": email},
		squirrel.NotEq{"id": excludeID},
	})
}

func (r *UserRepository) emailExists(ctx context.Context, pred interface{}) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(pred).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Msg("Error checking email existence")
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// GetByIDAndRole retrieves a user by id restricted to a role
func (r *UserRepository) GetByIDAndRole(ctx context.Context, id int64, role models.Role) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "role").
		From("users").
		Where(squirrel.Eq{"id": id, "role": role}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by role query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Name, &user.Email, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Str("role", string(role)).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by id and role: %w", err)
	}

	return user, nil
}

// ListByRole retrieves all users with the given role
func (r *UserRepository) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "role").
		From("users").
		Where(squirrel.Eq{"role": role}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("role", string(role)).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// CountByIDsAndRole counts how many of the given ids exist with the role.
// Callers use it to verify an id list references only real students.
func (r *UserRepository) CountByIDsAndRole(ctx context.Context, ids []int64, role models.Role) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"id": ids, "role": role}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count users query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting users by ids")
		return 0, fmt.Errorf("error counting users: %w", err)
	}

	return count, nil
}

// UpdateNameEmail updates a user's name and email
func (r *UserRepository) UpdateNameEmail(ctx context.Context, id int64, name, email string) error {
	sql, args, err := r.sb.Update("users").
		SetMap(map[string]interface{}{
			"name":  name,
			"email": email,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a user row by id
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
