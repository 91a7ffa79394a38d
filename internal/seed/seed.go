package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/tutionapp/backend/internal/app/models"
	appRepos "github.com/tutionapp/backend/internal/app/repositories"
)

// DefaultAdminEmail is the login of the seeded administrator account
const DefaultAdminEmail = "admin@tutionapp.com"

// CreateDefaultData creates the default admin user if no user holds the
// default admin email yet. The admin logs in with the shared demo password.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin user...")

	exists, err := userRepo.EmailExists(ctx, DefaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin user")
		return err
	}
	if exists {
		lgr.Debug().Str("email", DefaultAdminEmail).Msg("Default admin user already present")
		return nil
	}

	id, err := userRepo.Create(ctx, &appModels.User{
		Name:     "Admin",
		Email:    DefaultAdminEmail,
		Password: appModels.DefaultPassword,
		Role:     appModels.RoleAdmin,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Int64("userID", id).Str("email", DefaultAdminEmail).Msg("Default admin user created")
	return nil
}
