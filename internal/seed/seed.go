package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/arjun/hostelmate/internal/app/models"
	appRepos "github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	pkgAuth "github.com/arjun/hostelmate/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@hostelmate.local"
	defaultAdminPassword = "ChangeMe123!"
)

// CreateDefaultData ensures a platform admin account exists so a fresh
// deployment can be administered before any director registers.
// The credentials can be overridden with ADMIN_EMAIL and ADMIN_PASSWORD.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = defaultAdminEmail
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = defaultAdminPassword
	}

	lgr.Info().Msg("Checking/Creating default admin account...")

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}
	if exists {
		lgr.Debug().Str("email", adminEmail).Msg("Default admin account already present")
		return nil
	}

	hashedPassword, err := pkgAuth.HashPassword(adminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Email:     adminEmail,
		Password:  hashedPassword,
		FirstName: "Platform",
		LastName:  "Admin",
		RoleType:  appModels.RoleAdmin,
		IsActive:  true,
	}

	id, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		// A concurrent instance may have created the account between the check and the insert
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", adminEmail).Msg("Default admin account created concurrently")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Int64("userId", id).Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
