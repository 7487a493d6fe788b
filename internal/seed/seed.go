package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/config"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
)

// CreateDefaultData seeds the database with the records the application
// expects on first boot: the admin account and the settings singleton.
// Individual failures are collected; seeding is best-effort and the
// server starts regardless.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")

	userRepo := repositories.NewUserRepository(dbPool)
	settingsRepo := repositories.NewSettingsRepository(dbPool)

	var finalErr error

	// --- Default Admin User --- //
	if cfg.Admin.Email == "" {
		lgr.Warn().Msg("Admin email not configured, skipping admin seed")
	} else {
		_, err := userRepo.GetByEmail(ctx, cfg.Admin.Email)
		switch {
		case err == nil:
			// Admin already present.
		case errors.Is(err, apperrors.ErrUserNotFound):
			lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating default admin user...")

			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.SeedPassword), bcrypt.DefaultCost)
			if err != nil {
				lgr.Error().Err(err).Msg("Error hashing admin password")
				finalErr = errors.Join(finalErr, err)
				break
			}

			admin := &models.User{
				Email:     cfg.Admin.Email,
				Password:  string(hashedPassword),
				FirstName: "Site",
				LastName:  "Administrator",
				Role:      models.RoleAdmin,
				Status:    models.UserStatusActive,
			}

			adminID, err := userRepo.Create(ctx, admin)
			if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else if err == nil {
				lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
			}
		default:
			lgr.Error().Err(err).Msg("Error checking if admin user exists")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Site Settings Singleton --- //
	// Get creates the row with defaults when absent.
	if _, err := settingsRepo.Get(ctx); err != nil {
		lgr.Error().Err(err).Msg("Error ensuring site settings row")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation complete.")
	}
	return finalErr
}
