package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/anup/resultportal/internal/app/models"
	"github.com/anup/resultportal/internal/app/repositories"
	"github.com/anup/resultportal/internal/config"
	"github.com/anup/resultportal/internal/pkg/auth"
)

// CreateDefaultAdmin creates the initial admin account when the accounts
// table is empty, so a fresh deployment can be logged into. The password
// comes from config and is always stored hashed.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	var count int64
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("No seed admin password configured, skipping admin account creation")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	accountRepo := repositories.NewAccountRepository(dbPool)
	admin := &models.Account{
		FirstName: "Portal",
		LastName:  "Admin",
		LoginID:   cfg.Seed.AdminLoginID,
		Password:  hash,
		DOB:       time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		Gender:    "other",
		Role:      models.RoleAdmin,
	}

	if err := accountRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create seed admin account: %w", err)
	}

	lgr.Info().Str("loginId", admin.LoginID).Msg("Seed admin account created")
	return nil
}
