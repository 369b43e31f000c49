package seed

import (
	"context"

	"github.com/Visall666/school-api/internal/db"
	"github.com/Visall666/school-api/internal/pkg/auth"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Default admin account created on a fresh database so the protected API is
// reachable before any user registers.
const (
	defaultAdminName  = "Admin"
	defaultAdminEmail = "admin@school.local"
)

// CreateDefaultData inserts the default admin user if it does not exist yet.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, password string, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			INSERT INTO users (name, email, password)
			VALUES ($1, $2, $3)
			ON CONFLICT (email) DO NOTHING`,
			defaultAdminName, defaultAdminEmail, hashed)
		if err != nil {
			return err
		}

		if cmdTag.RowsAffected() > 0 {
			lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin user created")
		}
		return nil
	})
}
