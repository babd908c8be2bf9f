package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anup/resultportal/internal/pkg/logger"
)

// statements are applied in order at startup. Each one is idempotent so
// the migrator can run on every boot without tracking state.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id         BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		login_id   TEXT NOT NULL,
		password   TEXT NOT NULL,
		dob        DATE NOT NULL,
		gender     TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT 'student'
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS accounts_login_id_key ON accounts (login_id)`,
	`CREATE TABLE IF NOT EXISTS students (
		id        BIGSERIAL PRIMARY KEY,
		name      TEXT NOT NULL,
		subject   TEXT NOT NULL,
		school    TEXT NOT NULL,
		dob       DATE NOT NULL,
		mobile_no TEXT NOT NULL,
		gender    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS marksheets (
		id        BIGSERIAL PRIMARY KEY,
		name      TEXT NOT NULL,
		roll_no   TEXT NOT NULL,
		physics   INTEGER,
		chemistry INTEGER,
		maths     INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		token      TEXT PRIMARY KEY,
		account_id BIGINT NOT NULL,
		login_id   TEXT NOT NULL,
		role       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		expires_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS sessions_account_id_idx ON sessions (account_id)`,
}

// Migrator applies the schema at startup
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{db: db}
}

// Migrate applies all schema statements.
func (m *Migrator) Migrate(ctx context.Context) error {
	for _, stmt := range statements {
		if _, err := m.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	logger.Info().Int("statements", len(statements)).Msg("Schema migration complete")
	return nil
}
