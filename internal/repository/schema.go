package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The user_id uniqueness constraint is the sole concurrency mechanism for
// reconciliation: concurrent upserts for the same user can never create two
// rows, and ON CONFLICT makes lookup-then-write a single atomic statement.
const profilesDDL = `
CREATE TABLE IF NOT EXISTS cv_profiles (
    id             BIGSERIAL PRIMARY KEY,
    user_id        TEXT NOT NULL UNIQUE,
    name           TEXT NOT NULL DEFAULT '',
    email          TEXT NOT NULL DEFAULT '',
    phone          TEXT NOT NULL DEFAULT '',
    location       TEXT NOT NULL DEFAULT '',
    linkedin       TEXT NOT NULL DEFAULT '',
    github         TEXT NOT NULL DEFAULT '',
    summary        TEXT NOT NULL DEFAULT '',
    education      JSONB NOT NULL DEFAULT '[]',
    experience     JSONB NOT NULL DEFAULT '[]',
    skills         JSONB NOT NULL DEFAULT '[]',
    languages      JSONB NOT NULL DEFAULT '[]',
    certifications JSONB NOT NULL DEFAULT '[]',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the profiles table if it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	if _, err := pool.Exec(ctx, profilesDDL); err != nil {
		logger.Error("failed to ensure schema", "error", err)
		return err
	}
	logger.Info("database schema ready")
	return nil
}
