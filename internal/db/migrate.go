package db

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/sitecards/internal/sql"
)

const createVersionTable = `
CREATE SCHEMA IF NOT EXISTS app;
CREATE TABLE IF NOT EXISTS app.schema_migrations (
    name        TEXT PRIMARY KEY,
    applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// ApplyMigrations runs the embedded SQL migrations that have not been applied
// yet, in filename order, each in its own transaction. It returns the number
// of migrations applied by this call.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) (int, error) {
	if _, err := pool.Exec(ctx, createVersionTable); err != nil {
		return 0, fmt.Errorf("create migrations table: %w", err)
	}

	entries, err := fs.ReadDir(embedsql.Migrations, "migrations")
	if err != nil {
		return 0, fmt.Errorf("read migrations dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	applied := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		data, err := fs.ReadFile(embedsql.Migrations, "migrations/"+name)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}

		ran, err := applyOne(ctx, pool, name, string(data))
		if err != nil {
			return applied, err
		}
		if !ran {
			log.Debug().Str("migration", name).Msg("already applied")
			continue
		}
		log.Info().Str("migration", name).Msg("applied migration")
		applied++
	}

	log.Info().Int("applied", applied).Int("total", len(entries)).Msg("migrations complete")
	return applied, nil
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, name, body string) (bool, error) {
	ran := false
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			"INSERT INTO app.schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", name)
		if err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, body); err != nil {
			return fmt.Errorf("execute migration %s: %w", name, err)
		}
		ran = true
		return nil
	})
	return ran, err
}
