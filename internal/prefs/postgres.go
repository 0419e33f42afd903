package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	embedsql "github.com/gyeh/sitecards/internal/sql"
)

// DefaultProfile is the preference row used when no profile is configured.
const DefaultProfile = "default"

// PostgresStore keeps preferences in app.preferences, one row per profile.
type PostgresStore struct {
	pool    *pgxpool.Pool
	profile string
}

func NewPostgresStore(pool *pgxpool.Pool, profile string) *PostgresStore {
	if profile == "" {
		profile = DefaultProfile
	}
	return &PostgresStore{pool: pool, profile: profile}
}

func (s *PostgresStore) Load(ctx context.Context) (Prefs, error) {
	var theme string
	err := s.pool.QueryRow(ctx, embedsql.LoadPreferences, s.profile).Scan(&theme)
	if errors.Is(err, pgx.ErrNoRows) {
		return Prefs{}, ErrNotFound
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("load preferences for %q: %w", s.profile, err)
	}
	return Prefs{Theme: Theme(theme)}, nil
}

func (s *PostgresStore) Save(ctx context.Context, p Prefs) error {
	if _, err := s.pool.Exec(ctx, embedsql.SavePreferences, s.profile, string(p.Theme)); err != nil {
		return fmt.Errorf("save preferences for %q: %w", s.profile, err)
	}
	return nil
}
