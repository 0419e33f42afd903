package prefs

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/sitecards/internal/db"
)

const (
	testPort     = 15433
	testDB       = "sitecardstest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var testDSN string

func nopLogger() zerolog.Logger { return zerolog.Nop() }

// TestMain starts an embedded Postgres only when SITECARDS_PG_TESTS=1, since
// the first run downloads a Postgres binary.
func TestMain(m *testing.M) {
	if os.Getenv("SITECARDS_PG_TESTS") != "1" {
		os.Exit(m.Run())
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)
	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}
	os.Exit(code)
}

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDSN == "" {
		t.Skip("set SITECARDS_PG_TESTS=1 to run Postgres tests")
	}
	ctx := context.Background()

	pool, err := db.NewPool(ctx, testDSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, "DROP SCHEMA IF EXISTS app CASCADE")
	require.NoError(t, err)

	n, err := db.ApplyMigrations(ctx, pool, nopLogger())
	require.NoError(t, err)
	require.Positive(t, n)

	again, err := db.ApplyMigrations(ctx, pool, nopLogger())
	require.NoError(t, err)
	require.Zero(t, again, "migrations should not re-run")
	return pool
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	store := NewPostgresStore(pool, "")

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, Prefs{Theme: ThemeDark}))
	require.NoError(t, store.Save(ctx, Prefs{Theme: ThemeLight}))

	p, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, p.Theme)

	var rows int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM app.preferences").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestPostgresStoreProfilesAreIndependent(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	kiosk := NewPostgresStore(pool, "kiosk")
	desk := NewPostgresStore(pool, "desk")

	require.NoError(t, kiosk.Save(ctx, Prefs{Theme: ThemeDark}))
	_, err := desk.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStoreRejectsUnknownTheme(t *testing.T) {
	pool := setupDB(t)
	err := NewPostgresStore(pool, "").Save(context.Background(), Prefs{Theme: "sepia"})
	assert.Error(t, err)
}
