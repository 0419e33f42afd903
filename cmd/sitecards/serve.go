package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gyeh/sitecards/internal/config"
	"github.com/gyeh/sitecards/internal/db"
	"github.com/gyeh/sitecards/internal/exitcode"
	"github.com/gyeh/sitecards/internal/ingest"
	"github.com/gyeh/sitecards/internal/logging"
	"github.com/gyeh/sitecards/internal/metrics"
	"github.com/gyeh/sitecards/internal/prefs"
	"github.com/gyeh/sitecards/internal/sites"
	"github.com/gyeh/sitecards/internal/watch"
	"github.com/gyeh/sitecards/internal/web"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the site sheet and serve the cards over HTTP",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&cfg.ListenAddr, "listen", envString("listen", config.DefaultListenAddr), "HTTP listen address")
	f.StringVar(&cfg.Source, "source", envString("source", config.DefaultSource), "Site sheet path or http(s) URL")
	f.BoolVar(&cfg.Watch, "watch", envBool("watch", false), "Reload when the local source file changes")
	f.DurationVar(&cfg.FetchTimeout, "fetch-timeout", envDuration("fetch-timeout", config.DefaultFetchTimeout), "Timeout for fetching a remote source")
	f.Int64Var(&cfg.MaxUploadBytes, "max-upload-bytes", envInt64("max-upload-bytes", config.DefaultMaxUploadBytes), "Largest accepted upload")
	f.StringSliceVar(&cfg.CORSOrigins, "cors-origins", splitList(envString("cors-origins", "")), "Origins allowed to call /api (default any)")
	f.StringVar(&cfg.PrefsBackend, "prefs", envString("prefs", config.BackendFile), "Preference store: memory, file, postgres or redis")
	f.StringVar(&cfg.PrefsPath, "prefs-path", envString("prefs-path", config.DefaultPrefsPath), "Preference file for the file backend")
	f.StringVar(&cfg.PrefsProfile, "prefs-profile", envString("prefs-profile", prefs.DefaultProfile), "Preference profile for the postgres backend")
	f.StringVar(&cfg.DefaultTheme, "default-theme", envString("default-theme", string(prefs.ThemeLight)), "Theme used until one is saved")
	f.StringVar(&cfg.RedisAddr, "redis-addr", envString("redis-addr", ""), "Redis address for the redis backend (or set REDIS_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateServe(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, code, err := openPrefsStore(ctx, log)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.PrefsBackend).Msg("preference store unavailable")
		os.Exit(code)
	}
	defer closeStore()

	theme, _ := prefs.ParseTheme(cfg.DefaultTheme)
	state, err := prefs.NewState(ctx, store, theme, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to load preferences")
		os.Exit(exitcode.PrefsError)
	}

	m := metrics.New()
	records := sites.NewStore()
	loader := ingest.NewLoader(records, ingest.NewFetcher(cfg.FetchTimeout), m, log)
	src := ingest.SourceFromLocation(cfg.Source)

	// A failed first load still serves: the page shows no cards and the
	// reload button can retry once the source is fixed.
	if _, err := loader.Load(ctx, src); err != nil {
		log.Warn().Err(err).Str("phase", ingest.PhaseOf(err)).Str("source", cfg.Source).
			Msg("initial load failed; serving an empty record set")
	}

	srv, err := web.New(web.Options{
		Store:          records,
		Loader:         loader,
		State:          state,
		Metrics:        m,
		Log:            log,
		Source:         src,
		MaxUploadBytes: cfg.MaxUploadBytes,
		CORSOrigins:    cfg.CORSOrigins,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to build web server")
		os.Exit(exitcode.ServeError)
	}

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.ListenAddr).Str("source", cfg.Source).Msg("serving site cards")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	if cfg.Watch {
		reload := src
		reload.SkipUnchanged = true
		w := watch.New(src.Path, func(ctx context.Context) error {
			_, err := loader.Load(ctx, reload)
			return err
		}, watch.DefaultDebounce, log)
		g.Go(func() error { return w.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(exitcode.ServeError)
	}
	return nil
}

// openPrefsStore builds the configured preference backend. The returned
// close func releases its connections; code is the exit code for err.
func openPrefsStore(ctx context.Context, log zerolog.Logger) (prefs.Store, func(), int, error) {
	nop := func() {}
	switch cfg.PrefsBackend {
	case config.BackendMemory:
		return prefs.NewMemoryStore(), nop, 0, nil
	case config.BackendFile:
		return prefs.NewFileStore(cfg.PrefsPath), nop, 0, nil
	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			return nil, nop, exitcode.DBConnError, err
		}
		if _, err := db.ApplyMigrations(ctx, pool, log); err != nil {
			pool.Close()
			return nil, nop, exitcode.PrefsError, err
		}
		return prefs.NewPostgresStore(pool, cfg.PrefsProfile), pool.Close, 0, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nop, exitcode.PrefsError, err
		}
		return prefs.NewRedisStore(client), func() { _ = client.Close() }, 0, nil
	}
	return nil, nop, exitcode.UsageError, errors.New("unknown preference backend " + cfg.PrefsBackend)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
