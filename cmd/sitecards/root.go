package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/sitecards/internal/config"
	"github.com/gyeh/sitecards/internal/exitcode"
	"github.com/gyeh/sitecards/internal/ingest"
)

var cfg config.Config

// configFile is the optional YAML file merged under flags and env.
var configFile string

// dotenvErr is computed before any init() runs, so .env values are visible
// when flag defaults are read from the environment.
var dotenvErr = config.LoadDotEnv()

// envKeys names the environment variables that default each flag.
var envKeys = map[string][]string{
	"log-format":       {"SITECARDS_LOG_FORMAT"},
	"log-level":        {"SITECARDS_LOG_LEVEL"},
	"listen":           {"SITECARDS_LISTEN"},
	"source":           {"SITECARDS_SOURCE"},
	"watch":            {"SITECARDS_WATCH"},
	"fetch-timeout":    {"SITECARDS_FETCH_TIMEOUT"},
	"max-upload-bytes": {"SITECARDS_MAX_UPLOAD_BYTES"},
	"cors-origins":     {"SITECARDS_CORS_ORIGINS"},
	"prefs":            {"SITECARDS_PREFS"},
	"prefs-path":       {"SITECARDS_PREFS_PATH"},
	"prefs-profile":    {"SITECARDS_PREFS_PROFILE"},
	"default-theme":    {"SITECARDS_THEME"},
	"dsn":              {"SITECARDS_DSN", "DATABASE_URL"},
	"redis-addr":       {"SITECARDS_REDIS_ADDR", "REDIS_ADDR"},
}

var rootCmd = &cobra.Command{
	Use:   "sitecards",
	Short: "Service-site sheet → browsable cards",
	Long: "Loads the street-team service-site sheet (CSV, XLSX or Parquet, local or remote) " +
		"and serves it as filterable cards with an HTML and JSON interface.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if dotenvErr != nil {
			return dotenvErr
		}
		if configFile == "" {
			return nil
		}
		explicit := func(flag string) bool {
			return cmd.Flags().Changed(flag) || envSet(flag)
		}
		return cfg.LoadFromFile(configFile, explicit)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", os.Getenv("SITECARDS_CONFIG"), "YAML config file (or set SITECARDS_CONFIG)")
	pf.StringVar(&cfg.LogFormat, "log-format", envString("log-format", "text"), "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", envString("log-level", "info"), "Log level: debug, info, warn, error")
	pf.StringVar(&cfg.DSN, "dsn", envString("dsn", ""), "Postgres connection string (or set DATABASE_URL)")
}

func envSet(flag string) bool {
	return config.Env("", envKeys[flag]...) != ""
}

func envString(flag, def string) string {
	return config.Env(def, envKeys[flag]...)
}

func envBool(flag string, def bool) bool {
	v, err := strconv.ParseBool(config.Env("", envKeys[flag]...))
	if err != nil {
		return def
	}
	return v
}

func envDuration(flag string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(config.Env("", envKeys[flag]...))
	if err != nil {
		return def
	}
	return v
}

func envInt64(flag string, def int64) int64 {
	v, err := strconv.ParseInt(config.Env("", envKeys[flag]...), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// loadExitCode maps a failed load onto the process exit code.
func loadExitCode(err error) int {
	switch ingest.PhaseOf(err) {
	case ingest.PhaseRead:
		return exitcode.ReadError
	case ingest.PhaseParse, ingest.PhaseSanitize:
		return exitcode.ParseError
	}
	return exitcode.ReadError
}

func printf(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}
