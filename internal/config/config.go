package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/sitecards/internal/prefs"
)

// Preference store backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds all runtime configuration for a sitecards run.
type Config struct {
	ListenAddr     string
	Source         string // local path or http(s) URL of the site sheet
	LogFormat      string // "text" or "json"
	LogLevel       string
	Watch          bool
	FetchTimeout   time.Duration
	MaxUploadBytes int64
	CORSOrigins    []string

	PrefsBackend string
	PrefsPath    string
	PrefsProfile string
	DefaultTheme string
	DSN          string
	RedisAddr    string

	// Command-specific
	FilePath string
	OutPath  string
}

// Defaults for settings given by no flag, variable or config file.
const (
	DefaultListenAddr     = ":8080"
	DefaultSource         = "Street_Team_View.csv"
	DefaultFetchTimeout   = 30 * time.Second
	DefaultMaxUploadBytes = 10 << 20
	DefaultPrefsPath      = ".sitecards/prefs.yaml"
)

// LoadDotEnv reads KEY=value pairs from the given files (".env" when none are
// named) into the process environment. Missing files are ignored and existing
// variables are not overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Env returns the first non-empty environment variable among keys, or def.
func Env(def string, keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

// fileConfig is the on-disk YAML structure. Keys match flag names.
type fileConfig struct {
	Listen         *string        `yaml:"listen"`
	Source         *string        `yaml:"source"`
	LogFormat      *string        `yaml:"log-format"`
	LogLevel       *string        `yaml:"log-level"`
	Watch          *bool          `yaml:"watch"`
	FetchTimeout   *time.Duration `yaml:"fetch-timeout"`
	MaxUploadBytes *int64         `yaml:"max-upload-bytes"`
	CORSOrigins    []string       `yaml:"cors-origins"`
	PrefsBackend   *string        `yaml:"prefs"`
	PrefsPath      *string        `yaml:"prefs-path"`
	PrefsProfile   *string        `yaml:"prefs-profile"`
	DefaultTheme   *string        `yaml:"default-theme"`
	DSN            *string        `yaml:"dsn"`
	RedisAddr      *string        `yaml:"redis-addr"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// A value is skipped when explicit reports that its flag was set on the
// command line, so flags always win over the file. explicit may be nil.
func (c *Config) LoadFromFile(path string, explicit func(flag string) bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file: %w", err)
	}

	if explicit == nil {
		explicit = func(string) bool { return false }
	}
	merge(explicit, "listen", &c.ListenAddr, fc.Listen)
	merge(explicit, "source", &c.Source, fc.Source)
	merge(explicit, "log-format", &c.LogFormat, fc.LogFormat)
	merge(explicit, "log-level", &c.LogLevel, fc.LogLevel)
	merge(explicit, "watch", &c.Watch, fc.Watch)
	merge(explicit, "fetch-timeout", &c.FetchTimeout, fc.FetchTimeout)
	merge(explicit, "max-upload-bytes", &c.MaxUploadBytes, fc.MaxUploadBytes)
	merge(explicit, "prefs", &c.PrefsBackend, fc.PrefsBackend)
	merge(explicit, "prefs-path", &c.PrefsPath, fc.PrefsPath)
	merge(explicit, "prefs-profile", &c.PrefsProfile, fc.PrefsProfile)
	merge(explicit, "default-theme", &c.DefaultTheme, fc.DefaultTheme)
	merge(explicit, "dsn", &c.DSN, fc.DSN)
	merge(explicit, "redis-addr", &c.RedisAddr, fc.RedisAddr)
	if fc.CORSOrigins != nil && !explicit("cors-origins") {
		c.CORSOrigins = fc.CORSOrigins
	}
	return nil
}

func merge[T any](explicit func(string) bool, flag string, dst *T, v *T) {
	if v == nil || explicit(flag) {
		return
	}
	*dst = *v
}

// Validate checks the settings shared by every command.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("--log-format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// ValidateServe checks the settings the serve command needs.
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("--listen is required")
	}
	if _, err := prefs.ParseTheme(c.DefaultTheme); err != nil {
		return fmt.Errorf("--default-theme: %w", err)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("--max-upload-bytes must be positive")
	}
	if c.Watch && isURL(c.Source) {
		return fmt.Errorf("--watch needs a local --source, got %s", c.Source)
	}
	return c.ValidatePrefs()
}

// ValidatePrefs checks that the selected preference backend is configured.
func (c *Config) ValidatePrefs() error {
	switch c.PrefsBackend {
	case BackendMemory:
	case BackendFile:
		if c.PrefsPath == "" {
			return fmt.Errorf("--prefs-path is required for the file backend")
		}
	case BackendPostgres:
		if c.DSN == "" {
			return fmt.Errorf("--dsn or DATABASE_URL is required for the postgres backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("--redis-addr or REDIS_ADDR is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown --prefs backend %q (memory, file, postgres, redis)", c.PrefsBackend)
	}
	return nil
}

// ValidateFile checks that --file names a readable local file.
func (c *Config) ValidateFile() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if isURL(c.FilePath) {
		return nil
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks that a database is configured.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
