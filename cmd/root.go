package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds CLI configuration.
type Config struct {
	DataPath    string `envconfig:"DATA"`
	DBPath      string `envconfig:"DB"`
	PageSize    int    `envconfig:"PAGE_SIZE" default:"10"`
	LogFile     string `envconfig:"LOG_FILE"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	ShowVersion bool   `ignored:"true"`
	Version     string `ignored:"true"`
}

// ErrInvalidPageSize is returned when the page size is below one.
var ErrInvalidPageSize = errors.New("page size must be at least 1")

// ParseFlags parses command-line flags and returns configuration.
// Flags override PRODTABLE_* environment variables, which may come from
// .env or .env.local in the working directory.
func ParseFlags(version string) (*Config, error) {
	// Missing .env files are fine.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return parse(flag.CommandLine, os.Args[1:], version)
}

func parse(fs *flag.FlagSet, args []string, version string) (*Config, error) {
	config := &Config{Version: version}
	if err := envconfig.Process("PRODTABLE", config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	fs.StringVar(&config.DataPath, "data", config.DataPath, "Path to a products JSON file (default: bundled dataset)")
	fs.StringVar(&config.DBPath, "db", config.DBPath, "Path to a SQLite database with a products table")
	fs.IntVar(&config.PageSize, "page-size", config.PageSize, "Rows per page")
	fs.StringVar(&config.LogFile, "log-file", config.LogFile, "Write JSON logs to this file (default: no logs)")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if config.PageSize < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPageSize, config.PageSize)
	}
	if config.DataPath != "" && config.DBPath != "" {
		return nil, errors.New("--data and --db cannot be used together")
	}
	return config, nil
}

// SetupLogging builds the application logger. The terminal belongs to the
// UI, so logs are written as JSON to LogFile, or dropped when it is unset.
// The returned closer releases the log file.
func SetupLogging(config *Config) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if config.LogFile == "" {
		return zerolog.New(io.Discard).Level(level), nopCloser{}, nil
	}

	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(f).
		Level(level).
		With().
		Timestamp().
		Str("version", config.Version).
		Logger()
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
