package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	envLogLevel  = "CLONECFG_LOG_LEVEL"
	envLogFormat = "CLONECFG_LOG_FORMAT"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output = out
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from the raw strings of the tool config.
// Any format other than "json" renders through the console writer.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// CLONECFG_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// CLONECFG_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv(envLogLevel); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv(envLogFormat); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// NewWithFile creates a logger that also writes JSON lines to a rotating file.
// The returned closer releases the file.
func NewWithFile(cfg Config, file RotatorConfig) (zerolog.Logger, io.Closer, error) {
	rotator, err := NewLogRotator(file)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}

	console := cfg.Output
	if console == nil {
		console = os.Stderr
	}
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{Out: console, TimeFormat: cfg.TimeFormat}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, rotator, nil
}
