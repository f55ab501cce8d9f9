// Package logging configures structured logging for the billed binaries.
//
// Usage:
//
//	logger := logging.Setup(cfg.Env)         // handler chosen by environment
//	logging.SetupWithLevel("local", slog.LevelDebug)
//
// Environments:
//
//	local: colored tint output on stderr
//	dev:   JSON on stdout
//	prod:  JSON on stdout
//
// LOG_LEVEL (debug, info, warn, error) overrides the environment's default level.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Setup installs the default logger for env and returns it.
func Setup(env string) *slog.Logger {
	return SetupWithLevel(env, levelFromEnv(defaultLevel(env)))
}

// SetupWithLevel installs the default logger for env at the given level.
func SetupWithLevel(env string, level slog.Level) *slog.Logger {
	logger := New(env, level, nil)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger without touching the process default. A nil w selects
// stderr for local and stdout otherwise.
func New(env string, level slog.Level, w io.Writer) *slog.Logger {
	switch env {
	case EnvDev, EnvProd:
		if w == nil {
			w = os.Stdout
		}
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	default:
		if w == nil {
			w = os.Stderr
		}
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}))
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultLevel(env string) slog.Level {
	if env == EnvProd {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

func levelFromEnv(fallback slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
