// Package xlog configures the process-wide zerolog logger used by the CLI
// demo and, optionally, by library callers that want progress output.
package xlog

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a leveled, human-readable console logger, honoring a
// LOG_LEVEL-style level string (defaults to "info" on parse failure).
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// FromEnv builds a logger using LOG_LEVEL from the environment, defaulting
// to "info" when unset.
func FromEnv() zerolog.Logger {
	return New(getEnv("LOG_LEVEL", "info"))
}
