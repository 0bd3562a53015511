package config

import (
	"log/slog"
	"os"
	"strings"
)

// SetLogLevel sets the log level for the application from LOG_LEVEL.
func SetLogLevel() {
	level, ok := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if !ok {
		slog.Error("Invalid log level", "level", os.Getenv("LOG_LEVEL"))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// parseLogLevel converts a level name to a slog level. An empty name means info.
func parseLogLevel(name string) (slog.Level, bool) {
	switch strings.ToUpper(name) {
	case "", "INFO":
		return slog.LevelInfo, true
	case "DEBUG":
		return slog.LevelDebug, true
	case "WARN":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
