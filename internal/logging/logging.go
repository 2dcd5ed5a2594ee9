package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"termfolio/internal/config"
)

const defaultLogFileName = "termfolio.log"

// NewLogger builds the process logger and installs it as slog's default.
// Output goes to stdout, and also to a rotated file when LogDir is set.
// environment (TERMFOLIO_ENV) picks the level when none is configured and
// turns colors off in production.
func NewLogger(cfg config.LoggingConfig, environment string) (*slog.Logger, error) {
	level := LevelFor(cfg.Level, environment)
	production := strings.EqualFold(strings.TrimSpace(environment), "production")
	logDir := strings.TrimSpace(cfg.LogDir)
	if logDir == "" {
		logger := newLogger(os.Stdout, level, production).With(slog.String("env", envName(environment)))
		slog.SetDefault(logger)
		return logger, nil
	}

	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		return nil, fmt.Errorf(
			"invalid log config: size=%d backups=%d age_days=%d",
			cfg.MaxSizeMB,
			cfg.MaxBackups,
			cfg.MaxAgeDays,
		)
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir failed: %w", err)
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, defaultLogFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	writer := io.MultiWriter(os.Stdout, logFile)
	logger := newLogger(writer, level, true).With(slog.String("env", envName(environment)))
	slog.SetDefault(logger)
	logger.Info("file_logging_enabled", "path", logFile.Filename)
	return logger, nil
}

func newLogger(writer io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(writer, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}))
}

// LevelFor returns the configured level, or debug in development and info
// everywhere else when level is blank.
func LevelFor(level, environment string) slog.Level {
	if strings.TrimSpace(level) != "" {
		return ParseLevel(level)
	}
	if envName(environment) == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func envName(environment string) string {
	env := strings.ToLower(strings.TrimSpace(environment))
	if env == "" {
		return "development"
	}
	return env
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
