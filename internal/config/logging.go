package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger builds the process logger. JSON on stdout is the default;
// format "console" switches to a human-readable writer for local
// development. The logger is also installed as the zerolog global so
// package-level logging shares the same sink.
func NewLogger(cfg LoggingConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(loggingOutput(cfg.Format)).
		Level(loggingLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "eventure").
		Logger()
	log.Logger = logger
	return logger
}

// loggingLevel falls back to info for empty or unknown level names.
func loggingLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func loggingOutput(format string) io.Writer {
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return os.Stdout
}
