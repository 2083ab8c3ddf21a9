package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_LevelParsing(t *testing.T) {
	cases := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"mixed case", "ERROR", zerolog.ErrorLevel},
		{"empty defaults to info", "", zerolog.InfoLevel},
		{"garbage defaults to info", "loud", zerolog.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger(LoggingConfig{Level: tc.level})
			if got := logger.GetLevel(); got != tc.want {
				t.Fatalf("level %q: expected %s, got %s", tc.level, tc.want, got)
			}
		})
	}
}

func TestLoggingOutput_ConsoleFormat(t *testing.T) {
	if _, ok := loggingOutput("console").(zerolog.ConsoleWriter); !ok {
		t.Fatal("expected console writer for format console")
	}
	if _, ok := loggingOutput("json").(zerolog.ConsoleWriter); ok {
		t.Fatal("expected plain writer for format json")
	}
}
