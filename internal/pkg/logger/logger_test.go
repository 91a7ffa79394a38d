package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultLoggerEmitsBeforeConfigure(t *testing.T) {
	var buf bytes.Buffer
	l := newDefaultLogger(&buf)

	l.Error().Str("path", "configs/config.yaml").Msg("Failed to load configuration")

	out := buf.String()
	if !strings.Contains(out, "Failed to load configuration") {
		t.Fatalf("expected startup error to be written, got %q", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Fatalf("expected error level in output, got %q", out)
	}
}

func TestConfigureRedirectsOutput(t *testing.T) {
	orig := defaultLogger
	defer func() {
		defaultLogger = orig
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}()

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("below threshold")
	Warn().Msg("at threshold")

	out := buf.String()
	if strings.Contains(out, "below threshold") {
		t.Fatalf("info message should be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "at threshold") {
		t.Fatalf("expected warn message in output, got %q", out)
	}
}
