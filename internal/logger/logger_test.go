package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidConfig", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json respects level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l, err := New(Config{Level: "warn", Format: FormatJSON, Output: &buf})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		l.Info().Msg("hidden")
		l.Warn().Msg("shown")
		out := buf.String()
		if strings.Contains(out, "hidden") || !strings.Contains(out, `"message":"shown"`) {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("console is plain text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l, err := New(Config{Format: FormatConsole, Output: &buf})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		l.Info().Msg("hello")
		if out := buf.String(); !strings.Contains(out, "hello") || strings.HasPrefix(out, "{") {
			t.Errorf("output = %q, want console line", out)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		if _, err := New(Config{Format: "xml"}); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("New() error = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := WithRequestID(WithComponent(zerolog.New(&buf), "registry"), "abc")
	l.Info().Msg("x")
	out := buf.String()
	if !strings.Contains(out, `"component":"registry"`) || !strings.Contains(out, `"request_id":"abc"`) {
		t.Errorf("output = %q", out)
	}
}
