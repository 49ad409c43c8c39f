// Package logger builds zerolog loggers from configuration.
//
// Nothing here touches the global zerolog logger; callers pass the result
// down explicitly.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// ErrInvalidConfig indicates an unknown level or format.
var ErrInvalidConfig = errors.New("invalid log config")

// Formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds logging configuration.
type Config struct {
	Level  string    // trace, debug, info, warn, error, disabled
	Format string    // json, console
	Output io.Writer // defaults to stderr
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatConsole, Output: os.Stderr}
}

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: level %q", ErrInvalidConfig, s)
	}
	return level, nil
}

// ValidFormat reports whether f is a known format. Empty is accepted.
func ValidFormat(f string) bool {
	switch strings.ToLower(f) {
	case "", FormatJSON, FormatConsole:
		return true
	}
	return false
}

// New returns a logger with timestamps at the configured level.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if !ValidFormat(cfg.Format) {
		return zerolog.Nop(), fmt.Errorf("%w: format %q", ErrInvalidConfig, cfg.Format)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, FormatConsole) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: !isTerminal(out)}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// WithComponent returns a logger with a component field.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// WithRequestID returns a logger with a request_id field.
func WithRequestID(l zerolog.Logger, id string) zerolog.Logger {
	return l.With().Str("request_id", id).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
