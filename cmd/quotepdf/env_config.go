package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-quotepdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides container-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // QUOTEPDF_CONFIG: config file path or name
	TemplatesDir string // QUOTEPDF_TEMPLATES_DIR: template bundles directory
	Addr         string // QUOTEPDF_ADDR: serve listen address
	PublicDir    string // QUOTEPDF_PUBLIC_DIR: serve output directory
	PublicURL    string // QUOTEPDF_PUBLIC_URL: prefix of returned file URLs
	OutputDir    string // QUOTEPDF_OUTPUT_DIR: render output directory
	LogLevel     string // QUOTEPDF_LOG_LEVEL
	LogFormat    string // QUOTEPDF_LOG_FORMAT
	Workers      int    // QUOTEPDF_WORKERS: parallel renders
}

// knownEnvVars lists valid QUOTEPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"QUOTEPDF_CONFIG":        true,
	"QUOTEPDF_TEMPLATES_DIR": true,
	"QUOTEPDF_ADDR":          true,
	"QUOTEPDF_PUBLIC_DIR":    true,
	"QUOTEPDF_PUBLIC_URL":    true,
	"QUOTEPDF_OUTPUT_DIR":    true,
	"QUOTEPDF_LOG_LEVEL":     true,
	"QUOTEPDF_LOG_FORMAT":    true,
	"QUOTEPDF_WORKERS":       true,
}

// loadEnvConfig reads the recognized QUOTEPDF_* values.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:   getenv("QUOTEPDF_CONFIG"),
		TemplatesDir: getenv("QUOTEPDF_TEMPLATES_DIR"),
		Addr:         getenv("QUOTEPDF_ADDR"),
		PublicDir:    getenv("QUOTEPDF_PUBLIC_DIR"),
		PublicURL:    getenv("QUOTEPDF_PUBLIC_URL"),
		OutputDir:    getenv("QUOTEPDF_OUTPUT_DIR"),
		LogLevel:     getenv("QUOTEPDF_LOG_LEVEL"),
		LogFormat:    getenv("QUOTEPDF_LOG_FORMAT"),
	}

	// Invalid counts are ignored, like an unset variable.
	if workers := getenv("QUOTEPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for unrecognized QUOTEPDF_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, "QUOTEPDF_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with set variables.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by globalFlags.apply).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.TemplatesDir != "" {
		cfg.Templates.Dir = env.TemplatesDir
	}
	if env.Addr != "" {
		cfg.Server.Addr = env.Addr
	}
	if env.PublicDir != "" {
		cfg.Server.PublicDir = env.PublicDir
	}
	if env.PublicURL != "" {
		cfg.Server.PublicURL = env.PublicURL
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
}
