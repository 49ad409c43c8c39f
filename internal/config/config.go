// Package config loads the quotepdf configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-quotepdf/internal/fileutil"
	"github.com/alnah/go-quotepdf/internal/logger"
	"github.com/alnah/go-quotepdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxURLLength      = 2048 // Browser limit
	MaxAddrLength     = 255  // host:port
	MaxTemplateLength = 100
	MaxFontNameLength = 255
	MaxLevelLength    = 10
)

// Default values.
const (
	DefaultAddr            = ":3000"
	DefaultPublicDir       = "public"
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 10 * time.Second
	DefaultTemplate        = "default"
)

// userConfigSubdir is the directory searched under os.UserConfigDir.
const userConfigSubdir = "go-quotepdf"

// Config holds all configuration for quotation generation and serving.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Templates TemplatesConfig `yaml:"templates"`
	Fonts     FontsConfig     `yaml:"fonts"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig defines the HTTP server.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	PublicDir       string        `yaml:"public_dir"` // where generated files are written and served
	PublicURL       string        `yaml:"public_url"` // prefix of returned file URLs (empty = "/public")
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TemplatesConfig locates template bundles.
type TemplatesConfig struct {
	Dir     string `yaml:"dir"`     // Empty = embedded default only
	Default string `yaml:"default"` // Fallback template id
}

// FontsConfig names a UTF-8 font set. Empty Dir keeps the core font.
type FontsConfig struct {
	Dir        string `yaml:"dir"`
	Regular    string `yaml:"regular"`
	Bold       string `yaml:"bold"`
	Italic     string `yaml:"italic"`
	BoldItalic string `yaml:"bold_italic"`
}

// OutputConfig defines where the CLI writes PDFs.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Empty = current directory
}

// LogConfig selects level and format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"server.addr", c.Server.Addr, MaxAddrLength},
		{"server.public_dir", c.Server.PublicDir, MaxPathLength},
		{"server.public_url", c.Server.PublicURL, MaxURLLength},
		{"templates.dir", c.Templates.Dir, MaxPathLength},
		{"templates.default", c.Templates.Default, MaxTemplateLength},
		{"fonts.dir", c.Fonts.Dir, MaxPathLength},
		{"fonts.regular", c.Fonts.Regular, MaxFontNameLength},
		{"fonts.bold", c.Fonts.Bold, MaxFontNameLength},
		{"fonts.italic", c.Fonts.Italic, MaxFontNameLength},
		{"fonts.bold_italic", c.Fonts.BoldItalic, MaxFontNameLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"log.level", c.Log.Level, MaxLevelLength},
		{"log.format", c.Log.Format, MaxLevelLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.max_body_bytes must not be negative, got %d", ErrInvalidValue, c.Server.MaxBodyBytes)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must not be negative, got %s", ErrInvalidValue, c.Server.ShutdownTimeout)
	}
	if c.Server.PublicURL != "" && !strings.HasPrefix(c.Server.PublicURL, "/") && !fileutil.IsURL(c.Server.PublicURL) {
		return fmt.Errorf("%w: server.public_url must be absolute or start with /, got %q", ErrInvalidValue, c.Server.PublicURL)
	}
	if c.Fonts.Dir != "" && c.Fonts.Regular == "" {
		return fmt.Errorf("%w: fonts.regular is required when fonts.dir is set", ErrInvalidValue)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	if !logger.ValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format %q (must be json or console)", ErrInvalidValue, c.Log.Format)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that serves the embedded default
// template on :3000.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			PublicDir:       DefaultPublicDir,
			MaxBodyBytes:    DefaultMaxBodyBytes,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Templates: TemplatesConfig{Default: DefaultTemplate},
		Log:       LogConfig{Level: "info", Format: logger.FormatConsole},
	}
}

// NotFoundError lists the locations searched for a config name.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrConfigNotFound }

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in the current directory and then in the user
// config directory. Fields absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Tried: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-quotepdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileutil.FileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			p := filepath.Join(dir, userConfigSubdir, name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}
	return "", &NotFoundError{Tried: tried}
}
