package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return p
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Server.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Errorf("Server.MaxBodyBytes = %d, want %d", cfg.Server.MaxBodyBytes, DefaultMaxBodyBytes)
	}
	if cfg.Templates.Default != "default" {
		t.Errorf("Templates.Default = %q, want default", cfg.Templates.Default)
	}
	if cfg.Templates.Dir != "" {
		t.Errorf("Templates.Dir = %q, want empty", cfg.Templates.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty value is valid", "", false},
		{"value at limit is valid", "1234567890", false},
		{"value over limit returns error", "12345678901", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, 10)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if err != nil && !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error %q should name the field", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"long addr", func(c *Config) { c.Server.Addr = strings.Repeat("a", MaxAddrLength+1) }, ErrFieldTooLong},
		{"long template id", func(c *Config) { c.Templates.Default = strings.Repeat("t", MaxTemplateLength+1) }, ErrFieldTooLong},
		{"negative body limit", func(c *Config) { c.Server.MaxBodyBytes = -1 }, ErrInvalidValue},
		{"negative shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, ErrInvalidValue},
		{"relative public url", func(c *Config) { c.Server.PublicURL = "files" }, ErrInvalidValue},
		{"absolute public url", func(c *Config) { c.Server.PublicURL = "https://cdn.example.com/q" }, nil},
		{"path public url", func(c *Config) { c.Server.PublicURL = "/public" }, nil},
		{"font dir without regular", func(c *Config) { c.Fonts.Dir = "/fonts" }, ErrInvalidValue},
		{"font dir with regular", func(c *Config) { c.Fonts = FontsConfig{Dir: "/fonts", Regular: "Roboto-Regular.ttf"} }, nil},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, ErrInvalidValue},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, ErrInvalidValue},
		{"empty log settings", func(c *Config) { c.Log = LogConfig{} }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		p := writeConfig(t, t.TempDir(), "quotepdf.yaml", `
server:
  addr: ":8080"
  public_dir: /srv/public
  public_url: https://quotes.example.com/public
  max_body_bytes: 4096
  shutdown_timeout: 5s
templates:
  dir: /srv/templates
  default: VIG
fonts:
  dir: /srv/fonts
  regular: Roboto-Regular.ttf
  bold: Roboto-Medium.ttf
output:
  dir: out
log:
  level: debug
  format: json
`)
		cfg, err := LoadConfig(p)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Server.Addr != ":8080" || cfg.Server.MaxBodyBytes != 4096 {
			t.Errorf("Server = %+v", cfg.Server)
		}
		if cfg.Server.ShutdownTimeout != 5*time.Second {
			t.Errorf("ShutdownTimeout = %s, want 5s", cfg.Server.ShutdownTimeout)
		}
		if cfg.Templates.Default != "VIG" || cfg.Templates.Dir != "/srv/templates" {
			t.Errorf("Templates = %+v", cfg.Templates)
		}
		if cfg.Fonts.Bold != "Roboto-Medium.ttf" {
			t.Errorf("Fonts.Bold = %q", cfg.Fonts.Bold)
		}
		if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
			t.Errorf("Log = %+v", cfg.Log)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		p := writeConfig(t, t.TempDir(), "quotepdf.yaml", "templates:\n  dir: /srv/templates\n")
		cfg, err := LoadConfig(p)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Server.Addr != DefaultAddr || cfg.Templates.Default != DefaultTemplate {
			t.Errorf("defaults lost: %+v", cfg)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		p := writeConfig(t, t.TempDir(), "quotepdf.yaml", "server:\n  port: 80\n")
		if _, err := LoadConfig(p); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		p := writeConfig(t, t.TempDir(), "quotepdf.yaml", "log:\n  level: loud\n")
		if _, err := LoadConfig(p); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig() error = %v, want ErrEmptyConfigName", err)
		}
	})
}

// Changes the working directory and environment, so not parallel.
func TestLoadConfig_ByName(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	t.Run("current directory", func(t *testing.T) {
		writeConfig(t, ".", "local.yml", "output:\n  dir: here\n")
		cfg, err := LoadConfig("local")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Dir != "here" {
			t.Errorf("Output.Dir = %q, want here", cfg.Output.Dir)
		}
	})

	t.Run("user config directory", func(t *testing.T) {
		dir, err := os.UserConfigDir()
		if err != nil {
			t.Skipf("no user config dir: %v", err)
		}
		writeConfig(t, filepath.Join(dir, userConfigSubdir), "shop.yaml", "output:\n  dir: shop\n")
		cfg, err := LoadConfig("shop")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Dir != "shop" {
			t.Errorf("Output.Dir = %q, want shop", cfg.Output.Dir)
		}
	})

	t.Run("not found lists tried paths", func(t *testing.T) {
		_, err := LoadConfig("absent")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("LoadConfig() error = %v, want *NotFoundError", err)
		}
		if len(nf.Tried) < 2 || nf.Tried[0] != "absent.yaml" || nf.Tried[1] != "absent.yml" {
			t.Errorf("Tried = %v", nf.Tried)
		}
		if !errors.Is(err, ErrConfigNotFound) {
			t.Error("NotFoundError should match ErrConfigNotFound")
		}
	})
}
