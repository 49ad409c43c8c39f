package hints

// Notes:
// - ForTemplatesDir tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable

import (
	"strings"
	"testing"
)

func TestForTemplatesDir_InContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }
	t.Setenv("QUOTEPDF_TEMPLATES_DIR", "")

	hint := ForTemplatesDir()

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "mount the templates volume") {
		t.Error("expected volume suggestion in a container")
	}
	if !strings.Contains(hint, "QUOTEPDF_TEMPLATES_DIR") {
		t.Error("expected environment variable suggestion")
	}
}

func TestForTemplatesDir_AlreadyConfigured(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }
	t.Setenv("QUOTEPDF_TEMPLATES_DIR", "/srv/templates")

	if hint := ForTemplatesDir(); hint != "" {
		t.Errorf("expected no hint, got %q", hint)
	}
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		want      string
	}{
		{"empty list", nil, ""},
		{"ids listed", []string{"AGEMA", "VIG", "default"}, "\n  hint: available: AGEMA, VIG, default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ForTemplateNotFound(tt.available); got != tt.want {
				t.Errorf("ForTemplateNotFound() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	hint := ForConfigNotFound([]string{"quotepdf.yaml", "/home/u/.config/go-quotepdf/quotepdf.yaml"})
	if !strings.Contains(hint, "--config") {
		t.Error("expected --config suggestion")
	}
	if !strings.Contains(hint, "or create /home/u/.config/go-quotepdf/quotepdf.yaml") {
		t.Errorf("expected user config suggestion, got %q", hint)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"default": ForDefaultTemplate("default"),
		"layout":  ForLayout([]string{"agema", "classic", "vig"}),
		"output":  ForOutputDirectory(),
		"fonts":   ForFonts(),
		"request": ForRequestFile(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint = %q, want hint prefix", name, hint)
		}
	}
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
}
