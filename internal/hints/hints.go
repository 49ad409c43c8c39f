// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-quotepdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForTemplatesDir returns hints when the templates directory is unusable.
// Inside a container the directory is usually a missing volume mount.
func ForTemplatesDir() string {
	var hints []string
	if IsInContainer() {
		hints = append(hints, "mount the templates volume")
	}
	if os.Getenv("QUOTEPDF_TEMPLATES_DIR") == "" {
		hints = append(hints, "set --templates or QUOTEPDF_TEMPLATES_DIR")
	}
	return formatHints(hints)
}

// ForDefaultTemplate returns a hint when the default template cannot load
// at startup.
func ForDefaultTemplate(id string) string {
	return format("add " + id + "/template.yaml to the templates directory, or set templates.default")
}

// ForTemplateNotFound lists the available template ids.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForLayout lists the layouts a manifest may select.
func ForLayout(layouts []string) string {
	return format("set layout: to one of " + strings.Join(layouts, ", ") + " in template.yaml")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-quotepdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-quotepdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForFonts returns a hint for unusable font files.
func ForFonts() string {
	return format("fonts.dir must hold TrueType files; unset it to use the built-in Helvetica")
}

// ForRequestFile returns a hint for unreadable request files.
func ForRequestFile() string {
	return format("request files are JSON or YAML objects; use - to read stdin")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
