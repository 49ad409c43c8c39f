package main

import (
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-quotepdf/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config    string
	templates string
	logLevel  string
	logFormat string
}

func (g *globalFlags) register(fs *flag.FlagSet) {
	fs.StringVarP(&g.config, "config", "c", "", "config file path or name (env QUOTEPDF_CONFIG)")
	fs.StringVar(&g.templates, "templates", "", "template bundles directory (env QUOTEPDF_TEMPLATES_DIR)")
	fs.StringVar(&g.logLevel, "log-level", "", "trace, debug, info, warn, error or disabled")
	fs.StringVar(&g.logFormat, "log-format", "", "console or json")
}

// apply overrides config values with the flags that were set.
func (g *globalFlags) apply(cfg *config.Config) {
	if g.templates != "" {
		cfg.Templates.Dir = g.templates
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
}

// renderFlags configure the render subcommand.
type renderFlags struct {
	output   string
	template string
	workers  int
	stdout   bool
	quiet    bool
}

func (f *renderFlags) register(fs *flag.FlagSet) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (env QUOTEPDF_OUTPUT_DIR, default .)")
	fs.StringVarP(&f.template, "template", "t", "", "template id, overrides the request's")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")
	fs.BoolVar(&f.stdout, "stdout", false, "write the PDF of a single request to stdout")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only report failures")
}

// serveFlags configure the serve subcommand.
type serveFlags struct {
	addr      string
	publicDir string
	publicURL string
}

func (f *serveFlags) register(fs *flag.FlagSet) {
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (env QUOTEPDF_ADDR, default :3000)")
	fs.StringVar(&f.publicDir, "public-dir", "", "directory for generated files (env QUOTEPDF_PUBLIC_DIR)")
	fs.StringVar(&f.publicURL, "public-url", "", "prefix of returned file URLs (env QUOTEPDF_PUBLIC_URL)")
}

// apply overrides server config values with the flags that were set.
func (f *serveFlags) apply(cfg *config.Config) {
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if f.publicDir != "" {
		cfg.Server.PublicDir = f.publicDir
	}
	if f.publicURL != "" {
		cfg.Server.PublicURL = f.publicURL
	}
}
