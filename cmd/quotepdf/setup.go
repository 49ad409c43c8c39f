package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf"
	"github.com/alnah/go-quotepdf/internal/assets"
	"github.com/alnah/go-quotepdf/internal/config"
	"github.com/alnah/go-quotepdf/internal/fileutil"
	"github.com/alnah/go-quotepdf/internal/hints"
	"github.com/alnah/go-quotepdf/internal/logger"
)

// app is the state a subcommand runs with.
type app struct {
	cfg *config.Config
	env *envConfig
	log zerolog.Logger
	reg *quotepdf.Registry
	gen *quotepdf.Generator
}

// setup resolves configuration, then opens the logger, fonts and templates.
// overrides run after env vars and global flags, before validation.
func setup(env *Environment, g *globalFlags, overrides ...func(*config.Config)) (*app, error) {
	ec := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	name := g.config
	if name == "" {
		name = ec.ConfigPath
	}
	cfg, err := loadConfig(name)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(ec, cfg)
	g.apply(cfg)
	for _, o := range overrides {
		o(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: env.Stderr})
	if err != nil {
		return nil, err
	}

	var fonts quotepdf.FontSet
	if cfg.Fonts.Dir != "" {
		if !fileutil.DirExists(cfg.Fonts.Dir) {
			return nil, fmt.Errorf("%w: fonts.dir %q is not a directory%s", quotepdf.ErrAssetLoad, cfg.Fonts.Dir, hints.ForFonts())
		}
		fonts, err = quotepdf.LoadFontSet(cfg.Fonts.Dir, quotepdf.FontFiles{
			Regular:    cfg.Fonts.Regular,
			Bold:       cfg.Fonts.Bold,
			Italic:     cfg.Fonts.Italic,
			BoldItalic: cfg.Fonts.BoldItalic,
		})
		if err != nil {
			return nil, fmt.Errorf("loading fonts: %w%s", err, hints.ForFonts())
		}
	}

	reg, err := quotepdf.LoadTemplates(cfg.Templates.Dir, cfg.Templates.Default, log)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidBasePath) {
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplatesDir())
		}
		return nil, err
	}

	gen := quotepdf.NewGenerator(reg,
		quotepdf.WithLogger(log),
		quotepdf.WithFonts(fonts),
		quotepdf.WithClock(env.Now),
	)
	return &app{cfg: cfg, env: ec, log: log, reg: reg, gen: gen}, nil
}

// loadConfig loads name, or returns the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nf.Tried))
		}
		return nil, err
	}
	return cfg, nil
}
