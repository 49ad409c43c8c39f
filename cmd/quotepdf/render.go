package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alnah/go-quotepdf"
	"github.com/alnah/go-quotepdf/internal/hints"
)

// stdinArg reads the request from stdin.
const stdinArg = "-"

// Sentinel errors for render.
var (
	ErrReadRequest = errors.New("failed to read request")
	ErrWritePDF    = errors.New("failed to write PDF")
)

func newRenderCmd(env *Environment, g *globalFlags) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render [flags] FILE...",
		Short: "Render quotation requests to PDF files",
		Long: `Render quotation requests to PDF files.

Files ending in .yaml or .yml are read as YAML, anything else as JSON.
Use - to read a single request from stdin. Each PDF is named
Quotation-<template>-<ref>.pdf in the output directory.`,
		Example: `  quotepdf render quote.json
  quotepdf render -o out/ -t VIG requests/*.json
  cat quote.yaml | quotepdf render --stdout - > quote.pdf`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(env, g)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), env, a, f, args)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func runRender(ctx context.Context, env *Environment, a *app, f *renderFlags, files []string) error {
	if n := countStdin(files); n > 1 {
		return fmt.Errorf("%w: stdin (-) can be read once, got %d", ErrUsage, n)
	}
	if f.template != "" && !slices.ContainsFunc(a.reg.Names(), func(n string) bool { return strings.EqualFold(n, f.template) }) {
		fmt.Fprintf(env.Stderr, "warning: template %q not found, using %q%s\n", f.template, a.reg.Default(), hints.ForTemplateNotFound(a.reg.Names()))
	}
	load := func(path string) (*quotepdf.Request, error) {
		return readRequest(env.Stdin, a.gen, path, f.template)
	}

	if f.stdout {
		if len(files) != 1 {
			return fmt.Errorf("%w: --stdout renders exactly one request, got %d", ErrUsage, len(files))
		}
		req, err := load(files[0])
		if err != nil {
			return err
		}
		return a.gen.Generate(ctx, req, env.Stdout)
	}

	outDir := firstNonEmpty(f.output, a.cfg.Output.Dir, ".")
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWritePDF, err, hints.ForOutputDirectory())
	}

	workers := f.workers
	if workers <= 0 {
		workers = a.env.Workers
	}
	workers = quotepdf.ResolveWorkers(workers)
	a.log.Debug().Int("workers", workers).Int("files", len(files)).Msg("rendering batch")

	results := renderBatch(ctx, a.gen, load, files, outDir, workers)
	printResults(env.Stdout, env.Stderr, results, f.quiet)
	return batchError(results)
}

// readRequest reads and normalizes one request. A non-empty template
// replaces the request's own.
func readRequest(stdin io.Reader, gen *quotepdf.Generator, path, template string) (*quotepdf.Request, error) {
	var (
		raw []byte
		err error
	)
	if path == stdinArg {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path) // #nosec G304 -- user-supplied input path
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrReadRequest, err, hints.ForRequestFile())
	}

	var req *quotepdf.Request
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		req, err = gen.DecodeYAML(raw)
	default:
		req, err = gen.DecodeJSON(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForRequestFile())
	}
	if template != "" {
		req.TemplateID = template
	}
	return req, nil
}

func countStdin(files []string) int {
	return len(slices.DeleteFunc(slices.Clone(files), func(f string) bool { return f != stdinArg }))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
