package quotepdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf/internal/assets"
	"github.com/alnah/go-quotepdf/internal/dateutil"
	"github.com/alnah/go-quotepdf/internal/fileutil"
	"github.com/alnah/go-quotepdf/internal/pdfrender"
	"github.com/alnah/go-quotepdf/internal/quote"
	"github.com/alnah/go-quotepdf/internal/registry"
)

// Worker sizing for batch rendering.
const (
	MinWorkers = 1
	MaxWorkers = 16
)

// Resolver resolves a template id to a renderer.
type Resolver interface {
	Resolve(id string) (Renderer, error)
}

// Compile-time interface check.
var _ Resolver = (*registry.Registry)(nil)

// Generator renders requests through a template resolver and a PDF backend.
// It is safe for concurrent use.
type Generator struct {
	reg     Resolver
	backend Backend
	log     zerolog.Logger
	now     func() time.Time
	fonts   FontSet
}

// Option configures a Generator.
type Option func(*Generator)

// WithBackend replaces the gofpdf backend.
func WithBackend(b Backend) Option {
	return func(g *Generator) { g.backend = b }
}

// WithLogger sets the logger for normalization and rendering diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithClock sets the time source for "auto" dates and fallback filenames.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithFonts embeds a UTF-8 font set in the default backend. Ignored when
// WithBackend is given.
func WithFonts(fs FontSet) Option {
	return func(g *Generator) { g.fonts = fs }
}

// NewGenerator creates a Generator.
func NewGenerator(reg Resolver, opts ...Option) *Generator {
	g := &Generator{reg: reg, log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.backend == nil {
		g.backend = pdfrender.NewGoFPDF(
			pdfrender.WithFonts(g.fonts),
			pdfrender.WithLogger(g.log.With().Str("component", "pdfrender").Logger()),
		)
	}
	return g
}

// LoadTemplates opens the template bundles under dir, layered over the
// embedded default bundle. An empty dir serves the embedded bundle only.
// It fails when the default template cannot be loaded.
func LoadTemplates(dir, defaultID string, log zerolog.Logger) (*Registry, error) {
	src, err := assets.NewResolver(dir)
	if err != nil {
		return nil, fmt.Errorf("opening templates: %w", err)
	}
	return registry.New(src,
		registry.WithLogger(log.With().Str("component", "registry").Logger()),
		registry.WithDefault(defaultID),
	)
}

// DecodeJSON normalizes a JSON request body. Diagnostics are logged as
// warnings.
func (g *Generator) DecodeJSON(raw []byte) (*Request, error) {
	req, diags, err := quote.Normalize(raw)
	return g.decoded(req, diags, err)
}

// DecodeYAML normalizes a YAML request document.
func (g *Generator) DecodeYAML(raw []byte) (*Request, error) {
	req, diags, err := quote.NormalizeYAML(raw)
	return g.decoded(req, diags, err)
}

func (g *Generator) decoded(req *Request, diags []Diagnostic, err error) (*Request, error) {
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		g.log.Warn().Str("field", d.Field).Msg(d.Message)
	}
	return req, nil
}

// Build resolves the request's template and renders its document
// definition. The request is not modified.
func (g *Generator) Build(req *Request) (*Document, Renderer, error) {
	if req == nil {
		return nil, nil, &InvalidInputError{Err: errors.New("nil request")}
	}
	c := req.Clone()
	if date, err := dateutil.Display(c.Quotation.Date, g.now()); err != nil {
		g.log.Warn().Err(err).Str("date", c.Quotation.Date).Msg("date kept as written")
	} else {
		c.Quotation.Date = date
	}

	r, err := g.reg.Resolve(c.TemplateID)
	if err != nil {
		return nil, nil, err
	}
	doc, err := r.Render(c)
	if err != nil {
		return nil, nil, err
	}
	g.log.Debug().Str("template", r.Name()).Str("layout", r.Layout()).Str("ref", c.Quotation.RefNo).Msg("document built")
	return doc, r, nil
}

// Generate renders req and streams the PDF to w.
func (g *Generator) Generate(ctx context.Context, req *Request, w io.Writer) error {
	_, err := g.Render(ctx, req, w)
	return err
}

// Render is Generate returning the filename the PDF should be saved or
// served under.
func (g *Generator) Render(ctx context.Context, req *Request, w io.Writer) (string, error) {
	doc, r, err := g.Build(req)
	if err != nil {
		return "", err
	}
	if err := g.backend.Render(ctx, doc, w); err != nil {
		return "", err
	}
	return quote.Filename(r.Name(), req.Quotation.RefNo, g.now()), nil
}

// GenerateFile renders req into dir and returns the written path. The file
// appears only once complete; failures leave nothing behind.
func (g *Generator) GenerateFile(ctx context.Context, req *Request, dir string) (string, error) {
	doc, r, err := g.Build(req)
	if err != nil {
		return "", err
	}
	name := quote.Filename(r.Name(), req.Quotation.RefNo, g.now())
	path, err := fileutil.WriteAtomic(dir, name, func(w io.Writer) error {
		return g.backend.Render(ctx, doc, w)
	})
	if err != nil {
		if !errors.Is(err, ErrRenderBackend) {
			err = &RenderBackendError{Op: "write", Err: err}
		}
		return "", err
	}
	g.log.Info().Str("template", r.Name()).Str("path", path).Msg("quotation written")
	return path, nil
}

// ResolveWorkers returns the batch worker count: an explicit positive
// value, else GOMAXPROCS bounded to [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	return min(max(runtime.GOMAXPROCS(0), MinWorkers), MaxWorkers)
}
