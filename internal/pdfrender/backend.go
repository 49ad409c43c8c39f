// Package pdfrender lays out a docdef.Document and writes it as PDF with
// gofpdf.
//
// Layout runs twice. The first pass only counts pages; the second draws,
// calling the document footer with the page number and the final page
// count. Both passes use the same measurements, so they paginate
// identically.
package pdfrender

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/quote"
)

// Backend writes a document definition as PDF.
type Backend interface {
	Render(ctx context.Context, doc *docdef.Document, w io.Writer) error
}

// GoFPDF is the gofpdf backend. It holds no per-document state and is safe
// for concurrent use.
type GoFPDF struct {
	fonts       FontSet
	log         zerolog.Logger
	createdAt   time.Time
	compression bool
}

// Option configures a GoFPDF backend.
type Option func(*GoFPDF)

// WithFonts embeds a UTF-8 font set instead of the core Helvetica family.
func WithFonts(fs FontSet) Option {
	return func(g *GoFPDF) { g.fonts = fs }
}

// WithLogger sets the logger for skipped images and other diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(g *GoFPDF) { g.log = l }
}

// WithCreationDate pins the PDF creation date, making output reproducible.
func WithCreationDate(t time.Time) Option {
	return func(g *GoFPDF) { g.createdAt = t }
}

// WithCompression toggles stream compression (on by default).
func WithCompression(on bool) Option {
	return func(g *GoFPDF) { g.compression = on }
}

// NewGoFPDF creates a backend.
func NewGoFPDF(opts ...Option) *GoFPDF {
	g := &GoFPDF{log: zerolog.Nop(), compression: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Render lays out doc and streams the PDF to w.
func (g *GoFPDF) Render(ctx context.Context, doc *docdef.Document, w io.Writer) error {
	pdf, err := g.layout(ctx, doc)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return &quote.RenderBackendError{Op: "write", Err: err}
	}
	return nil
}

// Pages returns the number of pages doc lays out to.
func (g *GoFPDF) Pages(ctx context.Context, doc *docdef.Document) (int, error) {
	pdf, err := g.pass(ctx, doc, 0)
	if err != nil {
		return 0, err
	}
	return pdf.PageNo(), nil
}

func (g *GoFPDF) layout(ctx context.Context, doc *docdef.Document) (*gofpdf.Fpdf, error) {
	if doc == nil {
		return nil, &quote.RenderBackendError{Op: "layout", Err: fmt.Errorf("nil document")}
	}
	total := 0
	if doc.Footer != nil {
		counted, err := g.pass(ctx, doc, 0)
		if err != nil {
			return nil, err
		}
		total = counted.PageNo()
	}
	return g.pass(ctx, doc, total)
}

// pass runs one layout. A zero total skips footers.
func (g *GoFPDF) pass(ctx context.Context, doc *docdef.Document, total int) (*gofpdf.Fpdf, error) {
	orientation := "P"
	if doc.Orientation == docdef.Landscape {
		orientation = "L"
	}
	size := string(doc.PageSize)
	if size == "" {
		size = string(docdef.A4)
	}

	pdf := gofpdf.New(orientation, "pt", size, "")
	pdf.SetCompression(g.compression)
	if !g.createdAt.IsZero() {
		pdf.SetCreationDate(g.createdAt)
	}
	pdf.SetTitle(doc.Info.Title, true)
	pdf.SetAuthor(doc.Info.Author, true)
	pdf.SetSubject(doc.Info.Subject, true)
	pdf.SetCreator(doc.Info.Creator, true)

	m := doc.Margins
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(false, m.Bottom)

	e := newEngine(ctx, pdf, doc, g.fonts, g.log)
	if total > 0 {
		pdf.SetFooterFunc(func() { e.footer(pdf.PageNo(), total) })
	}

	if err := e.run(); err != nil {
		return nil, err
	}
	if pdf.Err() {
		return nil, &quote.RenderBackendError{Op: "layout", Err: pdf.Error()}
	}
	pdf.Close()
	if pdf.Err() {
		return nil, &quote.RenderBackendError{Op: "layout", Err: pdf.Error()}
	}
	return pdf, nil
}

// usableImage reports whether gofpdf can embed the asset, using a scratch
// document so a bad image cannot poison the real one.
func usableImage(a docdef.Asset) error {
	scratch := gofpdf.New("P", "pt", "A4", "")
	scratch.RegisterImageOptionsReader("check", imageOptions(a), bytes.NewReader(a.Data))
	if scratch.Err() {
		return scratch.Error()
	}
	return nil
}

func imageOptions(a docdef.Asset) gofpdf.ImageOptions {
	return gofpdf.ImageOptions{ImageType: strings.ToUpper(a.Format)}
}

// Compile-time interface check.
var _ Backend = (*GoFPDF)(nil)
