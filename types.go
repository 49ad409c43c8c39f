package quotepdf

import (
	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/pdfrender"
	"github.com/alnah/go-quotepdf/internal/quote"
	"github.com/alnah/go-quotepdf/internal/registry"
	"github.com/alnah/go-quotepdf/internal/templates"
)

// Request model.
type (
	Request    = quote.Request
	Party      = quote.Party
	Quotation  = quote.Quotation
	LineItem   = quote.LineItem
	Clause     = quote.Clause
	Diagnostic = quote.Diagnostic
)

// Rendering types.
type (
	Document     = docdef.Document
	Renderer     = templates.Renderer
	Rates        = templates.Rates
	Registry     = registry.Registry
	TemplateInfo = registry.Info
	Backend      = pdfrender.Backend
	FontSet      = pdfrender.FontSet
	FontFiles    = pdfrender.FontFiles
)

// LoadFontSet reads a UTF-8 font set from dir.
func LoadFontSet(dir string, files FontFiles) (FontSet, error) {
	return pdfrender.LoadFontSet(dir, files)
}
