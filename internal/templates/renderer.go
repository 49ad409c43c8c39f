package templates

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf/internal/assets"
	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/hints"
	"github.com/alnah/go-quotepdf/internal/layout"
	"github.com/alnah/go-quotepdf/internal/quote"
	"github.com/alnah/go-quotepdf/internal/totals"
)

// Creator is embedded in the PDF metadata.
const Creator = "quotepdf"

var errNilRequest = errors.New("request is nil")

// Rates are the discount and tax percentages a renderer applies when the
// request leaves them unset.
type Rates struct {
	Discount float64
	Tax      float64
}

// Renderer builds a document definition for one template.
type Renderer interface {
	// Name is the canonical template id (the bundle directory name).
	Name() string
	// Layout is the compiled layout the bundle selects.
	Layout() string
	// Defaults are the declared default rates.
	Defaults() Rates
	// Render builds the document. The request is not modified.
	Render(req *quote.Request) (*docdef.Document, error)
}

// Bundle is everything needed to build a renderer.
type Bundle struct {
	ID       string
	Manifest *Manifest
	Source   assets.Source
	Log      zerolog.Logger
}

// New builds the renderer a bundle declares. A manifest without a known
// layout violates the template contract.
func New(b Bundle) (Renderer, error) {
	if b.Manifest == nil {
		return nil, &quote.TemplateContractError{TemplateID: b.ID, Missing: "manifest"}
	}
	m := b.Manifest
	if m.Layout == "" {
		return nil, &quote.TemplateContractError{TemplateID: b.ID, Missing: "layout"}
	}
	def, ok := layouts[m.Layout]
	if !ok {
		return nil, &quote.TemplateContractError{
			TemplateID: b.ID,
			Missing:    "layout",
			Err:        fmt.Errorf("unknown layout %q%s", m.Layout, hints.ForLayout(Layouts())),
		}
	}

	r := &renderer{id: b.ID, m: m, def: def, src: b.Source, log: b.Log.With().Str("template", b.ID).Logger()}
	var err error
	if r.size, err = m.pageSize(); err != nil {
		return nil, &quote.TemplateContractError{TemplateID: b.ID, Missing: "page size", Err: err}
	}
	if r.orientation, err = m.orientation(); err != nil {
		return nil, &quote.TemplateContractError{TemplateID: b.ID, Missing: "page orientation", Err: err}
	}
	if r.margins, err = m.margins(def.margins); err != nil {
		return nil, &quote.TemplateContractError{TemplateID: b.ID, Missing: "page margins", Err: err}
	}

	r.rates = def.defaults
	if m.Rates.Discount != nil {
		r.rates.Discount = *m.Rates.Discount
	}
	if m.Rates.Tax != nil {
		r.rates.Tax = *m.Rates.Tax
	}
	if r.rates.Discount < 0 || r.rates.Tax < 0 {
		return nil, &quote.TemplateContractError{TemplateID: b.ID, Missing: "non-negative rates"}
	}

	r.images = maps.Clone(def.images)
	if r.images == nil {
		r.images = map[string]string{}
	}
	maps.Copy(r.images, m.Images)
	return r, nil
}

// Layouts lists the compiled layout names.
func Layouts() []string {
	return slices.Sorted(maps.Keys(layouts))
}

// layoutDef describes a compiled layout.
type layoutDef struct {
	defaults Rates
	margins  docdef.Margins
	// images maps the logical names the layout references to default files.
	images map[string]string
	// text holds default captions, overridable per manifest.
	text map[string]string
	// company is the sender identity used when neither request nor manifest
	// gives one.
	company quote.Party
	styles  map[string]docdef.Style
	remarks []string
	// standardTerms falls back to the built-in clause set.
	standardTerms bool
	compose       func(r *renderer, p *page) ([]docdef.Block, docdef.FooterFunc)
}

type renderer struct {
	id          string
	m           *Manifest
	def         layoutDef
	src         assets.Source
	log         zerolog.Logger
	rates       Rates
	images      map[string]string
	size        docdef.PageSize
	orientation docdef.Orientation
	margins     docdef.Margins
}

func (r *renderer) Name() string    { return r.id }
func (r *renderer) Layout() string  { return r.m.Layout }
func (r *renderer) Defaults() Rates { return r.rates }

// page is the per-render working state derived from a request copy.
type page struct {
	q        *quote.Quotation
	company  quote.Party
	customer quote.Party
	currency string
	totals   totals.Totals
	labels   layout.Labels
	terms    []quote.Clause
	remarks  []string
}

func (r *renderer) Render(req *quote.Request) (*docdef.Document, error) {
	if req == nil {
		return nil, &quote.InvalidInputError{Field: "request", Err: errNilRequest}
	}
	c := req.Clone()
	p := r.prepare(c)

	doc := &docdef.Document{
		Info: docdef.Info{
			Title:   strings.TrimSpace("Quotation " + p.q.RefNo),
			Author:  p.company.Name,
			Subject: p.q.Subject,
			Creator: Creator,
		},
		PageSize:     r.size,
		Orientation:  r.orientation,
		Margins:      r.margins,
		Styles:       r.styles(),
		DefaultStyle: docdef.Style{FontSize: 10},
		Images:       r.loadImages(),
	}
	doc.Content, doc.Footer = r.def.compose(r, p)

	if err := doc.Validate(); err != nil {
		return nil, &quote.TemplateContractError{TemplateID: r.id, Missing: "consistent document", Err: err}
	}
	return doc, nil
}

func (r *renderer) prepare(c *quote.Request) *page {
	q := &c.Quotation
	dr, tr := r.rates.Discount, r.rates.Tax
	if q.DiscountRate != nil {
		dr = *q.DiscountRate
	}
	if q.TaxRate != nil {
		tr = *q.TaxRate
	}
	t := totals.Compute(q.TotalsItems(), dr, tr, q.Overrides())
	if len(t.Degraded) > 0 {
		r.log.Warn().Strs("degraded", t.Degraded).Msg("totals computed from coerced inputs")
	}

	currency := q.Currency
	if currency == "" {
		currency = r.m.Currency
	}
	if currency == "" {
		currency = "SGD"
	}
	labels := layout.DefaultLabels(currency)
	labels.Grouped = r.m.Grouping

	remarks := q.Remarks
	if len(remarks) == 0 {
		remarks = r.m.Remarks
	}
	if len(remarks) == 0 {
		remarks = r.def.remarks
	}

	return &page{
		q:        q,
		company:  mergeParty(mergeParty(r.def.company, r.m.Company.party()), c.Company),
		customer: c.Customer,
		currency: currency,
		totals:   t,
		labels:   labels,
		terms:    r.clauses(q),
		remarks:  remarks,
	}
}

// text returns a caption: manifest first, then the layout default.
func (r *renderer) text(key string) string {
	if v, ok := r.m.Text[key]; ok {
		return v
	}
	return r.def.text[key]
}

func (r *renderer) styles() map[string]docdef.Style {
	out := maps.Clone(baseStyles)
	maps.Copy(out, r.def.styles)
	return out
}

// loadImages reads every image the layout or manifest names. Failed loads
// yield empty assets under the same key.
func (r *renderer) loadImages() map[string]docdef.Asset {
	out := make(map[string]docdef.Asset, len(r.images))
	for name, file := range r.images {
		out[name] = assets.Image(r.src, r.log, r.id, file)
	}
	return out
}

// clauses picks the terms: request, then the bundle clause file, then the
// built-in set when the layout prints terms by default.
func (r *renderer) clauses(q *quote.Quotation) []quote.Clause {
	if len(q.Terms) > 0 {
		return q.Terms
	}
	if r.m.Terms != "" {
		if data := assets.Load(r.src, r.log, r.id, r.m.Terms); data != nil {
			cl, err := ParseClauses(data)
			if err == nil {
				return cl
			}
			r.log.Warn().Err(&quote.AssetLoadError{Dir: r.id, Name: r.m.Terms, Err: err}).Msg("unreadable clause file")
		}
	}
	if !r.def.standardTerms {
		return nil
	}
	cl, err := ParseClauses(assets.StandardTerms())
	if err != nil {
		r.log.Error().Err(err).Msg("built-in clause set unreadable")
		return nil
	}
	return cl
}

// mergeParty overlays the non-empty fields of over onto base.
func mergeParty(base, over quote.Party) quote.Party {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Name, over.Name)
	set(&base.Address, over.Address)
	set(&base.Attention, over.Attention)
	set(&base.Phone, over.Phone)
	set(&base.Email, over.Email)
	set(&base.Website, over.Website)
	set(&base.RegNo, over.RegNo)
	return base
}

var baseStyles = map[string]docdef.Style{
	"title":       {FontSize: 16, Bold: true},
	"h1":          {FontSize: 14, Bold: true},
	"h2":          {FontSize: 12, Bold: true},
	"subheader":   {FontSize: 10, Bold: true},
	"label":       {FontSize: 10, Bold: true},
	"value":       {FontSize: 10},
	"tableHeader": {FontSize: 10, Bold: true, Fill: "#eeeeee"},
	"td":          {FontSize: 10},
	"disclaimer":  {FontSize: 9, Italic: true, Align: docdef.AlignCenter},
	"smallNote":   {FontSize: 9, Color: "#333333"},
	"footer":      {FontSize: 9},
}

// Compile-time interface check.
var _ Renderer = (*renderer)(nil)
