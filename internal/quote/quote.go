// Package quote defines the canonical quotation request, the normalization
// step that maps every accepted legacy payload onto it, the error taxonomy
// of the render pipeline, and output filename sanitization.
package quote

import (
	"slices"

	"github.com/alnah/go-quotepdf/internal/totals"
)

// DefaultTemplateID is used when a request names no template.
const DefaultTemplateID = "default"

// Request is the canonical quotation request.
type Request struct {
	TemplateID string
	Company    Party // sender; legacy payloads call it "company" or "client"
	Customer   Party
	Quotation  Quotation
}

// Party identifies a sender or recipient. Address may span several lines.
type Party struct {
	Name      string
	Address   string
	Attention string
	Phone     string
	Email     string
	Website   string
	RegNo     string // company registration number
}

// Quotation is the priced business object.
type Quotation struct {
	Items []LineItem

	RefNo        string
	Date         string
	From         string
	Reference    string
	Subject      string
	Location     string
	Validity     string
	Currency     string
	PaymentTerms string

	// Nil rates select the renderer's declared default.
	DiscountRate *float64
	TaxRate      *float64

	// Overrides pinned by the caller.
	Subtotal   *float64
	Tax        *float64
	GrandTotal *float64

	Remarks []string
	Terms   []Clause
}

// LineItem is one priced row.
type LineItem struct {
	ItemID      string
	Description string
	Qty         float64
	UOM         string
	UnitPrice   float64
	Total       *float64
}

// Clause is a titled group of terms. Points may carry inline **bold** and
// *italic* markup.
type Clause struct {
	Title  string
	Points []string
}

// TotalsItems projects line items onto the totals engine input.
func (q *Quotation) TotalsItems() []totals.Item {
	out := make([]totals.Item, len(q.Items))
	for i, it := range q.Items {
		out[i] = totals.Item{Qty: it.Qty, UnitPrice: it.UnitPrice, Total: it.Total}
	}
	return out
}

// Overrides returns the caller-pinned figures.
func (q *Quotation) Overrides() totals.Overrides {
	return totals.Overrides{Subtotal: q.Subtotal, Tax: q.Tax, GrandTotal: q.GrandTotal}
}

// Clone returns a deep copy so renderers can derive values freely.
func (r *Request) Clone() *Request {
	c := *r
	q := &c.Quotation
	q.Items = slices.Clone(r.Quotation.Items)
	for i := range q.Items {
		q.Items[i].Total = clonePtr(q.Items[i].Total)
	}
	q.DiscountRate = clonePtr(q.DiscountRate)
	q.TaxRate = clonePtr(q.TaxRate)
	q.Subtotal = clonePtr(q.Subtotal)
	q.Tax = clonePtr(q.Tax)
	q.GrandTotal = clonePtr(q.GrandTotal)
	q.Remarks = slices.Clone(r.Quotation.Remarks)
	q.Terms = slices.Clone(r.Quotation.Terms)
	for i := range q.Terms {
		q.Terms[i].Points = slices.Clone(q.Terms[i].Points)
	}
	return &c
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
