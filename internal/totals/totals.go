// Package totals computes quotation figures (subtotal, discount, tax and
// grand total) with exact decimal arithmetic.
//
// Compute is a pure function: it performs no I/O, never mutates its inputs
// and never fails. Inputs that cannot be used (NaN, infinities, negative
// quantities) are coerced to zero and reported in Totals.Degraded so the
// caller can log them.
//
// Figures are kept at full precision through every step. Only the Formatted
// projection is rounded, to two decimal places.
package totals

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Item is the numeric view of one line item.
type Item struct {
	Qty       float64
	UnitPrice float64
	Total     *float64 // overrides Qty*UnitPrice when set
}

// Overrides pins figures supplied by the caller. A nil field is derived.
type Overrides struct {
	Subtotal   *float64
	Tax        *float64
	GrandTotal *float64
}

// Totals holds derived figures. It is never persisted.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	AfterDiscount  decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	GrandTotal     decimal.Decimal

	Formatted Formatted

	// Degraded lists inputs that were coerced to zero or ignored.
	Degraded []string
}

// Formatted is the 2-decimal fixed-point projection of Totals.
type Formatted struct {
	Subtotal       string
	DiscountRate   string
	DiscountAmount string
	AfterDiscount  string
	TaxRate        string
	TaxAmount      string
	GrandTotal     string
}

var hundred = decimal.NewFromInt(100)

// Compute derives totals from items and percentage rates.
//
// The discount applies to the subtotal, the tax applies to the amount after
// discount, and the grand total is their sum. An overridden subtotal feeds
// every dependent figure; an overridden tax feeds the grand total; an
// overridden grand total is final.
func Compute(items []Item, discountRate, taxRate float64, ov Overrides) Totals {
	var t Totals

	sub := decimal.Zero
	for i, it := range items {
		line, notes := lineTotal(it)
		for _, n := range notes {
			t.Degraded = append(t.Degraded, fmt.Sprintf("items[%d].%s", i, n))
		}
		sub = sub.Add(line)
	}
	if v, ok := override(ov.Subtotal, "subtotal", &t.Degraded); ok {
		sub = v
	}

	dr := rate(discountRate, "discount_rate", &t.Degraded)
	tr := rate(taxRate, "tax_rate", &t.Degraded)

	disc := sub.Mul(dr).Div(hundred)
	after := sub.Sub(disc)

	tax := after.Mul(tr).Div(hundred)
	if v, ok := override(ov.Tax, "tax", &t.Degraded); ok {
		tax = v
	}

	grand := after.Add(tax)
	if v, ok := override(ov.GrandTotal, "grand_total", &t.Degraded); ok {
		grand = v
	}

	t.Subtotal = sub
	t.DiscountRate = dr
	t.DiscountAmount = disc
	t.AfterDiscount = after
	t.TaxRate = tr
	t.TaxAmount = tax
	t.GrandTotal = grand
	t.Formatted = Formatted{
		Subtotal:       sub.StringFixed(2),
		DiscountRate:   dr.StringFixed(2),
		DiscountAmount: disc.StringFixed(2),
		AfterDiscount:  after.StringFixed(2),
		TaxRate:        tr.StringFixed(2),
		TaxAmount:      tax.StringFixed(2),
		GrandTotal:     grand.StringFixed(2),
	}
	return t
}

// LineTotal returns the override when present, otherwise Qty*UnitPrice.
func LineTotal(it Item) decimal.Decimal {
	d, _ := lineTotal(it)
	return d
}

func lineTotal(it Item) (decimal.Decimal, []string) {
	var notes []string
	if it.Total != nil {
		if usable(*it.Total) {
			return decimal.NewFromFloat(*it.Total), nil
		}
		notes = append(notes, "total ignored")
	}
	qty, ok := nonNegative(it.Qty)
	if !ok {
		notes = append(notes, "qty coerced to 0")
	}
	unit, ok := nonNegative(it.UnitPrice)
	if !ok {
		notes = append(notes, "unit_price coerced to 0")
	}
	return qty.Mul(unit), notes
}

func rate(v float64, name string, degraded *[]string) decimal.Decimal {
	d, ok := nonNegative(v)
	if !ok {
		*degraded = append(*degraded, name+" coerced to 0")
	}
	return d
}

func override(p *float64, name string, degraded *[]string) (decimal.Decimal, bool) {
	if p == nil {
		return decimal.Zero, false
	}
	if !usable(*p) {
		*degraded = append(*degraded, name+" override ignored")
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(*p), true
}

func nonNegative(v float64) (decimal.Decimal, bool) {
	if !usable(v) || v < 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(v), true
}

// usable reports whether v can be represented as a decimal.
// decimal.NewFromFloat panics on NaN and infinities.
func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
