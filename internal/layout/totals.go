package layout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/totals"
)

// TotalRow is one labelled figure of the totals block.
type TotalRow struct {
	Label  string
	Amount string
	Bold   bool
}

// Labels are the captions of the totals rows. "{currency}" and "{rate}"
// are substituted; {rate} is the discount or tax percentage.
type Labels struct {
	Subtotal string
	Discount string
	Net      string // after discount
	Tax      string
	Grand    string

	Currency string
	Grouped  bool // group thousands in amounts
}

// DefaultLabels are the captions shared by the bundled layouts.
func DefaultLabels(currency string) Labels {
	return Labels{
		Subtotal: "Subtotal ({currency})",
		Discount: "Discount ({rate}%)",
		Net:      "After Discount ({currency})",
		Tax:      "GST ({rate}%)",
		Grand:    "TOTAL ({currency})",
		Currency: currency,
	}
}

func (l Labels) expand(pattern string, rate decimal.Decimal) string {
	return strings.NewReplacer("{currency}", l.Currency, "{rate}", totals.Percent(rate)).Replace(pattern)
}

// TotalsRows labels the computed totals. The discount and after-discount
// rows are included only when showDiscount is true; the grand total row is
// bold.
func TotalsRows(t totals.Totals, labels Labels, showDiscount bool) []TotalRow {
	rows := make([]TotalRow, 0, 5)
	rows = append(rows, TotalRow{
		Label:  labels.expand(labels.Subtotal, decimal.Zero),
		Amount: totals.Money(t.Subtotal, labels.Grouped),
	})
	if showDiscount {
		rows = append(rows, TotalRow{
			Label:  labels.expand(labels.Discount, t.DiscountRate),
			Amount: totals.Money(t.DiscountAmount, labels.Grouped),
		}, TotalRow{
			Label:  labels.expand(labels.Net, decimal.Zero),
			Amount: totals.Money(t.AfterDiscount, labels.Grouped),
		})
	}
	rows = append(rows,
		TotalRow{
			Label:  labels.expand(labels.Tax, t.TaxRate),
			Amount: totals.Money(t.TaxAmount, labels.Grouped),
		},
		TotalRow{
			Label:  labels.expand(labels.Grand, decimal.Zero),
			Amount: totals.Money(t.GrandTotal, labels.Grouped),
			Bold:   true,
		},
	)
	return rows
}

// TotalsOptions controls the totals block geometry.
type TotalsOptions struct {
	Widths []docdef.Width // two tracks (label, amount) or three (spacer, label, amount)
	Layout docdef.TableLayout
	Style  string
	Margin docdef.Margins
}

// TotalsTable renders totals rows as a right-aligned table. With three
// widths the first track is an empty spacer.
func TotalsTable(rows []TotalRow, opts TotalsOptions) *docdef.Table {
	widths := opts.Widths
	if len(widths) < 2 {
		widths = []docdef.Width{docdef.Star, docdef.Auto}
	}
	spacer := len(widths) > 2

	t := &docdef.Table{
		Props:   docdef.Props{Margin: opts.Margin},
		Widths:  widths,
		Layout:  opts.Layout,
		Padding: 3,
	}
	for _, r := range rows {
		var row []docdef.Cell
		if spacer {
			row = append(row, docdef.Cell{Content: docdef.Plain(""), ColSpan: len(widths) - 2})
		}
		row = append(row,
			docdef.Cell{Content: totalText(opts.Style, r.Label, r.Bold), Align: docdef.AlignRight},
			docdef.Cell{Content: totalText(opts.Style, r.Amount, r.Bold), Align: docdef.AlignRight},
		)
		t.Rows = append(t.Rows, row)
	}
	return t
}

func totalText(style, s string, bold bool) *docdef.Text {
	return &docdef.Text{Props: docdef.Props{Style: style}, Runs: []docdef.Run{{Text: s, Bold: bold}}}
}
