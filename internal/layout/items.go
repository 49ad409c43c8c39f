package layout

import (
	"strconv"

	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/quote"
	"github.com/alnah/go-quotepdf/internal/totals"
)

// ItemColumn is one column of the items table.
type ItemColumn struct {
	Header string
	Width  docdef.Width
	Align  docdef.Align
	Value  func(i int, it quote.LineItem) string
}

// ItemsSpec describes an items table.
type ItemsSpec struct {
	Columns []ItemColumn
	Items   []quote.LineItem

	// Trailing rows follow the body: the label spans every column but the
	// last, the amount sits in the last column.
	Trailing []TotalRow

	HeaderStyle string
	HeaderFill  string
	BodyStyle   string
	Layout      docdef.TableLayout
	Margin      docdef.Margins
}

// ItemsTable builds the line items table. The header row repeats on every
// page the table spans.
func ItemsTable(spec ItemsSpec) *docdef.Table {
	t := &docdef.Table{
		Props:      docdef.Props{Margin: spec.Margin},
		Widths:     make([]docdef.Width, len(spec.Columns)),
		HeaderRows: 1,
		Layout:     spec.Layout,
		Padding:    3,
	}

	header := make([]docdef.Cell, len(spec.Columns))
	for c, col := range spec.Columns {
		t.Widths[c] = col.Width
		header[c] = docdef.Cell{
			Content: docdef.Styled(spec.HeaderStyle, col.Header),
			Fill:    spec.HeaderFill,
			Align:   col.Align,
		}
	}
	t.Rows = append(t.Rows, header)

	for i, it := range spec.Items {
		row := make([]docdef.Cell, len(spec.Columns))
		for c, col := range spec.Columns {
			row[c] = docdef.Cell{Content: docdef.Styled(spec.BodyStyle, col.Value(i, it)), Align: col.Align}
		}
		t.Rows = append(t.Rows, row)
	}

	if n := len(spec.Columns); n > 1 {
		for _, tr := range spec.Trailing {
			t.Rows = append(t.Rows, []docdef.Cell{
				{Content: totalText(spec.BodyStyle, tr.Label, tr.Bold), ColSpan: n - 1, Align: docdef.AlignRight},
				{Content: totalText(spec.BodyStyle, tr.Amount, tr.Bold), Align: docdef.AlignRight},
			})
		}
	}
	return t
}

// Column value functions.

// Serial numbers rows from 1.
func Serial(i int, _ quote.LineItem) string { return strconv.Itoa(i + 1) }

// ItemID returns the item code.
func ItemID(_ int, it quote.LineItem) string { return it.ItemID }

// ItemIDOrSerial returns the item code, or the row number when it is blank.
func ItemIDOrSerial(i int, it quote.LineItem) string {
	if it.ItemID != "" {
		return it.ItemID
	}
	return Serial(i, it)
}

// Description returns the item description.
func Description(_ int, it quote.LineItem) string { return it.Description }

// Qty renders the quantity without trailing zeros.
func Qty(_ int, it quote.LineItem) string { return strconv.FormatFloat(it.Qty, 'f', -1, 64) }

// UOM returns the unit of measure.
func UOM(_ int, it quote.LineItem) string { return it.UOM }

// UnitPrice renders the unit price as money.
func UnitPrice(grouped bool) func(int, quote.LineItem) string {
	return func(_ int, it quote.LineItem) string {
		return totals.Money(totals.LineTotal(totals.Item{Qty: 1, UnitPrice: it.UnitPrice}), grouped)
	}
}

// Amount renders the line total, honoring a pinned total.
func Amount(grouped bool) func(int, quote.LineItem) string {
	return func(_ int, it quote.LineItem) string {
		return totals.Money(totals.LineTotal(totals.Item{Qty: it.Qty, UnitPrice: it.UnitPrice, Total: it.Total}), grouped)
	}
}
