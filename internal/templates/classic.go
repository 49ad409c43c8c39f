package templates

import (
	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/layout"
)

// composeClassic is the generic layout used by the default bundle.
func composeClassic(r *renderer, p *page) ([]docdef.Block, docdef.FooterFunc) {
	q, co, cu := p.q, p.company, p.customer

	sender := &docdef.Stack{Props: docdef.Props{Align: docdef.AlignRight}}
	sender.Items = append(sender.Items, right("title", co.Name))
	for _, b := range layout.Lines("value", co.Address) {
		b.(*docdef.Text).Align = docdef.AlignRight
		sender.Items = append(sender.Items, b)
	}
	sender.Items = append(sender.Items, right("value", "Phone: "+co.Phone), right("value", co.Email))

	header := &docdef.Columns{
		Props: docdef.Props{Margin: docdef.Margins{Bottom: 10}},
		Gap:   10,
		Columns: []docdef.Column{
			{Width: docdef.Fixed(100), Content: &docdef.Image{Name: "logo", Width: 100}},
			{Width: docdef.Star, Content: sender},
		},
	}

	parties := &docdef.Columns{
		Props: docdef.Props{Margin: docdef.Margins{Top: 6, Bottom: 10}},
		Gap:   10,
		Columns: []docdef.Column{
			{Width: docdef.Star, Content: &docdef.Stack{Items: []docdef.Block{
				docdef.Styled("value", "Customer: "+cu.Name),
				docdef.Styled("value", "ATTN: "+cu.Attention),
				docdef.Styled("value", "Phone: "+cu.Phone),
				docdef.Styled("value", "Email: "+cu.Email),
			}}},
			{Width: docdef.Star, Content: &docdef.Stack{Items: []docdef.Block{
				right("refNo", "Quotation Ref: "+q.RefNo),
				right("value", "Date: "+q.Date),
				right("value", "Terms: "+q.PaymentTerms),
				right("value", "Validity: "+q.Validity),
			}}},
		},
	}

	items := layout.ItemsTable(layout.ItemsSpec{
		Columns: []layout.ItemColumn{
			{Header: "S/N", Width: docdef.Auto, Value: layout.Serial},
			{Header: "Item ID", Width: docdef.Auto, Value: layout.ItemID},
			{Header: "Description", Width: docdef.Star, Value: layout.Description},
			{Header: "Qty", Width: docdef.Auto, Align: docdef.AlignRight, Value: layout.Qty},
			{Header: "UOM", Width: docdef.Auto, Value: layout.UOM},
			{Header: "Amount (" + p.currency + ")", Width: docdef.Auto, Align: docdef.AlignRight, Value: layout.Amount(p.labels.Grouped)},
		},
		Items:       q.Items,
		HeaderStyle: "tableHeader",
		BodyStyle:   "td",
		Layout:      docdef.LayoutGrid,
		Margin:      docdef.Margins{Bottom: 10},
	})

	sums := layout.TotalsTable(layout.TotalsRows(p.totals, p.labels, true), layout.TotalsOptions{
		Layout: docdef.LayoutNone,
		Style:  "value",
		Margin: docdef.Margins{Bottom: 10},
	})

	content := []docdef.Block{
		header,
		docdef.Styled("subheader", q.Subject),
		parties,
		withMargin(layout.RichText("value", r.text("intro")), docdef.Margins{Bottom: 10}),
		items,
		sums,
		layout.RichText("note", r.text("note")),
	}
	content = append(content, termsSection("Terms & Conditions:", p)...)

	footer := layout.PageFooter(layout.FooterSpec{
		Style: "footer",
		Note:  r.text("footer"),
	})
	return content, footer
}
