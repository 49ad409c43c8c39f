package templates

import (
	"strings"

	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/layout"
)

const signatureRule = "_____________________________"

// composeVIG is the systems-integrator layout: totals trail the items
// table, followed by remarks, signatures and a disclaimer.
func composeVIG(r *renderer, p *page) ([]docdef.Block, docdef.FooterFunc) {
	q, cu := p.q, p.customer

	title := right("title", r.text("title"))
	title.Margin = docdef.Margins{Top: 20}
	header := &docdef.Columns{
		Columns: []docdef.Column{
			{Width: docdef.Fixed(100), Content: &docdef.Image{Name: "logo", Width: 100}},
			{Width: docdef.Star, Content: title},
		},
	}

	customer := &docdef.Stack{Items: []docdef.Block{docdef.Styled("label", "Customer:")}}
	customer.Items = append(customer.Items, docdef.Styled("value", cu.Name))
	customer.Items = append(customer.Items, layout.Lines("value", cu.Address)...)
	customer.Items = append(customer.Items,
		docdef.Styled("value", "Attention: "+cu.Attention),
		docdef.Styled("value", "Email: "+cu.Email),
	)
	parties := &docdef.Columns{
		Props: docdef.Props{Margin: docdef.Margins{Top: 12, Bottom: 24}},
		Columns: []docdef.Column{
			{Width: docdef.Star, Content: customer},
			{Width: docdef.Star, Content: &docdef.Stack{Items: []docdef.Block{
				right("value", "Quotation Ref. No.: "+q.RefNo),
				right("value", "Date: "+q.Date),
				right("value", "From: "+q.From),
			}}},
		},
	}

	// The discount row only appears for a discounted quotation.
	showDiscount := p.totals.DiscountRate.IsPositive()
	labels := p.labels
	labels.Subtotal = "Total Price"
	labels.Grand = "Final Price"
	money := layout.Amount(labels.Grouped)

	items := layout.ItemsTable(layout.ItemsSpec{
		Columns: []layout.ItemColumn{
			{Header: "S/N", Width: docdef.Auto, Value: layout.Serial},
			{Header: "Description", Width: docdef.Star, Value: layout.Description},
			{Header: "Qty", Width: docdef.Auto, Align: docdef.AlignRight, Value: layout.Qty},
			{Header: "Unit Price (" + p.currency + ")", Width: docdef.Auto, Align: docdef.AlignRight, Value: layout.UnitPrice(labels.Grouped)},
			{Header: "Total (" + p.currency + ")", Width: docdef.Auto, Align: docdef.AlignRight, Value: money},
		},
		Items:       q.Items,
		Trailing:    layout.TotalsRows(p.totals, labels, showDiscount),
		HeaderStyle: "tableHeader",
		HeaderFill:  "#eeeeee",
		BodyStyle:   "value",
		Layout:      docdef.LayoutGrid,
		Margin:      docdef.Margins{Bottom: 12},
	})

	content := []docdef.Block{
		header,
		parties,
		withMargin(layout.RichText("value", r.text("intro")), docdef.Margins{Bottom: 10}),
		items,
	}
	if len(p.remarks) > 0 {
		content = append(content,
			withMargin(docdef.Styled("subheader", "Remarks:"), docdef.Margins{Top: 10, Bottom: 5}),
			layout.Bullets(p.remarks, "value"),
		)
	}
	content = append(content,
		withMargin(docdef.Styled("value", "Terms: "+q.PaymentTerms+"\nValidity: "+q.Validity), docdef.Margins{Top: 12}),
		withMargin(layout.RichText("value", r.text("closing")), docdef.Margins{Top: 20, Bottom: 10}),
		docdef.Styled("value", strings.TrimSpace(r.text("valediction")+"\n\n"+p.company.Name)),
		signatures(r),
	)
	content = append(content, termsSection("Terms & Conditions:", p)...)
	if d := r.text("disclaimer"); d != "" {
		content = append(content, withMargin(docdef.Styled("disclaimer", d), docdef.Margins{Top: 24}))
	}
	if line := r.text("company_line"); line != "" {
		content = append(content, withMargin(docdef.Styled("disclaimer", line), docdef.Margins{Top: 4}))
	}

	footer := layout.PageFooter(layout.FooterSpec{Style: "footer", Align: docdef.AlignCenter})
	return content, footer
}

// signatures lays the signatory and the customer confirmation side by side.
func signatures(r *renderer) docdef.Block {
	rule := func() *docdef.Text {
		return withMargin(docdef.Plain(signatureRule), docdef.Margins{Top: 20})
	}
	ours := &docdef.Stack{Items: []docdef.Block{rule()}}
	ours.Items = append(ours.Items, layout.Lines("value", r.text("signatory"), r.text("signatory_title"))...)
	theirs := &docdef.Stack{Items: []docdef.Block{rule()}}
	theirs.Items = append(theirs.Items, layout.Lines("value", r.text("confirmation"))...)

	return &docdef.Columns{
		Gap: 20,
		Columns: []docdef.Column{
			{Width: docdef.Star, Content: ours},
			{Width: docdef.Star, Content: theirs},
		},
	}
}
