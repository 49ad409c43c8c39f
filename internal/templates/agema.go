package templates

import (
	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/layout"
)

// badgeWidth is the printed width of each accreditation badge.
const badgeWidth = 36

// composeAGEMA is the trading-company layout: company header, party block,
// totals grid and terms on a page of their own. Accreditation badges print
// on the last page only.
func composeAGEMA(r *renderer, p *page) ([]docdef.Block, docdef.FooterFunc) {
	q, co, cu := p.q, p.company, p.customer

	company := &docdef.Stack{Props: docdef.Props{Align: docdef.AlignRight}}
	company.Items = append(company.Items, right("companyName", co.Name))
	if co.RegNo != "" {
		company.Items = append(company.Items, right("companyMeta", "Reg. No.\n"+co.RegNo))
	}
	for _, b := range layout.Lines("companyMeta", co.Address) {
		b.(*docdef.Text).Align = docdef.AlignRight
		company.Items = append(company.Items, b)
	}
	if co.Phone != "" {
		company.Items = append(company.Items, right("companyMeta", "Phone: "+co.Phone))
	}
	if co.Website != "" {
		company.Items = append(company.Items, right("link", co.Website))
	}

	header := &docdef.Columns{
		Props: docdef.Props{Margin: docdef.Margins{Bottom: 8}},
		Gap:   10,
		Columns: []docdef.Column{
			{Width: docdef.Fixed(120), Content: &docdef.Image{Name: "logo", Width: 120}},
			{Width: docdef.Star, Content: company},
		},
	}

	title := right("h1", r.text("title"))
	title.Margin = docdef.Margins{Bottom: 6}
	parties := &docdef.Columns{
		Props: docdef.Props{Margin: docdef.Margins{Top: 6, Bottom: 10}},
		Gap:   16,
		Columns: []docdef.Column{
			{Width: docdef.Percent(60), Content: &docdef.Stack{Items: []docdef.Block{
				docdef.Styled("label", "TO:"),
				docdef.Styled("value", cu.Name),
				docdef.Styled("value", "ATTN: "+cu.Attention),
				docdef.Styled("value", "Contact: "+cu.Phone),
				docdef.Styled("value", "Address: "+cu.Address),
				docdef.Styled("value", "Email: "+cu.Email),
			}}},
			{Width: docdef.Percent(40), Content: &docdef.Stack{Items: []docdef.Block{
				title,
				right("value", "Date: "+q.Date),
				right("value", "Reference: "+firstNonEmpty(q.Reference, q.RefNo)),
				right("value", "Currency: "+p.currency),
				right("value", "Validity: "+q.Validity),
			}}},
		},
	}

	items := layout.ItemsTable(layout.ItemsSpec{
		Columns: []layout.ItemColumn{
			{Header: "Product", Width: docdef.Fixed(60), Value: layout.ItemIDOrSerial},
			{Header: "Description", Width: docdef.Star, Value: layout.Description},
			{Header: "Qty", Width: docdef.Fixed(40), Align: docdef.AlignCenter, Value: layout.Qty},
			{Header: "UOM", Width: docdef.Fixed(50), Align: docdef.AlignCenter, Value: layout.UOM},
			{Header: "Unit Price", Width: docdef.Fixed(70), Align: docdef.AlignRight, Value: layout.UnitPrice(p.labels.Grouped)},
			{Header: "Amount", Width: docdef.Fixed(80), Align: docdef.AlignRight, Value: layout.Amount(p.labels.Grouped)},
		},
		Items:       q.Items,
		HeaderStyle: "tableHeader",
		HeaderFill:  "#eeeeee",
		BodyStyle:   "td",
		Layout:      docdef.LayoutGrid,
		Margin:      docdef.Margins{Top: 4, Bottom: 8},
	})

	labels := p.labels
	labels.Tax = "GST ({rate}%) ({currency})"
	sums := layout.TotalsTable(layout.TotalsRows(p.totals, labels, true), layout.TotalsOptions{
		Widths: []docdef.Width{docdef.Star, docdef.Fixed(140), docdef.Fixed(120)},
		Layout: docdef.LayoutLight,
		Style:  "totalsRow",
		Margin: docdef.Margins{Top: 6},
	})

	content := []docdef.Block{
		header,
		withMargin(layout.RichText("smallNote", r.text("thanks")), docdef.Margins{Top: 6, Bottom: 2}),
		parties,
		items,
		sums,
	}
	if len(p.terms) > 0 {
		content = append(content, &docdef.PageBreak{})
		content = append(content, termsSection(r.text("terms_header"), p)...)
	}

	badges := make([]docdef.Block, 0, 3)
	for _, name := range []string{"smeLogo", "bcaLogo", "bizsafeLogo"} {
		badges = append(badges, &docdef.Image{Name: name, Width: badgeWidth})
	}
	footer := layout.PageFooter(layout.FooterSpec{
		Style:    "footer",
		Align:    docdef.AlignCenter,
		LastPage: badges,
		Gap:      8,
	})
	return content, footer
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
