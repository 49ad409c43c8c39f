package layout

import (
	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/quote"
)

// TermsStyles names the styles used by TermsBlock.
type TermsStyles struct {
	Heading string
	Title   string
	Point   string
}

// TermsBlock renders titled clause groups as a numbered list. Each clause
// lists its points as bullets; points may carry inline markup.
func TermsBlock(heading string, clauses []quote.Clause, st TermsStyles) docdef.Block {
	var items []docdef.Block
	for _, c := range clauses {
		group := &docdef.Stack{}
		if c.Title != "" {
			group.Items = append(group.Items, &docdef.Text{
				Props: docdef.Props{Style: st.Title},
				Runs:  []docdef.Run{{Text: c.Title + ":", Bold: true}},
			})
		}
		if len(c.Points) > 0 {
			group.Items = append(group.Items, Bullets(c.Points, st.Point))
		}
		items = append(items, group)
	}

	out := &docdef.Stack{}
	if heading != "" {
		h := docdef.Styled(st.Heading, heading)
		h.Margin = docdef.Margins{Bottom: 6}
		out.Items = append(out.Items, h)
	}
	if len(items) > 0 {
		out.Items = append(out.Items, &docdef.List{Ordered: true, Items: items})
	}
	return out
}

// Bullets renders strings as an unordered list with inline markup.
func Bullets(points []string, style string) *docdef.List {
	l := &docdef.List{}
	for _, p := range points {
		l.Items = append(l.Items, RichText(style, p))
	}
	return l
}
