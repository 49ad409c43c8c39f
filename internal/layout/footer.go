package layout

import (
	"fmt"

	"github.com/alnah/go-quotepdf/internal/docdef"
)

// DefaultPageFormat is the page counter text.
const DefaultPageFormat = "Page %d of %d"

// FooterSpec describes a page footer.
type FooterSpec struct {
	PageFormat string // two %d verbs: current, total
	Style      string
	Align      docdef.Align

	// Note is static text shown beside the page counter on every page.
	Note string

	// LastPage blocks are laid side by side under the counter, on the last
	// page only.
	LastPage []docdef.Block
	Gap      float64
}

// PageFooter returns a footer function. The result depends only on the
// page numbers.
func PageFooter(f FooterSpec) docdef.FooterFunc {
	format := f.PageFormat
	if format == "" {
		format = DefaultPageFormat
	}
	return func(current, total int) docdef.Block {
		page := docdef.Styled(f.Style, fmt.Sprintf(format, current, total))
		page.Align = f.Align

		var counter docdef.Block = page
		if f.Note != "" {
			note := docdef.Styled(f.Style, f.Note)
			note.Align = docdef.AlignRight
			counter = &docdef.Columns{
				Gap: 10,
				Columns: []docdef.Column{
					{Width: docdef.Star, Content: page},
					{Width: docdef.Auto, Content: note},
				},
			}
		}
		if current != total || len(f.LastPage) == 0 {
			return counter
		}

		// Badges are right-aligned behind a flexible spacer.
		row := &docdef.Columns{Gap: f.Gap}
		row.Columns = append(row.Columns, docdef.Column{Width: docdef.Star, Content: docdef.Plain("")})
		for _, b := range f.LastPage {
			row.Columns = append(row.Columns, docdef.Column{Width: docdef.Auto, Content: b})
		}
		return &docdef.Stack{Items: []docdef.Block{counter, row}}
	}
}
