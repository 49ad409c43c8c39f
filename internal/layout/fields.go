package layout

import (
	"strings"

	"github.com/alnah/go-quotepdf/internal/docdef"
)

// Field is a label and its value, e.g. "Date:" and "16 Oct 2026".
type Field struct {
	Label string
	Value string
}

// FieldTable renders fields as a borderless two-track table with bold
// labels. Fields with an empty value are kept so the block shape is stable.
func FieldTable(fields []Field, labelStyle, valueStyle string) *docdef.Table {
	t := &docdef.Table{
		Widths:  []docdef.Width{docdef.Auto, docdef.Star},
		Layout:  docdef.LayoutNone,
		Padding: 1,
	}
	for _, f := range fields {
		t.Rows = append(t.Rows, []docdef.Cell{
			{Content: docdef.Styled(labelStyle, f.Label)},
			{Content: docdef.Styled(valueStyle, f.Value)},
		})
	}
	return t
}

// Lines renders each non-empty line as its own paragraph.
func Lines(style string, lines ...string) []docdef.Block {
	var out []docdef.Block
	for _, l := range lines {
		for _, part := range strings.Split(l, "\n") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, docdef.Styled(style, part))
			}
		}
	}
	return out
}

// Prefixed returns prefix+value, or "" when value is empty.
func Prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}
