package docdef

// Align is horizontal alignment.
type Align string

const (
	AlignLeft    Align = ""
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// Style is a set of text attributes. Zero fields inherit.
type Style struct {
	FontSize float64
	Bold     bool
	Italic   bool
	Color    string // "#rrggbb"
	Fill     string // background, "#rrggbb"
	Align    Align
	Leading  float64 // line height as a multiple of FontSize
}

// Merge returns s overlaid with the non-zero fields of o.
func (s Style) Merge(o Style) Style {
	if o.FontSize != 0 {
		s.FontSize = o.FontSize
	}
	s.Bold = s.Bold || o.Bold
	s.Italic = s.Italic || o.Italic
	if o.Color != "" {
		s.Color = o.Color
	}
	if o.Fill != "" {
		s.Fill = o.Fill
	}
	if o.Align != "" {
		s.Align = o.Align
	}
	if o.Leading != 0 {
		s.Leading = o.Leading
	}
	return s
}

// Props are shared by every block.
type Props struct {
	Style  string // name in Document.Styles
	Align  Align  // overrides the style alignment
	Margin Margins

	// BreakBefore starts the block on a new page.
	BreakBefore bool
}

// Block is one node of the layout tree. The set of implementations is
// closed: Text, Table, Columns, Stack, Image, List, Spacer and PageBreak.
type Block interface {
	Properties() *Props
	block()
}

// Run is a span of text with inline emphasis.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Text is a paragraph of runs. Newlines inside runs are hard breaks.
type Text struct {
	Props
	Runs []Run
}

// WidthKind selects how a column width is computed.
type WidthKind int

const (
	WidthStar    WidthKind = iota // share of remaining space, weighted by Value (0 means 1)
	WidthAuto                     // natural width of the content
	WidthFixed                    // Value points
	WidthPercent                  // Value percent of available width
)

// Width of a table or column track.
type Width struct {
	Kind  WidthKind
	Value float64
}

// Common widths.
var (
	Star = Width{Kind: WidthStar, Value: 1}
	Auto = Width{Kind: WidthAuto}
)

// Fixed returns a width of pt points.
func Fixed(pt float64) Width { return Width{Kind: WidthFixed, Value: pt} }

// Percent returns a width of p percent.
func Percent(p float64) Width { return Width{Kind: WidthPercent, Value: p} }

// TableLayout selects cell borders.
type TableLayout int

const (
	LayoutGrid  TableLayout = iota // all borders
	LayoutLight                    // horizontal rules under header and between rows
	LayoutNone                     // no borders
)

// Cell is a table cell. A cell with ColSpan n covers n tracks; rows list
// only the covering cell, not placeholders.
type Cell struct {
	Content Block
	ColSpan int
	Fill    string
	Align   Align
}

// Span returns the number of tracks covered, at least 1.
func (c Cell) Span() int {
	if c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}

// Table is a grid of cells. The first HeaderRows rows repeat after page
// breaks.
type Table struct {
	Props
	Widths     []Width
	HeaderRows int
	Rows       [][]Cell
	Layout     TableLayout
	Padding    float64
}

// Column is one track of a Columns block.
type Column struct {
	Width   Width
	Content Block
}

// Columns lays blocks side by side. Columns never split across pages.
type Columns struct {
	Props
	Gap     float64
	Columns []Column
}

// Stack lays blocks vertically.
type Stack struct {
	Props
	Items []Block
}

// Image references Document.Images by name. Zero Width and Height keep the
// natural size; one of them scales proportionally.
type Image struct {
	Props
	Name   string
	Width  float64
	Height float64
}

// List is a bulleted or numbered list.
type List struct {
	Props
	Ordered bool
	Items   []Block
}

// Spacer is vertical whitespace.
type Spacer struct {
	Props
	Height float64
}

// PageBreak is an explicit page-break marker. It is equivalent to setting
// BreakBefore on the following block.
type PageBreak struct {
	Props
}

func (b *Text) Properties() *Props      { return &b.Props }
func (b *Table) Properties() *Props     { return &b.Props }
func (b *Columns) Properties() *Props   { return &b.Props }
func (b *Stack) Properties() *Props     { return &b.Props }
func (b *Image) Properties() *Props     { return &b.Props }
func (b *List) Properties() *Props      { return &b.Props }
func (b *Spacer) Properties() *Props    { return &b.Props }
func (b *PageBreak) Properties() *Props { return &b.Props }

func (*Text) block()      {}
func (*Table) block()     {}
func (*Columns) block()   {}
func (*Stack) block()     {}
func (*Image) block()     {}
func (*List) block()      {}
func (*Spacer) block()    {}
func (*PageBreak) block() {}

// Walk visits blocks depth-first. Returning false from fn skips the
// children of that block.
func Walk(blocks []Block, fn func(Block) bool) {
	for _, b := range blocks {
		if b == nil || !fn(b) {
			continue
		}
		switch v := b.(type) {
		case *Stack:
			Walk(v.Items, fn)
		case *List:
			Walk(v.Items, fn)
		case *Columns:
			for _, c := range v.Columns {
				Walk([]Block{c.Content}, fn)
			}
		case *Table:
			for _, row := range v.Rows {
				for _, c := range row {
					Walk([]Block{c.Content}, fn)
				}
			}
		}
	}
}

// Plain returns a single-run paragraph.
func Plain(s string) *Text {
	return &Text{Runs: []Run{{Text: s}}}
}

// Styled returns a single-run paragraph using a named style.
func Styled(style, s string) *Text {
	return &Text{Props: Props{Style: style}, Runs: []Run{{Text: s}}}
}

// String concatenates the runs of a text block.
func (b *Text) String() string {
	n := 0
	for _, r := range b.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range b.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}
