package pdfrender

import (
	"strconv"
	"strings"

	"github.com/alnah/go-quotepdf/internal/docdef"
)

// autoShare caps auto tracks so star tracks keep some room.
const autoShare = 0.7

// tracks resolves track widths. Fixed and percent tracks are taken first,
// auto tracks get their natural width, and star tracks share what is left
// by weight. Auto tracks shrink proportionally when they do not fit.
func tracks(widths []docdef.Width, avail float64, natural func(i int) float64) []float64 {
	out := make([]float64, len(widths))
	remaining := avail
	stars := 0.0
	var autos []int
	for i, wd := range widths {
		switch wd.Kind {
		case docdef.WidthFixed:
			out[i] = wd.Value
		case docdef.WidthPercent:
			out[i] = avail * wd.Value / 100
		case docdef.WidthAuto:
			autos = append(autos, i)
			continue
		default:
			stars += starWeight(wd)
			continue
		}
		remaining -= out[i]
	}

	need := 0.0
	for _, i := range autos {
		out[i] = natural(i)
		need += out[i]
	}
	budget := max(remaining, 0)
	if stars > 0 {
		budget *= autoShare
	}
	if need > budget && need > 0 {
		scale := budget / need
		for _, i := range autos {
			out[i] *= scale
		}
		need = budget
	}
	remaining -= need

	if stars > 0 && remaining > 0 {
		for i, wd := range widths {
			if wd.Kind == docdef.WidthStar {
				out[i] = remaining * starWeight(wd) / stars
			}
		}
	}
	return out
}

func starWeight(w docdef.Width) float64 {
	if w.Value <= 0 {
		return 1
	}
	return w.Value
}

// natural is the unwrapped width of a block, used for auto tracks.
func (e *engine) natural(b docdef.Block) float64 {
	if b == nil {
		return 0
	}
	m := b.Properties().Margin
	pad := m.Left + m.Right
	switch v := b.(type) {
	case *docdef.Text:
		st := e.style(v.Style)
		widest := 0.0
		for _, l := range e.wrap(v, st, 1e9) {
			widest = max(widest, l.w)
		}
		return widest + pad + 0.5
	case *docdef.Image:
		w, _, _ := e.imageSize(v, 1e9)
		return w + pad
	case *docdef.Stack:
		widest := 0.0
		for _, it := range v.Items {
			widest = max(widest, e.natural(it))
		}
		return widest + pad
	case *docdef.List:
		widest := 0.0
		for _, it := range v.Items {
			widest = max(widest, e.natural(it))
		}
		return listIndent + widest + pad
	case *docdef.Columns:
		total := max(v.Gap*float64(len(v.Columns)-1), 0)
		for _, c := range v.Columns {
			total += e.natural(c.Content)
		}
		return total + pad
	case *docdef.Table:
		natural := e.tableNatural(v)
		total := 0.0
		for i := range v.Widths {
			total += natural(i)
		}
		return total + pad
	case *docdef.Spacer:
		return pad
	}
	return 0
}

// tableNatural returns the natural width of each track: the widest
// single-span cell starting on it, padding included.
func (e *engine) tableNatural(t *docdef.Table) func(i int) float64 {
	widest := make([]float64, len(t.Widths))
	for _, row := range t.Rows {
		track := 0
		for _, c := range row {
			if c.Span() == 1 && track < len(widest) {
				widest[track] = max(widest[track], e.natural(c.Content)+2*t.Padding)
			}
			track += c.Span()
		}
	}
	return func(i int) float64 { return widest[i] }
}

func (e *engine) tableTracks(t *docdef.Table, w float64) []float64 {
	return tracks(t.Widths, w, e.tableNatural(t))
}

// cellWidth is the width of the tracks a cell covers.
func cellWidth(cols []float64, track, span int) float64 {
	end := min(track+span, len(cols))
	if track >= end {
		return 0
	}
	return sum(cols[track:end])
}

func (e *engine) rowHeight(t *docdef.Table, row []docdef.Cell, cols []float64) float64 {
	h := 0.0
	track := 0
	for _, c := range row {
		cw := cellWidth(cols, track, c.Span())
		h = max(h, e.box(c.Content, 0, 0, cw-2*t.Padding, c.Align, true)+2*t.Padding)
		track += c.Span()
	}
	return h
}

func (e *engine) drawRow(t *docdef.Table, row []docdef.Cell, cols []float64, x, y, h float64) {
	track := 0
	cx := x
	for _, c := range row {
		cw := cellWidth(cols, track, c.Span())
		if fill := e.cellFill(c); fill != "" {
			r, g, b := rgb(fill)
			e.pdf.SetFillColor(r, g, b)
			e.pdf.Rect(cx, y, cw, h, "F")
		}
		if t.Layout == docdef.LayoutGrid {
			r, g, b := rgb(borderColor)
			e.pdf.SetDrawColor(r, g, b)
			e.pdf.SetLineWidth(borderWidth)
			e.pdf.Rect(cx, y, cw, h, "D")
		}
		e.box(c.Content, cx+t.Padding, y+t.Padding, cw-2*t.Padding, c.Align, false)
		cx += cw
		track += c.Span()
	}
}

// cellFill is the cell's own fill, else the fill of its text style.
func (e *engine) cellFill(c docdef.Cell) string {
	if c.Fill != "" {
		return c.Fill
	}
	if t, ok := c.Content.(*docdef.Text); ok {
		return e.doc.Style(t.Style).Fill
	}
	return ""
}

// rule draws a horizontal line.
func (e *engine) rule(x, y, w, width float64) {
	r, g, b := rgb(borderColor)
	e.pdf.SetDrawColor(r, g, b)
	e.pdf.SetLineWidth(width)
	e.pdf.Line(x, y, x+w, y)
}

// rgb parses "#rrggbb" or "#rgb". Anything else is black.
func rgb(hex string) (r, g, b int) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
