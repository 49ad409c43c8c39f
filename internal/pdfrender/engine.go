package pdfrender

import (
	"bytes"
	"context"
	"maps"
	"slices"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/quote"
)

const (
	listIndent     = 14.0
	footerOffset   = 10.0
	borderWidth    = 0.5
	headerRule     = 1.0
	borderColor    = "#cccccc"
	defaultSize    = 10.0
	defaultLeading = 1.2
)

// engine lays out one pass of one document.
type engine struct {
	ctx    context.Context
	pdf    *gofpdf.Fpdf
	doc    *docdef.Document
	log    zerolog.Logger
	family string
	tr     func(string) string
	images map[string]imageInfo

	left, top, width, bottom, pageH float64

	y     float64
	fresh bool // nothing placed on the current page yet
}

type imageInfo struct{ w, h float64 }

func newEngine(ctx context.Context, pdf *gofpdf.Fpdf, doc *docdef.Document, fonts FontSet, log zerolog.Logger) *engine {
	family, tr := fonts.register(pdf)
	pw, ph := pdf.GetPageSize()
	m := doc.Margins
	e := &engine{
		ctx:    ctx,
		pdf:    pdf,
		doc:    doc,
		log:    log,
		family: family,
		tr:     tr,
		left:   m.Left,
		top:    m.Top,
		width:  pw - m.Left - m.Right,
		bottom: ph - m.Bottom,
		pageH:  ph,
	}
	e.registerImages()
	return e
}

// registerImages embeds every usable image. Empty or undecodable assets
// are skipped; blocks referencing them draw nothing.
func (e *engine) registerImages() {
	e.images = make(map[string]imageInfo, len(e.doc.Images))
	for _, name := range slices.Sorted(maps.Keys(e.doc.Images)) {
		a := e.doc.Images[name]
		if a.Empty() {
			continue
		}
		if err := usableImage(a); err != nil {
			e.log.Warn().Err(&quote.AssetLoadError{Dir: "images", Name: name, Err: err}).Msg("image skipped")
			continue
		}
		info := e.pdf.RegisterImageOptionsReader(name, imageOptions(a), bytes.NewReader(a.Data))
		if info == nil || info.Width() <= 0 || info.Height() <= 0 {
			continue
		}
		e.images[name] = imageInfo{w: info.Width(), h: info.Height()}
	}
}

func (e *engine) run() error {
	e.newPage()
	for _, b := range e.doc.Content {
		if b == nil {
			continue
		}
		if err := e.flow(b, e.left, e.width, docdef.AlignLeft); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) newPage() {
	e.pdf.AddPage()
	e.y = e.top
	e.fresh = true
}

// ensure starts a new page when h does not fit below the cursor. A block
// taller than a page is placed anyway and overflows.
func (e *engine) ensure(h float64) {
	if h <= 0 {
		return
	}
	if e.y+h > e.bottom && !e.fresh {
		e.newPage()
	}
	e.fresh = false
}

func (e *engine) cancelled() error {
	if err := e.ctx.Err(); err != nil {
		return &quote.RenderBackendError{Op: "layout", Err: err}
	}
	return nil
}

// flow places a block at the cursor, breaking pages between lines, rows
// and stacked items. Other blocks are atomic.
func (e *engine) flow(b docdef.Block, x, w float64, inherit docdef.Align) error {
	if err := e.cancelled(); err != nil {
		return err
	}
	p := b.Properties()
	if _, ok := b.(*docdef.PageBreak); ok || p.BreakBefore {
		if !e.fresh {
			e.newPage()
		}
	}

	m := p.Margin
	x, w = x+m.Left, w-m.Left-m.Right
	if !e.fresh {
		e.y += m.Top
	}

	switch v := b.(type) {
	case *docdef.PageBreak:
	case *docdef.Stack:
		for _, it := range v.Items {
			if it == nil {
				continue
			}
			if err := e.flow(it, x, w, pick(v.Align, inherit)); err != nil {
				return err
			}
		}
	case *docdef.Text:
		e.flowText(v, x, w, inherit)
	case *docdef.Table:
		if err := e.flowTable(v, x, w); err != nil {
			return err
		}
	case *docdef.List:
		if err := e.flowList(v, x, w, inherit); err != nil {
			return err
		}
	default:
		h := e.inner(b, x, 0, w, inherit, true)
		e.ensure(h)
		e.inner(b, x, e.y, w, inherit, false)
		e.y += h
	}

	e.y += m.Bottom
	return nil
}

func (e *engine) flowText(t *docdef.Text, x, w float64, inherit docdef.Align) {
	st := e.style(t.Style)
	lh := st.FontSize * st.Leading
	align := e.align(t.Props, inherit, st)
	for _, l := range e.wrap(t, st, w) {
		e.ensure(lh)
		e.drawLine(l, x, e.y, w, lh, align, st)
		e.y += lh
	}
}

func (e *engine) flowList(l *docdef.List, x, w float64, inherit docdef.Align) error {
	for i, it := range l.Items {
		if it == nil {
			continue
		}
		st := e.style(firstStyle(it))
		e.ensure(st.FontSize * st.Leading)
		e.drawMarker(l.Ordered, i, x, e.y, st)
		if err := e.flow(it, x+listIndent, w-listIndent, inherit); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) flowTable(t *docdef.Table, x, w float64) error {
	if len(t.Rows) == 0 {
		return nil
	}
	cols := e.tableTracks(t, w)
	nh := min(t.HeaderRows, len(t.Rows))
	heads, body := t.Rows[:nh], t.Rows[nh:]

	headH := 0.0
	for _, r := range heads {
		headH += e.rowHeight(t, r, cols)
	}
	drawHeads := func() {
		for i, r := range heads {
			h := e.rowHeight(t, r, cols)
			e.drawRow(t, r, cols, x, e.y, h)
			e.y += h
			if t.Layout == docdef.LayoutLight && i == nh-1 {
				e.rule(x, e.y, sum(cols), headerRule)
			}
		}
	}

	first := 0.0
	if len(body) > 0 {
		first = e.rowHeight(t, body[0], cols)
	}
	e.ensure(headH + first)
	drawHeads()

	for i, r := range body {
		if err := e.cancelled(); err != nil {
			return err
		}
		h := e.rowHeight(t, r, cols)
		broke := false
		if e.y+h > e.bottom {
			e.newPage()
			e.fresh = false
			drawHeads()
			broke = true
		}
		if t.Layout == docdef.LayoutLight && i > 0 && !broke {
			e.rule(x, e.y, sum(cols), borderWidth)
		}
		e.drawRow(t, r, cols, x, e.y, h)
		e.y += h
	}
	return nil
}

// footer draws the document footer inside the bottom margin.
func (e *engine) footer(current, total int) {
	b := e.doc.Footer(current, total)
	if b == nil {
		return
	}
	y := e.bottom + min(footerOffset, (e.pageH-e.bottom)/4)
	e.box(b, e.left, y, e.width, docdef.AlignLeft, false)
}

// box measures (dry) or draws b at a fixed position without page breaks,
// margins included. It returns the height used.
func (e *engine) box(b docdef.Block, x, y, w float64, inherit docdef.Align, dry bool) float64 {
	if b == nil {
		return 0
	}
	m := b.Properties().Margin
	return m.Top + e.inner(b, x+m.Left, y+m.Top, w-m.Left-m.Right, inherit, dry) + m.Bottom
}

// inner is box without the block's own margins.
func (e *engine) inner(b docdef.Block, x, y, w float64, inherit docdef.Align, dry bool) float64 {
	if w < 1 {
		w = 1
	}
	switch v := b.(type) {
	case *docdef.Text:
		st := e.style(v.Style)
		lh := st.FontSize * st.Leading
		lines := e.wrap(v, st, w)
		if !dry {
			align := e.align(v.Props, inherit, st)
			for i, l := range lines {
				e.drawLine(l, x, y+float64(i)*lh, w, lh, align, st)
			}
		}
		return float64(len(lines)) * lh
	case *docdef.Stack:
		h := 0.0
		for _, it := range v.Items {
			h += e.box(it, x, y+h, w, pick(v.Align, inherit), dry)
		}
		return h
	case *docdef.List:
		h := 0.0
		for i, it := range v.Items {
			if it == nil {
				continue
			}
			if !dry {
				e.drawMarker(v.Ordered, i, x, y+h, e.style(firstStyle(it)))
			}
			h += e.box(it, x+listIndent, y+h, w-listIndent, inherit, dry)
		}
		return h
	case *docdef.Columns:
		return e.columns(v, x, y, w, pick(v.Align, inherit), dry)
	case *docdef.Table:
		return e.table(v, x, y, w, dry)
	case *docdef.Image:
		return e.image(v, x, y, w, pick(v.Align, inherit), dry)
	case *docdef.Spacer:
		return v.Height
	}
	return 0
}

func (e *engine) columns(c *docdef.Columns, x, y, w float64, inherit docdef.Align, dry bool) float64 {
	if len(c.Columns) == 0 {
		return 0
	}
	widths := make([]docdef.Width, len(c.Columns))
	for i, col := range c.Columns {
		widths[i] = col.Width
	}
	avail := w - c.Gap*float64(len(c.Columns)-1)
	ws := tracks(widths, avail, func(i int) float64 { return e.natural(c.Columns[i].Content) })

	h := 0.0
	cx := x
	for i, col := range c.Columns {
		h = max(h, e.box(col.Content, cx, y, ws[i], inherit, dry))
		cx += ws[i] + c.Gap
	}
	return h
}

func (e *engine) table(t *docdef.Table, x, y, w float64, dry bool) float64 {
	cols := e.tableTracks(t, w)
	h := 0.0
	nh := min(t.HeaderRows, len(t.Rows))
	for i, r := range t.Rows {
		rh := e.rowHeight(t, r, cols)
		if !dry {
			if t.Layout == docdef.LayoutLight && i > 0 && i != nh {
				e.rule(x, y+h, sum(cols), borderWidth)
			}
			e.drawRow(t, r, cols, x, y+h, rh)
			if t.Layout == docdef.LayoutLight && nh > 0 && i == nh-1 {
				e.rule(x, y+h+rh, sum(cols), headerRule)
			}
		}
		h += rh
	}
	return h
}

func (e *engine) image(img *docdef.Image, x, y, w float64, align docdef.Align, dry bool) float64 {
	iw, ih, ok := e.imageSize(img, w)
	if !ok || dry {
		return ih
	}
	switch align {
	case docdef.AlignRight:
		x += w - iw
	case docdef.AlignCenter:
		x += (w - iw) / 2
	}
	e.pdf.ImageOptions(img.Name, x, y, iw, ih, false, gofpdf.ImageOptions{}, 0, "")
	return ih
}

// imageSize scales an image to its declared box, keeping the aspect ratio
// when one side is zero, and never wider than avail. Unusable images keep
// their declared size so the layout does not shift.
func (e *engine) imageSize(img *docdef.Image, avail float64) (w, h float64, ok bool) {
	info, ok := e.images[img.Name]
	if !ok {
		return min(img.Width, avail), img.Height, false
	}
	w, h = img.Width, img.Height
	switch {
	case w == 0 && h == 0:
		w, h = info.w, info.h
	case w == 0:
		w = info.w * h / info.h
	case h == 0:
		h = info.h * w / info.w
	}
	if w > avail && w > 0 {
		h *= avail / w
		w = avail
	}
	return w, h, true
}

func (e *engine) style(name string) docdef.Style {
	st := e.doc.Style(name)
	if st.FontSize <= 0 {
		st.FontSize = defaultSize
	}
	if st.Leading <= 0 {
		st.Leading = defaultLeading
	}
	return st
}

// align resolves block, inherited and style alignment, in that order.
func (e *engine) align(p docdef.Props, inherit docdef.Align, st docdef.Style) docdef.Align {
	return pick(p.Align, pick(inherit, st.Align))
}

func pick(a, fallback docdef.Align) docdef.Align {
	if a != "" {
		return a
	}
	return fallback
}

// firstStyle returns the style of the first text inside b, for list
// markers.
func firstStyle(b docdef.Block) string {
	name := ""
	found := false
	docdef.Walk([]docdef.Block{b}, func(b docdef.Block) bool {
		if found {
			return false
		}
		if t, ok := b.(*docdef.Text); ok {
			name, found = t.Style, true
			return false
		}
		return true
	})
	return name
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}
