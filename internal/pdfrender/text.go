package pdfrender

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-quotepdf/internal/docdef"
)

// piece is a measured span of one font style.
type piece struct {
	text   string
	bold   bool
	italic bool
	w      float64
}

type line struct {
	pieces []piece
	w      float64
}

func (l *line) add(p piece) {
	if n := len(l.pieces); n > 0 && l.pieces[n-1].bold == p.bold && l.pieces[n-1].italic == p.italic {
		l.pieces[n-1].text += p.text
		l.pieces[n-1].w += p.w
	} else {
		l.pieces = append(l.pieces, p)
	}
	l.w += p.w
}

func (e *engine) setFont(size float64, bold, italic bool) {
	style := ""
	if bold {
		style += "B"
	}
	if italic {
		style += "I"
	}
	e.pdf.SetFont(e.family, style, size)
}

func (e *engine) textWidth(s string, size float64, bold, italic bool) float64 {
	e.setFont(size, bold, italic)
	return e.pdf.GetStringWidth(e.tr(s))
}

// wrap breaks the runs of t into lines no wider than maxW. Newlines are
// hard breaks; words longer than a line are split between characters.
// A text without visible characters has no lines.
func (e *engine) wrap(t *docdef.Text, st docdef.Style, maxW float64) []line {
	if strings.TrimSpace(t.String()) == "" {
		return nil
	}

	var (
		lines []line
		cur   line
	)
	push := func() {
		if n := len(cur.pieces); n > 0 {
			last := &cur.pieces[n-1]
			trimmed := strings.TrimRight(last.text, " ")
			if trimmed != last.text {
				nw := e.textWidth(trimmed, st.FontSize, last.bold, last.italic)
				cur.w -= last.w - nw
				last.text, last.w = trimmed, nw
			}
		}
		lines = append(lines, cur)
		cur = line{}
	}

	for _, r := range t.Runs {
		bold, italic := r.Bold || st.Bold, r.Italic || st.Italic
		for i, part := range strings.Split(r.Text, "\n") {
			if i > 0 {
				push()
			}
			for _, word := range words(part) {
				w := e.textWidth(word, st.FontSize, bold, italic)
				if cur.w+w > maxW && cur.w > 0 {
					push()
					if strings.TrimSpace(word) == "" {
						continue
					}
				}
				for w > maxW && utf8.RuneCountInString(word) > 1 {
					head := e.fit(word, maxW, st.FontSize, bold, italic)
					hw := e.textWidth(head, st.FontSize, bold, italic)
					cur.add(piece{text: head, bold: bold, italic: italic, w: hw})
					push()
					word = word[len(head):]
					w = e.textWidth(word, st.FontSize, bold, italic)
				}
				cur.add(piece{text: word, bold: bold, italic: italic, w: w})
			}
		}
	}
	push()
	return lines
}

// fit returns the longest prefix of word (at least one rune) no wider
// than maxW.
func (e *engine) fit(word string, maxW, size float64, bold, italic bool) string {
	end := 0
	for i, r := range word {
		next := i + utf8.RuneLen(r)
		if end > 0 && e.textWidth(word[:next], size, bold, italic) > maxW {
			break
		}
		end = next
	}
	return word[:end]
}

// words splits s after each run of spaces, keeping the spaces with the
// preceding word.
func words(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && (i+1 == len(s) || s[i+1] != ' ') {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// drawLine writes one line inside the box [x, x+w) whose top is y.
func (e *engine) drawLine(l line, x, y, w, lh float64, align docdef.Align, st docdef.Style) {
	switch align {
	case docdef.AlignRight:
		x += w - l.w
	case docdef.AlignCenter:
		x += (w - l.w) / 2
	}
	r, g, b := rgb(st.Color)
	e.pdf.SetTextColor(r, g, b)

	baseline := y + (lh-st.FontSize)/2 + st.FontSize*0.8
	for _, p := range l.pieces {
		e.setFont(st.FontSize, p.bold, p.italic)
		e.pdf.Text(x, baseline, e.tr(p.text))
		x += p.w
	}
	e.pdf.SetTextColor(0, 0, 0)
}

// drawMarker writes a bullet or an item number left of a list item.
func (e *engine) drawMarker(ordered bool, i int, x, y float64, st docdef.Style) {
	marker := "•"
	if ordered {
		marker = strconv.Itoa(i+1) + "."
	}
	lh := st.FontSize * st.Leading
	e.setFont(st.FontSize, false, false)
	e.pdf.SetTextColor(0, 0, 0)
	e.pdf.Text(x, y+(lh-st.FontSize)/2+st.FontSize*0.8, e.tr(marker))
}
