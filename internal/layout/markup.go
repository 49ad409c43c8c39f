package layout

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-quotepdf/internal/docdef"
)

// inline parses the small markdown subset allowed in clauses and notes.
// Paragraphs are the only block kind, so list, heading and quote markers
// stay in the text.
var inline = parser.NewParser(
	parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 100)),
	parser.WithInlineParsers(parser.DefaultInlineParsers()...),
)

// Markup converts inline markdown (**bold**, *italic*) into text runs.
// Paragraphs and line breaks become newlines.
// Input without markup yields a single plain run.
func Markup(s string) []docdef.Run {
	if s == "" {
		return nil
	}
	if !strings.ContainsAny(s, "*_`\\") {
		return []docdef.Run{{Text: s}}
	}

	src := []byte(s)
	root := inline.Parse(text.NewReader(src))

	var (
		runs          []docdef.Run
		bold, italic  int
		pendingBreak  bool
		seenParagraph bool
	)
	emit := func(t string) {
		if t == "" {
			return
		}
		if pendingBreak && len(runs) > 0 {
			t = "\n" + t
		}
		pendingBreak = false
		r := docdef.Run{Text: t, Bold: bold > 0, Italic: italic > 0}
		if n := len(runs); n > 0 && runs[n-1].Bold == r.Bold && runs[n-1].Italic == r.Italic {
			runs[n-1].Text += r.Text
			return
		}
		runs = append(runs, r)
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			if entering && seenParagraph {
				pendingBreak = true
			}
			seenParagraph = true
		case *ast.Emphasis:
			delta := 1
			if !entering {
				delta = -1
			}
			if node.Level >= 2 {
				bold += delta
			} else {
				italic += delta
			}
		case *ast.Text:
			if !entering {
				return ast.WalkContinue, nil
			}
			emit(string(node.Segment.Value(src)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				pendingBreak = true
			}
		case *ast.String:
			if entering {
				emit(string(node.Value))
			}
		}
		return ast.WalkContinue, nil
	})
	return runs
}

// RichText wraps Markup in a paragraph using a named style.
func RichText(style, s string) *docdef.Text {
	return &docdef.Text{Props: docdef.Props{Style: style}, Runs: Markup(s)}
}
