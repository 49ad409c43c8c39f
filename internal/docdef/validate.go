package docdef

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument indicates a structurally inconsistent document.
var ErrInvalidDocument = errors.New("invalid document")

// Validate checks that every referenced image has an entry in Images and
// that every table row covers exactly the declared tracks.
func (d *Document) Validate() error {
	if missing := d.MissingImages(); len(missing) > 0 {
		return fmt.Errorf("%w: images %v referenced but not defined", ErrInvalidDocument, missing)
	}

	var err error
	check := func(b Block) bool {
		if err != nil {
			return false
		}
		if t, ok := b.(*Table); ok {
			err = t.validate()
		}
		return err == nil
	}
	Walk(d.Content, check)
	if err == nil && d.Footer != nil {
		for _, pages := range [][2]int{{1, 2}, {2, 2}} {
			if b := d.Footer(pages[0], pages[1]); b != nil {
				Walk([]Block{b}, check)
			}
		}
	}
	return err
}

func (t *Table) validate() error {
	if len(t.Widths) == 0 {
		return fmt.Errorf("%w: table without widths", ErrInvalidDocument)
	}
	if t.HeaderRows > len(t.Rows) {
		return fmt.Errorf("%w: %d header rows but %d rows", ErrInvalidDocument, t.HeaderRows, len(t.Rows))
	}
	for i, row := range t.Rows {
		span := 0
		for _, c := range row {
			span += c.Span()
		}
		if span != len(t.Widths) {
			return fmt.Errorf("%w: table row %d spans %d of %d columns", ErrInvalidDocument, i, span, len(t.Widths))
		}
	}
	return nil
}
