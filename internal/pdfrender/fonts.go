package pdfrender

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/alnah/go-quotepdf/internal/quote"
)

// coreFamily is used when no font set is configured. It covers cp1252.
const coreFamily = "Helvetica"

// embeddedFamily names the registered UTF-8 font set.
const embeddedFamily = "body"

// FontSet holds TrueType font files for the four styles. Regular is
// required; missing variants reuse Regular.
type FontSet struct {
	Regular    []byte
	Bold       []byte
	Italic     []byte
	BoldItalic []byte
}

// Empty reports whether no font is configured.
func (f FontSet) Empty() bool { return len(f.Regular) == 0 }

// FontFiles names the font files inside a directory.
type FontFiles struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// LoadFontSet reads a font set from dir. An unreadable regular font is an
// AssetLoadError; unreadable variants fall back to the regular face.
func LoadFontSet(dir string, files FontFiles) (FontSet, error) {
	read := func(name string) ([]byte, error) {
		if name == "" {
			return nil, nil
		}
		data, err := os.ReadFile(filepath.Join(dir, filepath.Base(name))) // #nosec G304 -- base name only
		if err != nil {
			return nil, &quote.AssetLoadError{Dir: dir, Name: name, Err: err}
		}
		return data, nil
	}

	var fs FontSet
	var err error
	if fs.Regular, err = read(files.Regular); err != nil {
		return FontSet{}, err
	}
	if fs.Empty() {
		return FontSet{}, &quote.AssetLoadError{Dir: dir, Name: "regular font", Err: fmt.Errorf("not configured")}
	}
	scratch := gofpdf.New("P", "pt", "A4", "")
	scratch.AddUTF8FontFromBytes(embeddedFamily, "", fs.Regular)
	if scratch.Err() {
		return FontSet{}, &quote.AssetLoadError{Dir: dir, Name: files.Regular, Err: scratch.Error()}
	}
	// Variants are optional.
	fs.Bold, _ = read(files.Bold)
	fs.Italic, _ = read(files.Italic)
	fs.BoldItalic, _ = read(files.BoldItalic)
	return fs, nil
}

// register installs the font set on pdf and returns the family name and
// the string translator to apply before drawing.
func (f FontSet) register(pdf *gofpdf.Fpdf) (family string, tr func(string) string) {
	if f.Empty() {
		return coreFamily, pdf.UnicodeTranslatorFromDescriptor("")
	}
	pick := func(b []byte) []byte {
		if len(b) == 0 {
			return f.Regular
		}
		return b
	}
	pdf.AddUTF8FontFromBytes(embeddedFamily, "", f.Regular)
	pdf.AddUTF8FontFromBytes(embeddedFamily, "B", pick(f.Bold))
	pdf.AddUTF8FontFromBytes(embeddedFamily, "I", pick(f.Italic))
	pdf.AddUTF8FontFromBytes(embeddedFamily, "BI", pick(f.BoldItalic))
	return embeddedFamily, func(s string) string { return s }
}
