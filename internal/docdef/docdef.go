// Package docdef describes a paginated document as pure data: a tree of
// blocks, named styles, named images, page geometry and a footer function.
//
// A Document has no behavior of its own. Templates build one per request
// and a backend (see internal/pdfrender) lays it out. Block is a closed set
// of variants; backends switch over them exhaustively.
package docdef

import "slices"

// PageSize names a paper size.
type PageSize string

const (
	A4     PageSize = "A4"
	Letter PageSize = "Letter"
	Legal  PageSize = "Legal"
)

// Orientation of the page.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Margins in points: left, top, right, bottom.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Info is embedded as PDF metadata.
type Info struct {
	Title   string
	Author  string
	Subject string
	Creator string
}

// Asset is an embeddable image. Empty Data means the asset could not be
// loaded; backends skip empty assets.
type Asset struct {
	Data   []byte
	Format string // "png" or "jpg"
}

// Empty reports whether the asset carries no data.
func (a Asset) Empty() bool { return len(a.Data) == 0 }

// FooterFunc builds the footer for one page. It must be pure: the result
// depends only on its arguments.
type FooterFunc func(current, total int) Block

// Document is the complete, renderer-agnostic description of a quotation.
type Document struct {
	Info        Info
	PageSize    PageSize
	Orientation Orientation
	Margins     Margins

	Content      []Block
	Styles       map[string]Style
	DefaultStyle Style
	Images       map[string]Asset

	Footer FooterFunc
}

// ImageRefs returns the sorted, de-duplicated image names referenced by the
// content and by the footer. The footer is sampled on a non-terminal and a
// terminal page so last-page-only images are included.
func (d *Document) ImageRefs() []string {
	seen := map[string]bool{}
	visit := func(b Block) bool {
		if img, ok := b.(*Image); ok {
			seen[img.Name] = true
		}
		return true
	}
	Walk(d.Content, visit)
	if d.Footer != nil {
		for _, pages := range [][2]int{{1, 1}, {1, 2}, {2, 2}} {
			if b := d.Footer(pages[0], pages[1]); b != nil {
				Walk([]Block{b}, visit)
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// MissingImages returns referenced image names absent from Images.
// An empty Asset counts as present.
func (d *Document) MissingImages() []string {
	var missing []string
	for _, n := range d.ImageRefs() {
		if _, ok := d.Images[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// Style resolves a named style over the default style.
func (d *Document) Style(name string) Style {
	s := d.DefaultStyle
	if name == "" {
		return s
	}
	if named, ok := d.Styles[name]; ok {
		return s.Merge(named)
	}
	return s
}
