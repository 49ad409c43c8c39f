package templates

import (
	"fmt"
	"strings"

	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/quote"
	"github.com/alnah/go-quotepdf/internal/yamlutil"
)

// ManifestFile is the bundle entry point.
const ManifestFile = "template.yaml"

// Manifest is the parsed template.yaml of a bundle.
type Manifest struct {
	Layout   string        `yaml:"layout"`
	Title    string        `yaml:"title"`
	Rates    RatesManifest `yaml:"rates"`
	Currency string        `yaml:"currency"`
	Grouping bool          `yaml:"grouping"` // thousands separators in amounts
	Page     PageManifest  `yaml:"page"`
	Company  PartyManifest `yaml:"company"`

	// Images maps logical image names to files in the bundle.
	Images map[string]string `yaml:"images"`
	// Text overrides layout captions by key (intro, note, footer, closing...).
	Text map[string]string `yaml:"text"`
	// Terms names a clause file in the bundle.
	Terms   string   `yaml:"terms"`
	Remarks []string `yaml:"remarks"`
}

// RatesManifest holds the declared default rates. Nil keeps the layout
// default.
type RatesManifest struct {
	Discount *float64 `yaml:"discount"`
	Tax      *float64 `yaml:"tax"`
}

// PageManifest is the page geometry.
type PageManifest struct {
	Size        string    `yaml:"size"`
	Orientation string    `yaml:"orientation"`
	Margins     []float64 `yaml:"margins"` // left, top, right, bottom
}

// PartyManifest is the sender identity printed when a request omits it.
type PartyManifest struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Website string `yaml:"website"`
	RegNo   string `yaml:"reg_no"`
}

// ParseManifest decodes a template.yaml.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yamlutil.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	m.Layout = strings.ToLower(strings.TrimSpace(m.Layout))
	return &m, nil
}

func (m *Manifest) pageSize() (docdef.PageSize, error) {
	switch strings.ToLower(m.Page.Size) {
	case "", "a4":
		return docdef.A4, nil
	case "letter":
		return docdef.Letter, nil
	case "legal":
		return docdef.Legal, nil
	}
	return "", fmt.Errorf("unknown page size %q", m.Page.Size)
}

func (m *Manifest) orientation() (docdef.Orientation, error) {
	switch strings.ToLower(m.Page.Orientation) {
	case "", "portrait":
		return docdef.Portrait, nil
	case "landscape":
		return docdef.Landscape, nil
	}
	return "", fmt.Errorf("unknown orientation %q", m.Page.Orientation)
}

func (m *Manifest) margins(def docdef.Margins) (docdef.Margins, error) {
	switch len(m.Page.Margins) {
	case 0:
		return def, nil
	case 4:
		for _, v := range m.Page.Margins {
			if v < 0 {
				return def, fmt.Errorf("negative margin %v", v)
			}
		}
		mg := m.Page.Margins
		return docdef.Margins{Left: mg[0], Top: mg[1], Right: mg[2], Bottom: mg[3]}, nil
	}
	return def, fmt.Errorf("margins need 4 values, got %d", len(m.Page.Margins))
}

func (p PartyManifest) party() quote.Party {
	return quote.Party{Name: p.Name, Address: p.Address, Phone: p.Phone, Email: p.Email, Website: p.Website, RegNo: p.RegNo}
}

// clauseEntry is one item of a clause file.
type clauseEntry struct {
	Title  string   `yaml:"title"`
	Points []string `yaml:"points"`
}

// ParseClauses decodes a YAML list of {title, points} clause groups.
func ParseClauses(data []byte) ([]quote.Clause, error) {
	var entries []clauseEntry
	if err := yamlutil.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	out := make([]quote.Clause, 0, len(entries))
	for _, e := range entries {
		if e.Title == "" && len(e.Points) == 0 {
			continue
		}
		out = append(out, quote.Clause{Title: e.Title, Points: e.Points})
	}
	return out, nil
}
