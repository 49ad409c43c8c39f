package templates

import (
	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/layout"
)

// Layout names accepted in template.yaml.
const (
	LayoutClassic = "classic"
	LayoutVIG     = "vig"
	LayoutAGEMA   = "agema"
)

var layouts = map[string]layoutDef{
	LayoutClassic: {
		defaults: Rates{Discount: 0, Tax: 0},
		margins:  docdef.Margins{Left: 40, Top: 40, Right: 40, Bottom: 60},
		images:   map[string]string{"logo": "logo.png"},
		text: map[string]string{
			"intro":  "As requested, we are pleased to submit our quotation as follows:",
			"note":   "Any additional items other than the above will be charged separately.",
			"footer": "",
		},
		styles: map[string]docdef.Style{
			"title":       {FontSize: 12, Bold: true},
			"subheader":   {FontSize: 11, Bold: true},
			"value":       {FontSize: 9},
			"tableHeader": {FontSize: 9, Bold: true},
			"td":          {FontSize: 9},
			"refNo":       {FontSize: 11, Bold: true},
			"note":        {FontSize: 9, Italic: true},
			"footer":      {FontSize: 8},
		},
		compose: composeClassic,
	},
	LayoutVIG: {
		defaults: Rates{Discount: 0, Tax: 9},
		margins:  docdef.Margins{Left: 40, Top: 40, Right: 40, Bottom: 60},
		images:   map[string]string{"logo": "logo.png"},
		text: map[string]string{
			"title":           "QUOTATION",
			"intro":           "With reference to your enquiry, we are pleased to submit our quotation as follows:",
			"closing":         "We hope that the above is to your satisfaction and please kindly endorse below to confirm this order.",
			"valediction":     "Yours Faithfully,",
			"signatory":       "",
			"signatory_title": "",
			"confirmation":    "Customer's Confirmation\n(Company Stamp & Signature)",
			"disclaimer":      "This is a computer-generated document. No signature is required.",
			"company_line":    "",
		},
		remarks: []string{
			"Any additional items required other than the above quotation will be charged separately.",
			"Updating of Main/Sub Mimic Zone chart including expansion loop card, if required.",
			"Supply and Install of additional Loop Card, if required.",
		},
		compose: composeVIG,
	},
	LayoutAGEMA: {
		defaults: Rates{Discount: 0, Tax: 9},
		margins:  docdef.Margins{Left: 30, Top: 40, Right: 30, Bottom: 60},
		images: map[string]string{
			"logo":        "logo.png",
			"smeLogo":     "sme500-logo.png",
			"bcaLogo":     "bca-logo.png",
			"bizsafeLogo": "bizsafe3-logo.png",
		},
		text: map[string]string{
			"title":        "QUOTATION",
			"thanks":       "Thank you for your invitation to quote, we are pleased to submit our proposal for your kind evaluation.",
			"terms_header": "Terms & Conditions:",
		},
		styles: map[string]docdef.Style{
			"companyName": {FontSize: 12, Bold: true},
			"companyMeta": {FontSize: 9, Leading: 1.15},
			"link":        {FontSize: 9, Color: "#1a73e8"},
			"totalsRow":   {FontSize: 10},
		},
		standardTerms: true,
		compose:       composeAGEMA,
	},
}

// right returns a right-aligned styled paragraph.
func right(style, s string) *docdef.Text {
	t := docdef.Styled(style, s)
	t.Align = docdef.AlignRight
	return t
}

// withMargin sets the margin of a text block and returns it.
func withMargin(t *docdef.Text, m docdef.Margins) *docdef.Text {
	t.Margin = m
	return t
}

// termsSection renders clauses when there are any.
func termsSection(heading string, p *page) []docdef.Block {
	if len(p.terms) == 0 {
		return nil
	}
	return []docdef.Block{layout.TermsBlock(heading, p.terms, layout.TermsStyles{Heading: "h2", Point: "value"})}
}
