package layout

import (
	"reflect"
	"testing"

	"github.com/alnah/go-quotepdf/internal/docdef"
)

func TestMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []docdef.Run
	}{
		{"empty", "", nil},
		{"plain", "Payment within 30 days.", []docdef.Run{{Text: "Payment within 30 days."}}},
		{
			"bold span",
			"Payment terms are **30 Days** from invoice.",
			[]docdef.Run{
				{Text: "Payment terms are "},
				{Text: "30 Days", Bold: true},
				{Text: " from invoice."},
			},
		},
		{
			"italic span",
			"see *attached* list",
			[]docdef.Run{{Text: "see "}, {Text: "attached", Italic: true}, {Text: " list"}},
		},
		{
			"nested",
			"***all***",
			[]docdef.Run{{Text: "all", Bold: true, Italic: true}},
		},
		{
			"two paragraphs",
			"**A**\n\nB",
			[]docdef.Run{{Text: "A", Bold: true}, {Text: "\nB"}},
		},
		{
			"dash point kept",
			"- Proof of purchase **required**",
			[]docdef.Run{{Text: "- Proof of purchase "}, {Text: "required", Bold: true}},
		},
		{
			"numbered point kept",
			"1. Pay within **30 days**",
			[]docdef.Run{{Text: "1. Pay within "}, {Text: "30 days", Bold: true}},
		},
		{
			"hash kept",
			"# Note: *all* prices",
			[]docdef.Run{{Text: "# Note: "}, {Text: "all", Italic: true}, {Text: " prices"}},
		},
		{
			"quote marker kept",
			"> see _annex_",
			[]docdef.Run{{Text: "> see "}, {Text: "annex", Italic: true}},
		},
		{
			"points on separate lines",
			"- a **b** now\n- c",
			[]docdef.Run{{Text: "- a "}, {Text: "b", Bold: true}, {Text: " now\n- c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Markup(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Markup(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRichText(t *testing.T) {
	t.Parallel()

	got := RichText("value", "a **b**")
	if got.Style != "value" {
		t.Errorf("Style = %q, want value", got.Style)
	}
	if got.String() != "a b" {
		t.Errorf("String() = %q, want %q", got.String(), "a b")
	}
}
