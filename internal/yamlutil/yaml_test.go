package yamlutil_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-quotepdf/internal/yamlutil"
)

type manifest struct {
	Layout string  `yaml:"layout"`
	Tax    float64 `yaml:"tax"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		want    manifest
	}{
		{"known fields", []byte("layout: vig\ntax: 9"), &manifest{}, nil, manifest{Layout: "vig", Tax: 9}},
		{"unknown field ignored", []byte("layout: agema\nextra: 1"), &manifest{}, nil, manifest{Layout: "agema"}},
		{"nil data", nil, &manifest{}, yamlutil.ErrNilData, manifest{}},
		{"nil destination", []byte("layout: vig"), nil, yamlutil.ErrNilDestination, manifest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := *tt.dest.(*manifest); got != tt.want {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown fields are rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var m manifest
	err := yamlutil.UnmarshalStrict([]byte("layout: vig\nlayuot: typo"), &m)
	if err == nil {
		t.Fatal("UnmarshalStrict() error = nil, want unknown field error")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want prefix 'yamlutil:'", err)
	}
}

// ---------------------------------------------------------------------------
// TestToJSON - YAML request documents become JSON
// ---------------------------------------------------------------------------

func TestToJSON(t *testing.T) {
	t.Parallel()

	src := []byte(`template: VIG
quotation:
  ref_no: Q-1
  items:
    - description: Widget
      qty: 2
      unit_price: 10
`)
	out, err := yamlutil.ToJSON(src)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var got struct {
		Template  string `json:"template"`
		Quotation struct {
			RefNo string `json:"ref_no"`
			Items []struct {
				Qty float64 `json:"qty"`
			} `json:"items"`
		} `json:"quotation"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Template != "VIG" || got.Quotation.RefNo != "Q-1" || len(got.Quotation.Items) != 1 || got.Quotation.Items[0].Qty != 2 {
		t.Errorf("ToJSON() = %s", out)
	}

	if _, err := yamlutil.ToJSON(nil); !errors.Is(err, yamlutil.ErrNilData) {
		t.Errorf("ToJSON(nil) error = %v, want ErrNilData", err)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Modifies the package-level MaxInputSize; not parallel.
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })
	yamlutil.MaxInputSize = 16

	data := []byte("layout: " + strings.Repeat("x", 32))
	var m manifest
	for name, err := range map[string]error{
		"Unmarshal":       yamlutil.Unmarshal(data, &m),
		"UnmarshalStrict": yamlutil.UnmarshalStrict(data, &m),
	} {
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("%s() error = %v, want ErrInputTooLarge", name, err)
		}
	}
	if _, err := yamlutil.ToJSON(data); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("ToJSON() error = %v, want ErrInputTooLarge", err)
	}
}
