package quote

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNormalize_Shapes - Every accepted payload shape maps to one Request
// ---------------------------------------------------------------------------

func TestNormalize_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "nested quotation",
			body: `{"template":"VIG","company":{"name":"Acme"},"customer":{"name":"Bob"},
				"quotation":{"ref_no":"Q-1","items":[{"description":"Widget","qty":2,"unit_price":10}],"gst_rate":9}}`,
		},
		{
			name: "data envelope",
			body: `{"template":"VIG","data":{"client":{"name":"Acme"},"customer":{"name":"Bob"},
				"quotation":{"refNo":"Q-1","items":[{"description":"Widget","quantity":"2","unitPrice":"10.00"}]},"gst_rate":9}}`,
		},
		{
			name: "flat fields",
			body: `{"templateId":"VIG","company":{"name":"Acme"},"customer_name":"Bob","ref_no":"Q-1",
				"items":[{"description":"Widget","qty":2,"price":10}],"gstRate":"9"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, diags, err := Normalize([]byte(tt.body))
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if len(diags) != 0 {
				t.Errorf("Normalize() diagnostics = %v, want none", diags)
			}
			if req.TemplateID != "VIG" {
				t.Errorf("TemplateID = %q, want VIG", req.TemplateID)
			}
			if req.Company.Name != "Acme" || req.Customer.Name != "Bob" {
				t.Errorf("parties = %+v / %+v", req.Company, req.Customer)
			}
			q := req.Quotation
			if q.RefNo != "Q-1" {
				t.Errorf("RefNo = %q, want Q-1", q.RefNo)
			}
			if len(q.Items) != 1 || q.Items[0].Qty != 2 || q.Items[0].UnitPrice != 10 || q.Items[0].Description != "Widget" {
				t.Errorf("Items = %+v", q.Items)
			}
			if q.TaxRate == nil || *q.TaxRate != 9 {
				t.Errorf("TaxRate = %v, want 9", q.TaxRate)
			}
			if q.DiscountRate != nil {
				t.Errorf("DiscountRate = %v, want nil (renderer default)", *q.DiscountRate)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNormalize_Fields - Aliases, overrides, terms and remarks
// ---------------------------------------------------------------------------

func TestNormalize_Fields(t *testing.T) {
	t.Parallel()

	t.Run("overrides are preserved", func(t *testing.T) {
		t.Parallel()

		req, _, err := Normalize([]byte(`{"quotation":{"subtotal":100,"gst":"7.5","final_price":107.5}}`))
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		q := req.Quotation
		if q.Subtotal == nil || *q.Subtotal != 100 || q.Tax == nil || *q.Tax != 7.5 || q.GrandTotal == nil || *q.GrandTotal != 107.5 {
			t.Errorf("overrides = %v %v %v", q.Subtotal, q.Tax, q.GrandTotal)
		}
	})

	t.Run("item aliases", func(t *testing.T) {
		t.Parallel()

		req, _, err := Normalize([]byte(`{"quotation":{"items":[
			{"product":"P-1","description":"Cable","quantity":3,"unit":"m","unit_price":1.5,"total":4}
		]}}`))
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		it := req.Quotation.Items[0]
		if it.ItemID != "P-1" || it.UOM != "m" || it.Qty != 3 || it.UnitPrice != 1.5 || it.Total == nil || *it.Total != 4 {
			t.Errorf("item = %+v", it)
		}
	})

	t.Run("address lines and quote currency", func(t *testing.T) {
		t.Parallel()

		req, _, err := Normalize([]byte(`{"client":{"name":"Lyt","address1":"1 Road","address2":"Singapore"},
			"quote_currency":"USD","quotation":{}}`))
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if req.Company.Address != "1 Road\nSingapore" {
			t.Errorf("Address = %q", req.Company.Address)
		}
		if req.Quotation.Currency != "USD" {
			t.Errorf("Currency = %q, want USD", req.Quotation.Currency)
		}
	})

	t.Run("registration number aliases", func(t *testing.T) {
		t.Parallel()

		for _, key := range []string{"reg_no", "regNo", "uen"} {
			req, _, err := Normalize([]byte(`{"company":{"name":"AGEMA","` + key + `":"201234567K"},"quotation":{}}`))
			if err != nil {
				t.Fatalf("Normalize(%s) error = %v", key, err)
			}
			if req.Company.RegNo != "201234567K" {
				t.Errorf("%s: RegNo = %q, want 201234567K", key, req.Company.RegNo)
			}
		}
	})

	t.Run("terms as payment string", func(t *testing.T) {
		t.Parallel()

		req, _, _ := Normalize([]byte(`{"quotation":{"terms":"30 days"}}`))
		if req.Quotation.PaymentTerms != "30 days" || len(req.Quotation.Terms) != 0 {
			t.Errorf("PaymentTerms = %q, Terms = %v", req.Quotation.PaymentTerms, req.Quotation.Terms)
		}
	})

	t.Run("top-level terms object", func(t *testing.T) {
		t.Parallel()

		req, _, _ := Normalize([]byte(`{"quotation":{},"terms":{"payment":"COD","validity":"14 days"}}`))
		if req.Quotation.PaymentTerms != "COD" || req.Quotation.Validity != "14 days" {
			t.Errorf("PaymentTerms = %q, Validity = %q", req.Quotation.PaymentTerms, req.Quotation.Validity)
		}
	})

	t.Run("terms as clause array", func(t *testing.T) {
		t.Parallel()

		req, _, _ := Normalize([]byte(`{"quotation":{"terms":[
			{"title":"Payment","points":["Net **30** days"]},
			"Prices exclude delivery"
		]}}`))
		terms := req.Quotation.Terms
		if len(terms) != 2 || terms[0].Title != "Payment" || terms[0].Points[0] != "Net **30** days" || terms[1].Points[0] != "Prices exclude delivery" {
			t.Errorf("Terms = %+v", terms)
		}
	})

	t.Run("remarks string becomes single remark", func(t *testing.T) {
		t.Parallel()

		req, _, _ := Normalize([]byte(`{"quotation":{"remarks":"Delivery excluded"}}`))
		if len(req.Quotation.Remarks) != 1 || req.Quotation.Remarks[0] != "Delivery excluded" {
			t.Errorf("Remarks = %v", req.Quotation.Remarks)
		}
	})

	t.Run("missing fields default to empty", func(t *testing.T) {
		t.Parallel()

		req, diags, err := Normalize([]byte(`{}`))
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if len(diags) != 0 {
			t.Errorf("diagnostics = %v, want none", diags)
		}
		if req.TemplateID != "" || req.Quotation.RefNo != "" || req.Quotation.Items != nil {
			t.Errorf("Request = %+v, want zero values", req)
		}
	})
}

// ---------------------------------------------------------------------------
// TestNormalize_Degraded - Bad fields coerce with a diagnostic
// ---------------------------------------------------------------------------

func TestNormalize_Degraded(t *testing.T) {
	t.Parallel()

	req, diags, err := Normalize([]byte(`{"quotation":{
		"items":[{"description":"A","qty":"two","unit_price":5},"oops"],
		"gst_rate":"nine",
		"ref_no":{"x":1}
	}}`))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	q := req.Quotation
	if len(q.Items) != 2 || q.Items[0].Qty != 0 || q.Items[0].UnitPrice != 5 {
		t.Errorf("Items = %+v", q.Items)
	}
	if q.TaxRate == nil || *q.TaxRate != 0 {
		t.Errorf("TaxRate = %v, want 0", q.TaxRate)
	}

	fields := make([]string, len(diags))
	for i, d := range diags {
		fields[i] = d.Field
	}
	joined := strings.Join(fields, ",")
	for _, want := range []string{"items[0].qty", "items[1]", "gst_rate", "ref_no"} {
		if !strings.Contains(joined, want) {
			t.Errorf("diagnostics %v missing %q", fields, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestNormalize_Invalid - Only non-object payloads fail
// ---------------------------------------------------------------------------

func TestNormalize_Invalid(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "{", "[1,2]", `"text"`, "42"} {
		_, _, err := Normalize([]byte(body))
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Normalize(%q) error = %v, want ErrInvalidInput", body, err)
		}
		var iie *InvalidInputError
		if !errors.As(err, &iie) {
			t.Errorf("Normalize(%q) error type = %T, want *InvalidInputError", body, err)
		}
	}
}

func TestNormalizeYAML(t *testing.T) {
	t.Parallel()

	req, _, err := NormalizeYAML([]byte("template: agema\nquotation:\n  ref_no: Q-9\n  gst_rate: 8\n"))
	if err != nil {
		t.Fatalf("NormalizeYAML() error = %v", err)
	}
	if req.TemplateID != "agema" || req.Quotation.RefNo != "Q-9" || *req.Quotation.TaxRate != 8 {
		t.Errorf("Request = %+v", req)
	}

	if _, _, err := NormalizeYAML([]byte("key: [unclosed")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NormalizeYAML(bad) error = %v, want ErrInvalidInput", err)
	}
}
