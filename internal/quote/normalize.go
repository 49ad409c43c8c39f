package quote

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/alnah/go-quotepdf/internal/totals"
	"github.com/alnah/go-quotepdf/internal/yamlutil"
)

// Diagnostic records a field that was defaulted or coerced while
// normalizing. Diagnostics never abort a request; callers log them.
type Diagnostic struct {
	Field   string
	Message string
}

func (d Diagnostic) String() string {
	return d.Field + ": " + d.Message
}

// Field aliases accepted from legacy payloads, in priority order.
var (
	templateKeys  = []string{"template", "templateId", "template_id"}
	companyKeys   = []string{"company", "client"}
	qtyKeys       = []string{"qty", "quantity"}
	uomKeys       = []string{"uom", "unit"}
	unitKeys      = []string{"unit_price", "unitPrice", "price"}
	itemIDKeys    = []string{"item_id", "itemId", "product", "code"}
	lineTotalKeys = []string{"total", "amount"}
	discountKeys  = []string{"discount_rate", "discountRate"}
	taxKeys       = []string{"gst_rate", "gstRate", "tax_rate", "taxRate"}
	subtotalKeys  = []string{"subtotal"}
	taxAmountKeys = []string{"gst", "tax"}
	grandKeys     = []string{"final_price", "finalPrice", "grand_total", "grandTotal"}
)

// Normalize maps any accepted request payload onto a Request.
//
// Accepted shapes:
//
//	{"template": id, "data": {...}}
//	{"template": id, "company"|"client": {...}, "customer": {...}, "quotation": {...}}
//	{"template": id, "items": [...], "ref_no": ..., ...}   (flat)
//
// Only a payload that is not a JSON object fails, with an InvalidInputError.
// Every other problem degrades to a default and yields a Diagnostic.
func Normalize(raw []byte) (*Request, []Diagnostic, error) {
	if len(raw) == 0 {
		return nil, nil, &InvalidInputError{Err: errors.New("empty body")}
	}
	if !gjson.ValidBytes(raw) {
		return nil, nil, &InvalidInputError{Err: errors.New("malformed JSON")}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, nil, &InvalidInputError{Err: errors.New("request must be a JSON object")}
	}

	n := &normalizer{}
	req := &Request{}

	body := root
	if data := root.Get("data"); data.IsObject() {
		body = data
	}
	req.TemplateID = strings.TrimSpace(first(root, templateKeys).String())
	if req.TemplateID == "" && body.Raw != root.Raw {
		req.TemplateID = strings.TrimSpace(first(body, templateKeys).String())
	}

	if c := first(body, companyKeys); c.IsObject() {
		req.Company = n.party(c)
	}
	if c := body.Get("customer"); c.IsObject() {
		req.Customer = n.party(c)
	} else {
		req.Customer = Party{
			Name:      n.text(body, "customer_name", "customer"),
			Address:   n.text(body, "customer_address"),
			Attention: n.text(body, "attention", "attn"),
			Phone:     n.text(body, "customer_phone"),
			Email:     n.text(body, "customer_email"),
		}
	}

	q := body
	if nested := body.Get("quotation"); nested.IsObject() {
		q = nested
	}
	req.Quotation = n.quotation(q, body)

	return req, n.diags, nil
}

// NormalizeYAML converts a YAML request document to JSON and normalizes it.
func NormalizeYAML(raw []byte) (*Request, []Diagnostic, error) {
	js, err := yamlutil.ToJSON(raw)
	if err != nil {
		return nil, nil, &InvalidInputError{Err: err}
	}
	return Normalize(js)
}

type normalizer struct {
	diags []Diagnostic
}

func (n *normalizer) warn(field, format string, args ...any) {
	n.diags = append(n.diags, Diagnostic{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (n *normalizer) party(v gjson.Result) Party {
	p := Party{
		Name:      n.text(v, "name", "company_name"),
		Address:   n.address(v),
		Attention: n.text(v, "attention", "attn", "contact"),
		Phone:     n.text(v, "phone", "tel"),
		Email:     n.text(v, "email"),
		Website:   n.text(v, "website", "web", "url"),
		RegNo:     n.text(v, "reg_no", "regNo", "registration_no", "uen"),
	}
	return p
}

// address accepts a string, an array of lines, or address1..address3.
func (n *normalizer) address(v gjson.Result) string {
	a := v.Get("address")
	if a.IsArray() {
		return strings.Join(n.strings(a, "address"), "\n")
	}
	if a.Exists() {
		return n.text(v, "address")
	}
	var lines []string
	for _, k := range []string{"address1", "address2", "address3"} {
		if s := n.text(v, k); s != "" {
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, "\n")
}

func (n *normalizer) quotation(q, body gjson.Result) Quotation {
	out := Quotation{
		RefNo:     n.text(q, "ref_no", "refNo", "reference_no"),
		Date:      n.text(q, "date"),
		From:      n.text(q, "from"),
		Reference: n.text(q, "reference"),
		Subject:   n.text(q, "subject"),
		Location:  n.text(q, "location"),
		Validity:  n.text(q, "validity"),
		Currency:  n.text(q, "currency"),
	}
	if out.Currency == "" {
		out.Currency = n.text(body, "quote_currency", "currency")
	}

	items := q.Get("items")
	switch {
	case items.IsArray():
		for i, it := range items.Array() {
			out.Items = append(out.Items, n.item(it, i))
		}
	case items.Exists():
		n.warn("items", "expected array, got %s; using no items", items.Type)
	}

	out.DiscountRate = n.number(q, body, "discount_rate", discountKeys)
	out.TaxRate = n.number(q, body, "gst_rate", taxKeys)
	out.Subtotal = n.number(q, body, "subtotal", subtotalKeys)
	out.Tax = n.number(q, body, "gst", taxAmountKeys)
	out.GrandTotal = n.number(q, body, "final_price", grandKeys)

	if r := q.Get("remarks"); r.Exists() {
		if r.IsArray() {
			out.Remarks = n.strings(r, "remarks")
		} else if s := strings.TrimSpace(r.String()); s != "" {
			out.Remarks = []string{s}
		}
	}

	// Terms live on the quotation or, in older payloads, at the top level.
	terms := q.Get("terms")
	if !terms.Exists() {
		terms = body.Get("terms")
	}
	n.terms(terms, &out)
	if out.PaymentTerms == "" {
		out.PaymentTerms = n.text(q, "payment_terms", "paymentTerms")
	}
	return out
}

// terms accepts a payment-terms string, a {payment, validity} object, or
// an array of clauses.
func (n *normalizer) terms(v gjson.Result, out *Quotation) {
	switch {
	case !v.Exists() || v.Type == gjson.Null:
	case v.Type == gjson.String:
		out.PaymentTerms = strings.TrimSpace(v.String())
	case v.IsObject():
		out.PaymentTerms = n.text(v, "payment")
		if out.Validity == "" {
			out.Validity = n.text(v, "validity")
		}
	case v.IsArray():
		for i, c := range v.Array() {
			switch {
			case c.Type == gjson.String:
				out.Terms = append(out.Terms, Clause{Points: []string{c.String()}})
			case c.IsObject():
				cl := Clause{Title: n.text(c, "title", "heading")}
				if pts := c.Get("points"); pts.IsArray() {
					cl.Points = n.strings(pts, fmt.Sprintf("terms[%d].points", i))
				} else if s := n.text(c, "text", "body"); s != "" {
					cl.Points = []string{s}
				}
				out.Terms = append(out.Terms, cl)
			default:
				n.warn(fmt.Sprintf("terms[%d]", i), "unsupported %s ignored", c.Type)
			}
		}
	default:
		n.warn("terms", "unsupported %s ignored", v.Type)
	}
}

func (n *normalizer) item(v gjson.Result, i int) LineItem {
	field := fmt.Sprintf("items[%d]", i)
	if !v.IsObject() {
		n.warn(field, "expected object, got %s", v.Type)
		return LineItem{}
	}

	it := LineItem{
		ItemID:      n.text(v, itemIDKeys...),
		Description: n.text(v, "description", "desc", "name"),
		UOM:         n.text(v, uomKeys...),
	}
	if f := n.number(v, gjson.Result{}, field+".qty", qtyKeys); f != nil {
		it.Qty = *f
	}
	if f := n.number(v, gjson.Result{}, field+".unit_price", unitKeys); f != nil {
		it.UnitPrice = *f
	}
	it.Total = n.number(v, gjson.Result{}, field+".total", lineTotalKeys)
	return it
}

// number reads the first present alias from primary, then fallback. It
// returns nil when absent or null; unparsable values become 0 with a
// diagnostic.
func (n *normalizer) number(primary, fallback gjson.Result, field string, keys []string) *float64 {
	v := first(primary, keys)
	if !v.Exists() && fallback.Exists() {
		v = first(fallback, keys)
	}
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}

	var f float64
	ok := true
	switch v.Type {
	case gjson.Number:
		f = v.Float()
	case gjson.String:
		if strings.TrimSpace(v.Str) == "" {
			return nil
		}
		f, ok = totals.ParseNumber(v.Str)
	default:
		ok = false
	}
	if !ok {
		n.warn(field, "not a number (%s), using 0", v.Raw)
		f = 0
	}
	return &f
}

// text returns the first present alias as a trimmed string. Numbers are
// accepted verbatim; objects and arrays are dropped with a diagnostic.
func (n *normalizer) text(v gjson.Result, keys ...string) string {
	r := first(v, keys)
	switch r.Type {
	case gjson.String:
		return strings.TrimSpace(r.Str)
	case gjson.Number:
		return r.Raw
	case gjson.True, gjson.False, gjson.Null:
		return ""
	}
	if r.Exists() {
		n.warn(keys[0], "expected text, got %s", r.Raw)
	}
	return ""
}

func (n *normalizer) strings(v gjson.Result, field string) []string {
	var out []string
	for i, e := range v.Array() {
		switch e.Type {
		case gjson.String:
			if s := strings.TrimSpace(e.Str); s != "" {
				out = append(out, s)
			}
		case gjson.Number:
			out = append(out, e.Raw)
		default:
			n.warn(fmt.Sprintf("%s[%d]", field, i), "expected text, got %s", e.Type)
		}
	}
	return out
}

// first returns the first alias present in v.
func first(v gjson.Result, keys []string) gjson.Result {
	for _, k := range keys {
		if r := v.Get(k); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}
