package totals

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money formats d with exactly two decimals. Digits are grouped by
// thousands only when grouped is true; the default output never carries
// separators and never uses scientific notation.
func Money(d decimal.Decimal, grouped bool) string {
	s := d.StringFixed(2)
	if !grouped {
		return s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, decPart, _ := strings.Cut(s, ".")
	return sign + groupThousands(intPart) + "." + decPart
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	b.Grow(n + n/3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Percent renders a rate for labels such as "GST (9%)": no trailing zeros,
// at most four decimals.
func Percent(rate decimal.Decimal) string {
	return rate.Round(4).String()
}

// Coerce converts a loosely typed number to float64. The boolean is false
// when raw was present but unusable, in which case the value is 0. Nil is
// treated as absent and reported as usable.
func Coerce(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, true
	case float64:
		return clean(v)
	case float32:
		return clean(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return clean(f)
	case string:
		return ParseNumber(v)
	default:
		return 0, false
	}
}

// ParseNumber parses a numeric string. Surrounding whitespace and thousands
// separators are tolerated; an empty string is 0 and usable.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clean(f)
}

func clean(f float64) (float64, bool) {
	if !usable(f) {
		return 0, false
	}
	return f, true
}
