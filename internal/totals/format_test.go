package totals

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		grouped bool
		want    string
	}{
		{"zero", "0", false, "0.00"},
		{"trailing zeros kept", "12.5", false, "12.50"},
		{"large without grouping", "1234567.891", false, "1234567.89"},
		{"large with grouping", "1234567.891", true, "1,234,567.89"},
		{"exact thousand grouped", "1000", true, "1,000.00"},
		{"small grouped", "999.995", true, "1,000.00"},
		{"negative grouped", "-12345.6", true, "-12,345.60"},
		{"tiny never scientific", "0.0000001", false, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Money(decimal.RequireFromString(tt.in), tt.grouped); got != tt.want {
				t.Errorf("Money(%s, %v) = %q, want %q", tt.in, tt.grouped, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{9, "9"},
		{0, "0"},
		{7.5, "7.5"},
		{12.345678, "12.3457"},
	}

	for _, tt := range tests {
		if got := Percent(decimal.NewFromFloat(tt.in)); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    any
		want   float64
		wantOK bool
	}{
		{"nil is absent", nil, 0, true},
		{"float", 2.5, 2.5, true},
		{"int", 3, 3, true},
		{"json number", json.Number("4.25"), 4.25, true},
		{"bad json number", json.Number("x"), 0, false},
		{"numeric string", " 10.5 ", 10.5, true},
		{"grouped string", "1,250.00", 1250, true},
		{"empty string", "", 0, true},
		{"garbage string", "ten", 0, false},
		{"NaN string", "NaN", 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Coerce(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Coerce(%v) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
