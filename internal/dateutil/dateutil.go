// Package dateutil resolves quotation dates.
//
// A request date is free text, except "auto" and "auto:FORMAT", which
// resolve to the generation date. FORMAT is a preset name or a pattern of
// tokens (YYYY, YY, MMMM, MMM, MM, M, DD, D). Text inside brackets is
// copied literally; other characters are kept as they are.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength bounds a format pattern.
const MaxFormatLength = 50

// DefaultFormat renders "auto" dates, e.g. "05 Mar 2024".
const DefaultFormat = "DD MMM YYYY"

// Presets are named patterns usable as "auto:NAME".
var Presets = map[string]string{
	"quote":    DefaultFormat,
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "D MMMM YYYY",
}

// tokens are matched longest first.
var tokens = []struct {
	token  string
	format func(time.Time) string
}{
	{"YYYY", func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"MMM", func(t time.Time) string { return t.Month().String()[:3] }},
	{"YY", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"DD", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
}

// Format renders t with a token pattern.
func Format(pattern string, t time.Time) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(pattern) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}
		n := 1
		lit := true
		for _, tok := range tokens {
			if strings.HasPrefix(pattern[i:], tok.token) {
				b.WriteString(tok.format(t))
				n, lit = len(tok.token), false
				break
			}
		}
		if lit {
			b.WriteByte(pattern[i])
		}
		i += n
	}
	return b.String(), nil
}

// IsAuto reports whether value asks for the generation date.
func IsAuto(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "auto" || strings.HasPrefix(v, "auto:")
}

// Resolve returns value unchanged unless it is "auto" or "auto:FORMAT", in
// which case it formats now. Presets are matched case-insensitively;
// patterns keep their case.
func Resolve(value string, now time.Time) (string, error) {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)
	switch {
	case lower == "auto":
		return Format(DefaultFormat, now)
	case strings.HasPrefix(lower, "auto:"):
		pattern := v[len("auto:"):]
		if pattern == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := Presets[strings.ToLower(pattern)]; ok {
			pattern = preset
		}
		return Format(pattern, now)
	case strings.HasPrefix(lower, "auto"):
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}
	return value, nil
}

// isoLayouts are the machine dates Display reformats.
var isoLayouts = []string{"2006-01-02", time.RFC3339}

// Display resolves "auto" values and rewrites ISO dates (2024-03-05 or
// RFC 3339) in the quotation style. Other text is returned unchanged.
func Display(value string, now time.Time) (string, error) {
	if IsAuto(value) {
		return Resolve(value, now)
	}
	v := strings.TrimSpace(value)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return Format(DefaultFormat, t)
		}
	}
	return value, nil
}
