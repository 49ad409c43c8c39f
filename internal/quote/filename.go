package quote

import (
	"strconv"
	"strings"
	"time"
)

// maxFilenamePart bounds each sanitized component of an output filename.
const maxFilenamePart = 64

// Filename derives the output filename for a rendered quotation:
// "Quotation-<template>-<ref>.pdf". Both parts are restricted to letters,
// digits, hyphen and underscore. When the reference is empty after
// sanitizing, the Unix millisecond timestamp of now replaces it.
func Filename(templateID, refNo string, now time.Time) string {
	tpl := SanitizeFilenamePart(templateID)
	if tpl == "" {
		tpl = DefaultTemplateID
	}
	ref := SanitizeFilenamePart(refNo)
	if ref == "" {
		ref = strconv.FormatInt(now.UnixMilli(), 10)
	}
	return "Quotation-" + tpl + "-" + ref + ".pdf"
}

// SanitizeFilenamePart keeps [A-Za-z0-9_-]. Runs of other characters become
// a single underscore, and leading/trailing separators are trimmed.
func SanitizeFilenamePart(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if isFilenameRune(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	out := strings.Trim(b.String(), "_-")
	if len(out) > maxFilenamePart {
		out = strings.TrimRight(out[:maxFilenamePart], "_-")
	}
	return out
}

func isFilenameRune(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '-' || r == '_'
}
