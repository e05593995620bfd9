// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package doi normalizes pasted DOI input into bare identifiers.
package doi

import "strings"

// prefixes lists the recognized identifier decorations in priority order.
// At most one prefix is stripped; the first match wins.
var prefixes = []string{
	"https://doi.org/",
	"http://doi.org/",
	"doi:",
	"doi ",
}

// Normalize strips surrounding whitespace and at most one recognized
// resolver-URL or scheme prefix (case-insensitive) from a raw identifier.
// It performs no syntax validation: a malformed DOI is only discovered
// when resolution fails. Normalize is idempotent.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	low := strings.ToLower(s)
	for _, p := range prefixes {
		if strings.HasPrefix(low, p) {
			s = s[len(p):]
			break
		}
	}
	return strings.TrimSpace(s)
}

// Dedupe removes duplicate identifiers, keeping the first occurrence and
// preserving insertion order.
func Dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// SplitInput turns pasted text (one identifier per line, blank lines and
// decoration tolerated) into normalized, de-duplicated identifiers in
// input order.
func SplitInput(text string) []string {
	var ids []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ids = append(ids, Normalize(line))
	}
	return Dedupe(ids)
}
