// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich matches resolved journal names against the reference
// tables and attaches impact, quartile, and indexing flags to records.
package enrich

import "strings"

// punctReplacer maps the journal-name punctuation set to spaces and
// folds "&" into "and". Applied identically to query strings and
// reference rows so comparisons stay symmetric.
var punctReplacer = strings.NewReplacer(
	"&", "and",
	",", " ",
	".", " ",
	":", " ",
	";", " ",
	"(", " ",
	")", " ",
	"[", " ",
	"]", " ",
)

// NormalizeJournal canonicalizes a journal name for comparison:
// lowercase, "&" replaced by "and", the punctuation set replaced by
// spaces, whitespace collapsed and trimmed.
func NormalizeJournal(s string) string {
	s = punctReplacer.Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}
