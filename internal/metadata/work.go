// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata resolves DOIs to publication metadata records. The
// primary source is the Crossref registry; DOIs it cannot serve fall
// back to doi.org content negotiation, which answers for any
// registration agency with a CSL-JSON document.
package metadata

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pdiddy/doi-navigator/pkg/types"
)

// workJSON decodes both response shapes for a work: the Crossref
// "message" object and a CSL-JSON document. The two use the same logical
// field set; the flexible member types absorb the shape differences
// (list vs. scalar titles, varying date containers).
type workJSON struct {
	Title           flexStrings  `json:"title"`
	ContainerTitle  flexStrings  `json:"container-title"`
	Author          []authorJSON `json:"author"`
	Publisher       string       `json:"publisher"`
	PublisherName   string       `json:"publisher-name"`
	PublishedPrint  cslDate      `json:"published-print"`
	Issued          cslDate      `json:"issued"`
	PublishedOnline cslDate      `json:"published-online"`
	Created         struct {
		DateTime string `json:"date-time"`
	} `json:"created"`
	IsReferencedByCount *int `json:"is-referenced-by-count"`
}

// authorJSON is one author entry. Crossref and CSL both use structured
// given/family names; some records only carry a display name.
type authorJSON struct {
	Given   string `json:"given"`
	Family  string `json:"family"`
	Name    string `json:"name"`
	Literal string `json:"literal"`
}

// flexStrings decodes a JSON field that is either a single string or a
// list of strings. Crossref sends title/container-title as lists,
// CSL-JSON as scalars.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexStrings{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = flexStrings(list)
		return nil
	}
	// Unexpected shape: treat the field as absent rather than failing
	// the whole record.
	*f = nil
	return nil
}

// first returns the first element, or "" when the field was absent.
func (f flexStrings) first() string {
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// cslDate decodes a CSL date container: {"date-parts": [[year, month,
// day]]}. Some agencies emit the parts as strings; both are accepted.
type cslDate struct {
	parts [][]int
}

func (d *cslDate) UnmarshalJSON(data []byte) error {
	var raw struct {
		DateParts [][]any `json:"date-parts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		// Odd container shape: no date rather than a failed record.
		return nil
	}
	for _, inner := range raw.DateParts {
		var row []int
		for _, v := range inner {
			switch n := v.(type) {
			case float64:
				row = append(row, int(n))
			case string:
				if i, err := strconv.Atoi(n); err == nil {
					row = append(row, i)
				}
			}
		}
		d.parts = append(d.parts, row)
	}
	return nil
}

// year returns the year component, the first element of the first inner
// list, if present.
func (d cslDate) year() (int, bool) {
	if len(d.parts) == 0 || len(d.parts[0]) == 0 {
		return 0, false
	}
	return d.parts[0][0], true
}

// fixInitials renders single-letter alphabetic tokens of a given name
// with a trailing period, so "Pravin D Patil" becomes "Pravin D. Patil".
func fixInitials(s string) string {
	tokens := strings.Fields(s)
	for i, tok := range tokens {
		if len(tok) == 1 && isAlpha(tok) {
			tokens[i] = tok + "."
		}
	}
	return strings.Join(tokens, " ")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return len(s) > 0
}

// formatAuthors builds the "Given Family" author list joined by "; ".
// Entries without structured names fall back to their display name;
// entries with neither are dropped.
func formatAuthors(authors []authorJSON) string {
	var parts []string
	for _, a := range authors {
		given := strings.TrimSpace(a.Given)
		family := strings.TrimSpace(a.Family)

		var name string
		if given != "" || family != "" {
			name = strings.TrimSpace(fixInitials(given) + " " + family)
		} else if a.Name != "" {
			name = strings.TrimSpace(a.Name)
		} else {
			name = strings.TrimSpace(a.Literal)
		}
		if name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "; ")
}

// pickYear extracts the publication year, trying the three date
// containers in order and falling back to the creation timestamp. It
// never fails; a record without a usable date has a nil year.
func pickYear(w workJSON) *int {
	for _, d := range []cslDate{w.PublishedPrint, w.Issued, w.PublishedOnline} {
		if y, ok := d.year(); ok {
			return &y
		}
	}
	if len(w.Created.DateTime) >= 4 {
		if y, err := strconv.Atoi(w.Created.DateTime[:4]); err == nil {
			return &y
		}
	}
	return nil
}

// pickPublisher returns the first non-empty of the two publisher field names.
func pickPublisher(w workJSON) string {
	if w.Publisher != "" {
		return w.Publisher
	}
	return w.PublisherName
}

// buildRecord projects a decoded work onto the uniform record type. The
// doi is always the caller's normalized identifier.
func buildRecord(doi string, w workJSON, source string) types.MetadataRecord {
	return types.MetadataRecord{
		DOI:       doi,
		Title:     w.Title.first(),
		Authors:   formatAuthors(w.Author),
		Journal:   w.ContainerTitle.first(),
		Publisher: pickPublisher(w),
		Year:      pickYear(w),
		Source:    source,
	}
}

// recordFromCrossref adapts a Crossref message. This is the only path
// that carries a citation count.
func recordFromCrossref(doi string, w workJSON) types.MetadataRecord {
	rec := buildRecord(doi, w, "crossref")
	rec.Citations = w.IsReferencedByCount
	return rec
}

// recordFromCSL adapts a CSL-JSON document from content negotiation.
// Citation counts are never taken from this shape.
func recordFromCSL(doi string, w workJSON) types.MetadataRecord {
	return buildRecord(doi, w, "csl")
}
