// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// errorPrefix marks unresolved rows in tabular output.
const errorPrefix = "[ERROR] "

// MetadataRecord holds the publication metadata resolved for one DOI.
// A record is immutable after creation. Either it resolved (Title or
// Journal non-empty) or it carries Error and nothing else.
type MetadataRecord struct {
	// DOI is the normalized identifier the record was resolved for. It is
	// always the caller's identifier, never one re-derived from a response.
	DOI string `json:"doi" yaml:"doi"`

	// Title is the publication title. May be empty.
	Title string `json:"title" yaml:"title"`

	// Authors is the formatted author list, "Given Family" joined by "; ".
	Authors string `json:"authors" yaml:"authors"`

	// Journal is the container (journal) name. May be empty.
	Journal string `json:"journal" yaml:"journal"`

	// Publisher is the publisher name.
	Publisher string `json:"publisher" yaml:"publisher"`

	// Year is the publication year, nil when no source reported one.
	Year *int `json:"year" yaml:"year"`

	// Citations is the citation count. Only the primary registry reports
	// it; records resolved through content negotiation leave it nil.
	Citations *int `json:"citations" yaml:"citations"`

	// Source names the backend that produced the record: "crossref" or "csl".
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Error is the human-readable failure cause when both resolution
	// tiers failed. Empty for resolved records.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Resolved reports whether the record carries usable metadata: a
// non-empty title or journal name.
func (r MetadataRecord) Resolved() bool {
	return r.Title != "" || r.Journal != ""
}

// IsError reports whether the record stands in for a failed resolution.
func (r MetadataRecord) IsError() bool {
	return r.Error != ""
}

// DisplayTitle returns the title for tabular output. Failed resolutions
// surface as "[ERROR] <cause>" so the row never silently disappears.
func (r MetadataRecord) DisplayTitle() string {
	if r.IsError() {
		return errorPrefix + r.Error
	}
	return r.Title
}

// ErrorRecord builds the stand-in record for an identifier whose
// resolution failed on both tiers.
func ErrorRecord(doi, cause string) MetadataRecord {
	return MetadataRecord{DOI: doi, Error: cause}
}

// EnrichedRecord is a MetadataRecord plus the reference-table match
// results. It is the final output unit of the pipeline.
type EnrichedRecord struct {
	MetadataRecord `yaml:",inline"`

	// ImpactFactor is the matched impact score, nil when the impact table
	// had no match at or above the threshold.
	ImpactFactor *float64 `json:"impact_factor" yaml:"impact_factor"`

	// Quartile is the matched quartile label ("Q1".."Q4"), empty when unmatched.
	Quartile string `json:"quartile,omitempty" yaml:"quartile,omitempty"`

	// ScopusIndexed reports whether the journal appears in the indexing table.
	ScopusIndexed bool `json:"scopus_indexed" yaml:"scopus_indexed"`

	// WOSIndexed is true when an impact-table match implies Web of
	// Science coverage, false when the policy marks unmatched records as
	// not indexed, and nil when the policy leaves them not-applicable.
	// The true value is inferred from the impact table, not independently
	// verified against Web of Science itself.
	WOSIndexed *bool `json:"wos_indexed" yaml:"wos_indexed"`
}

// YesNo renders a tri-state indexed flag the way the spreadsheet export
// does: "Yes", "No", or empty for not-applicable.
func YesNo(v *bool) string {
	switch {
	case v == nil:
		return ""
	case *v:
		return "Yes"
	default:
		return "No"
	}
}
