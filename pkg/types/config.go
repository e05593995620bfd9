// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout. A hung identifier cannot
	// stall a batch longer than this.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "doi-navigator/1.1 (mailto:you@example.org)"). Crossref and
	// doi.org route polite traffic by this header.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResolverConfig holds settings for DOI metadata resolution.
type ResolverConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxWorkers bounds the resolution worker pool (default 12). The
	// effective pool size is min(MaxWorkers, number of identifiers).
	MaxWorkers int `json:"max_workers" yaml:"max_workers"`

	// CacheTTL is how long a per-DOI resolution result is kept (default 7 days).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// TablesConfig holds settings for the reference table loader.
type TablesConfig struct {
	HTTPConfig `yaml:",inline"`

	// ImpactURL is the source of the journal impact/quartile workbook.
	ImpactURL string `json:"impact_url" yaml:"impact_url"`

	// IndexingURL is the source of the indexed-titles workbook.
	IndexingURL string `json:"indexing_url" yaml:"indexing_url"`

	// CacheTTL is how long parsed tables are kept before a refresh (default 12h).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// MatchConfig holds the enrichment matching policy.
type MatchConfig struct {
	// MinScore is the inclusive fuzzy-match acceptance threshold in
	// [0,100]. Default 80; values between 60 and 95 are meaningful.
	MinScore int `json:"min_score" yaml:"min_score"`

	// WOSIfMissing controls the Web of Science default for records with
	// no impact-table match: true yields an explicit false, false yields
	// a not-applicable (nil) flag distinct from false.
	WOSIfMissing bool `json:"wos_if_missing" yaml:"wos_if_missing"`

	// ScopusExactFirst tries exact normalized-name equality against the
	// indexing table before falling back to fuzzy matching. An exact hit
	// bypasses MinScore.
	ScopusExactFirst bool `json:"scopus_exact_first" yaml:"scopus_exact_first"`
}

// DefaultMatchConfig mirrors the matching defaults of the interactive tool.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MinScore:         80,
		WOSIfMissing:     true,
		ScopusExactFirst: true,
	}
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Resolver ResolverConfig `json:"resolver" yaml:"resolver"`
	Tables   TablesConfig   `json:"tables" yaml:"tables"`
	Match    MatchConfig    `json:"match" yaml:"match"`
}
