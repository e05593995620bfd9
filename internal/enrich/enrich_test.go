// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doi-navigator/pkg/types"
)

func impactTable(names ...string) *types.ImpactTable {
	t := &types.ImpactTable{}
	for i, n := range names {
		f := float64(i + 1)
		t.Rows = append(t.Rows, types.ImpactRow{
			Journal:  n,
			Impact:   &f,
			Quartile: "Q1",
			Norm:     NormalizeJournal(n),
		})
	}
	return t
}

func indexingTable(names ...string) *types.IndexingTable {
	t := &types.IndexingTable{}
	for _, n := range names {
		t.Rows = append(t.Rows, types.IndexingRow{Title: n, Norm: NormalizeJournal(n)})
	}
	return t
}

func records(journals ...string) []types.MetadataRecord {
	recs := make([]types.MetadataRecord, len(journals))
	for i, j := range journals {
		recs[i] = types.MetadataRecord{DOI: "10.1/x", Title: "T", Journal: j}
	}
	return recs
}

func TestNormalizeJournal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "NATURE", "nature"},
		{"ampersand to and", "Science & Engineering", "science and engineering"},
		{"punctuation to spaces", "IEEE Trans. on Computers", "ieee trans on computers"},
		{"all punctuation classes", "a,b.c:d;e(f)g[h]i", "a b c d e f g h i"},
		{"whitespace collapsed", "  J.   Chem.  Phys.  ", "j chem phys"},
		{"empty", "", ""},
		{"only punctuation", ".,;:", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeJournal(tt.input))
		})
	}
}

func TestNormalizeJournalSymmetry(t *testing.T) {
	assert.Equal(t,
		NormalizeJournal("IEEE Trans. on Computers"),
		NormalizeJournal("ieee trans on computers"))
	assert.Equal(t,
		NormalizeJournal("Agriculture & Food Security"),
		NormalizeJournal("agriculture and food security"))
}

func TestBestMatchDeterministicTieBreak(t *testing.T) {
	// Two identical keys tie at the maximum; the lowest index wins.
	idx, score := BestMatch("nature", []string{"nature", "nature"})
	assert.Equal(t, 0, idx)
	assert.Equal(t, 100, score)
}

func TestBestMatchEmptyInputs(t *testing.T) {
	idx, score := BestMatch("", []string{"nature"})
	assert.Equal(t, -1, idx)
	assert.Equal(t, 0, score)

	idx, _ = BestMatch("nature", nil)
	assert.Equal(t, -1, idx)
}

func TestEnrichImpactMatch(t *testing.T) {
	impact := impactTable("Nature", "Ageing Research Reviews")
	cfg := types.DefaultMatchConfig()

	out := Enrich(records("Ageing Research Reviews"), impact, &types.IndexingTable{}, cfg)
	require.Len(t, out, 1)

	require.NotNil(t, out[0].ImpactFactor)
	assert.Equal(t, 2.0, *out[0].ImpactFactor)
	assert.Equal(t, "Q1", out[0].Quartile)
	require.NotNil(t, out[0].WOSIndexed, "impact match implies the WoS flag")
	assert.True(t, *out[0].WOSIndexed)
}

func TestEnrichFuzzyImpactMatch(t *testing.T) {
	// Punctuation and case differences are absorbed by normalization;
	// the small token difference is left to the fuzzy scorer.
	impact := impactTable("IEEE Transactions on Computers")
	cfg := types.DefaultMatchConfig()

	out := Enrich(records("IEEE Transactions on Computers (TC)"), impact, &types.IndexingTable{}, cfg)
	require.NotNil(t, out[0].ImpactFactor, "near-identical names should clear the default threshold")
}

func TestEnrichNoMatchBelowThreshold(t *testing.T) {
	impact := impactTable("Journal of Theoretical Biology")
	cfg := types.DefaultMatchConfig()
	cfg.MinScore = 95

	out := Enrich(records("Annals of Improbable Research"), impact, &types.IndexingTable{}, cfg)
	assert.Nil(t, out[0].ImpactFactor)
	assert.Empty(t, out[0].Quartile)
	require.NotNil(t, out[0].WOSIndexed)
	assert.False(t, *out[0].WOSIndexed)
}

func TestEnrichThresholdInclusive(t *testing.T) {
	// An identical name scores exactly 100; with the threshold at its
	// ceiling the match must still be accepted, proving score >= min.
	impact := impactTable("Cell")
	cfg := types.DefaultMatchConfig()
	cfg.MinScore = 100

	out := Enrich(records("Cell"), impact, &types.IndexingTable{}, cfg)
	require.NotNil(t, out[0].ImpactFactor)
}

func TestEnrichScopusExactFirstBypassesThreshold(t *testing.T) {
	indexing := indexingTable("Ageing Research Reviews")
	cfg := types.DefaultMatchConfig()
	cfg.MinScore = 95
	cfg.ScopusExactFirst = true

	// Same name modulo normalization: exact stage hits, threshold never
	// consulted.
	out := Enrich(records("AGEING RESEARCH REVIEWS."), &types.ImpactTable{}, indexing, cfg)
	assert.True(t, out[0].ScopusIndexed)
}

func TestEnrichScopusFuzzyFallback(t *testing.T) {
	indexing := indexingTable("Frontiers in Microbiology")
	cfg := types.DefaultMatchConfig()
	cfg.ScopusExactFirst = true

	out := Enrich(records("Frontiers in Microbiology journal"), &types.ImpactTable{}, indexing, cfg)
	assert.True(t, out[0].ScopusIndexed, "fuzzy stage should catch the near match")
}

func TestEnrichEmptyTables(t *testing.T) {
	recs := records("Nature", "")

	t.Run("wos_if_missing true", func(t *testing.T) {
		cfg := types.DefaultMatchConfig()
		out := Enrich(recs, &types.ImpactTable{}, &types.IndexingTable{}, cfg)
		for _, r := range out {
			assert.Nil(t, r.ImpactFactor)
			assert.Empty(t, r.Quartile)
			assert.False(t, r.ScopusIndexed)
			require.NotNil(t, r.WOSIndexed)
			assert.False(t, *r.WOSIndexed, "policy on: unmatched is an explicit false")
		}
	})

	t.Run("wos_if_missing false", func(t *testing.T) {
		cfg := types.DefaultMatchConfig()
		cfg.WOSIfMissing = false
		out := Enrich(recs, &types.ImpactTable{}, &types.IndexingTable{}, cfg)
		for _, r := range out {
			assert.Nil(t, r.WOSIndexed, "policy off: unmatched is not-applicable, distinct from false")
		}
	})
}

func TestEnrichEmptyJournalNeverMatches(t *testing.T) {
	impact := impactTable("Nature")
	indexing := indexingTable("Nature")
	cfg := types.DefaultMatchConfig()
	cfg.MinScore = 60

	out := Enrich(records(""), impact, indexing, cfg)
	assert.Nil(t, out[0].ImpactFactor)
	assert.False(t, out[0].ScopusIndexed)
}

func TestEnrichPreservesOrderAndMetadata(t *testing.T) {
	recs := []types.MetadataRecord{
		{DOI: "10.1/a", Title: "A", Journal: "Nature"},
		{DOI: "10.1/fail", Error: "not found"},
		{DOI: "10.1/b", Title: "B", Journal: "Cell"},
	}
	out := Enrich(recs, impactTable("Nature", "Cell"), indexingTable("Nature"), types.DefaultMatchConfig())

	require.Len(t, out, 3)
	assert.Equal(t, "10.1/a", out[0].DOI)
	assert.Equal(t, "10.1/fail", out[1].DOI)
	assert.Equal(t, "10.1/b", out[2].DOI)
	assert.True(t, out[1].IsError(), "error rows pass through enrichment untouched")
	assert.Nil(t, out[1].ImpactFactor)
}
