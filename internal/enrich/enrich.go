// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"github.com/pdiddy/doi-navigator/pkg/types"
)

// Enrich matches each record's journal name against the reference
// tables and returns the enriched batch in input order. The tables are
// read-only for the duration of the call; Enrich is a pure batch
// transform with no cross-call state.
//
// Impact matching attaches the impact score and quartile of the best
// fuzzy match at or above cfg.MinScore (inclusive) and, as a policy
// side effect, marks the record as Web of Science indexed. That flag is
// inferred from impact-table presence, not verified against Web of
// Science itself.
//
// Indexing matching is two-stage: with cfg.ScopusExactFirst an exact
// normalized-name hit short-circuits regardless of threshold; remaining
// records fall back to the fuzzy best-match rule.
func Enrich(records []types.MetadataRecord, impact *types.ImpactTable, indexing *types.IndexingTable, cfg types.MatchConfig) []types.EnrichedRecord {
	queries := make([]string, len(records))
	for i, rec := range records {
		queries[i] = NormalizeJournal(rec.Journal)
	}

	out := make([]types.EnrichedRecord, len(records))
	for i, rec := range records {
		out[i] = types.EnrichedRecord{MetadataRecord: rec}
		if cfg.WOSIfMissing {
			f := false
			out[i].WOSIndexed = &f
		}
	}

	matchImpact(out, queries, impact, cfg)
	matchIndexing(out, queries, indexing, cfg)
	return out
}

func matchImpact(out []types.EnrichedRecord, queries []string, impact *types.ImpactTable, cfg types.MatchConfig) {
	if impact.Empty() {
		return
	}
	keys := impact.Keys()
	for i, q := range queries {
		idx, score := BestMatch(q, keys)
		if idx < 0 || score < cfg.MinScore {
			continue
		}
		row := impact.Rows[idx]
		out[i].ImpactFactor = row.Impact
		out[i].Quartile = row.Quartile
		if cfg.WOSIfMissing {
			v := true
			out[i].WOSIndexed = &v
		}
	}
}

func matchIndexing(out []types.EnrichedRecord, queries []string, indexing *types.IndexingTable, cfg types.MatchConfig) {
	if indexing.Empty() {
		return
	}

	var exact map[string]struct{}
	if cfg.ScopusExactFirst {
		exact = make(map[string]struct{}, len(indexing.Rows))
		for _, row := range indexing.Rows {
			exact[row.Norm] = struct{}{}
		}
	}

	keys := indexing.Keys()
	for i, q := range queries {
		if q == "" {
			continue
		}
		if exact != nil {
			if _, ok := exact[q]; ok {
				out[i].ScopusIndexed = true
				continue
			}
		}
		if _, score := BestMatch(q, keys); score >= cfg.MinScore {
			out[i].ScopusIndexed = true
		}
	}
}
