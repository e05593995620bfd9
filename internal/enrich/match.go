// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Score computes the weighted-ratio similarity of two normalized names
// in [0,100].
func Score(a, b string) int {
	return fuzzy.WRatio(a, b)
}

// BestMatch returns the index and score of the reference key most
// similar to query. Ties resolve to the lowest index, so results are
// deterministic for identical inputs. An empty query or empty key set
// matches nothing (-1, 0).
func BestMatch(query string, keys []string) (int, int) {
	if query == "" || len(keys) == 0 {
		return -1, 0
	}
	bestIdx, bestScore := -1, -1
	for i, key := range keys {
		if s := Score(query, key); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	return bestIdx, bestScore
}
