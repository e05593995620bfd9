// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reftable

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pdiddy/doi-navigator/pkg/types"
)

const defaultTableTTL = 12 * time.Hour

// Loader fetches and caches the two reference tables. Each source URL
// is cached independently for the configured TTL; a refresh parses into
// a fresh table, so callers holding the previous snapshot are never
// disturbed. This cache is independent of the per-DOI resolution cache.
type Loader struct {
	client *http.Client
	cfg    types.TablesConfig

	mu       sync.Mutex
	impact   tableEntry[*types.ImpactTable]
	indexing tableEntry[*types.IndexingTable]

	// now is the clock, replaceable in tests.
	now func() time.Time
}

type tableEntry[T any] struct {
	url       string
	table     T
	expiresAt time.Time
}

// NewLoader builds a Loader. A zero CacheTTL falls back to 12 hours.
func NewLoader(client *http.Client, cfg types.TablesConfig) *Loader {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultTableTTL
	}
	return &Loader{client: client, cfg: cfg, now: time.Now}
}

// LoadImpact returns the impact table for the configured source,
// fetching and parsing it on the first call and after expiry. Callers
// within one cache window observe the same snapshot.
func (l *Loader) LoadImpact(ctx context.Context) (*types.ImpactTable, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	url := l.cfg.ImpactURL
	if l.impact.table != nil && l.impact.url == url && l.now().Before(l.impact.expiresAt) {
		return l.impact.table, nil
	}

	data, err := Fetch(ctx, l.client, url, l.cfg.UserAgent)
	if err != nil {
		return nil, err
	}
	table, err := ParseImpact(data)
	if err != nil {
		return nil, err
	}

	l.impact = tableEntry[*types.ImpactTable]{
		url:       url,
		table:     table,
		expiresAt: l.now().Add(l.cfg.CacheTTL),
	}
	return table, nil
}

// LoadIndexing returns the indexed-titles table, with the same caching
// behavior as LoadImpact.
func (l *Loader) LoadIndexing(ctx context.Context) (*types.IndexingTable, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	url := l.cfg.IndexingURL
	if l.indexing.table != nil && l.indexing.url == url && l.now().Before(l.indexing.expiresAt) {
		return l.indexing.table, nil
	}

	data, err := Fetch(ctx, l.client, url, l.cfg.UserAgent)
	if err != nil {
		return nil, err
	}
	table, err := ParseIndexing(data)
	if err != nil {
		return nil, err
	}

	l.indexing = tableEntry[*types.IndexingTable]{
		url:       url,
		table:     table,
		expiresAt: l.now().Add(l.cfg.CacheTTL),
	}
	return table, nil
}
