// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/doi-navigator/internal/cache"
	"github.com/pdiddy/doi-navigator/pkg/types"
)

const (
	defaultCacheTTL   = 7 * 24 * time.Hour
	defaultUserAgent  = "doi-navigator/1.1"
	defaultMaxWorkers = 12
)

// Resolver turns normalized DOIs into metadata records using the
// two-tier protocol: Crossref first, doi.org content negotiation second.
// Resolution never fails past this boundary; identifiers no source can
// serve come back as error records.
type Resolver struct {
	client *http.Client
	store  cache.Store
	cfg    types.ResolverConfig
}

// NewResolver builds a Resolver. store may be nil to disable result
// caching. Zero config fields fall back to defaults (7-day cache TTL,
// 12 workers).
func NewResolver(client *http.Client, store cache.Store, cfg types.ResolverConfig) *Resolver {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = defaultMaxWorkers
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Resolver{client: client, store: store, cfg: cfg}
}

// MaxWorkers returns the configured worker-pool bound.
func (r *Resolver) MaxWorkers() int { return r.cfg.MaxWorkers }

// Resolve produces the metadata record for one normalized DOI. Crossref
// is tried first; a record counts as resolved when it has a title or a
// journal, and only this path carries a citation count. Any Crossref
// failure falls back to content negotiation. When both tiers fail the
// returned error record names both failure points.
//
// Results, error records included, are cached for the configured TTL so
// a repeated batch does not re-query the sources.
func (r *Resolver) Resolve(ctx context.Context, doi string) types.MetadataRecord {
	if rec, ok := r.cachedRecord(ctx, doi); ok {
		return rec
	}

	rec := r.resolveUncached(ctx, doi)
	r.storeRecord(ctx, rec)
	return rec
}

func (r *Resolver) resolveUncached(ctx context.Context, doi string) types.MetadataRecord {
	// Tier 1: the Crossref registry.
	if w, err := fetchCrossref(ctx, r.client, doi, r.cfg.UserAgent); err == nil {
		if rec := recordFromCrossref(doi, w); rec.Resolved() {
			return rec
		}
	}

	// Tier 2: universal content negotiation.
	w, err := fetchCSL(ctx, r.client, doi, r.cfg.UserAgent)
	if err != nil {
		return types.ErrorRecord(doi,
			fmt.Sprintf("not found via Crossref; DOI content negotiation also failed: %v", err))
	}
	if rec := recordFromCSL(doi, w); rec.Resolved() {
		return rec
	}
	return types.ErrorRecord(doi,
		"metadata not available from Crossref or DOI content negotiation")
}

// cachedRecord reads a previous resolution for doi. Undecodable entries
// are treated as misses.
func (r *Resolver) cachedRecord(ctx context.Context, doi string) (types.MetadataRecord, bool) {
	if r.store == nil {
		return types.MetadataRecord{}, false
	}
	data, ok, err := r.store.Get(ctx, doi)
	if err != nil || !ok {
		return types.MetadataRecord{}, false
	}
	var rec types.MetadataRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return types.MetadataRecord{}, false
	}
	return rec, true
}

func (r *Resolver) storeRecord(ctx context.Context, rec types.MetadataRecord) {
	if r.store == nil {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	// A failed cache write only costs a refetch next time.
	_ = r.store.Set(ctx, rec.DOI, data, r.cfg.CacheTTL)
}
