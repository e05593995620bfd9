// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reftable downloads and parses the two journal reference
// workbooks: the impact/quartile table and the indexed-titles table.
// Parsed tables are cached per source URL and handed out as immutable
// snapshots, so a refresh never mutates a table an enrichment call is
// reading.
package reftable

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/doi-navigator/internal/httputil"
)

// SchemaError reports a reference workbook that does not meet the
// positional column contract. It is fatal for that source; no partial
// table is produced.
type SchemaError struct {
	Source  string
	Columns int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s workbook has %d columns; cannot map journal/impact/quartile positions reliably", e.Source, e.Columns)
}

// Fetch downloads the raw workbook bytes from url through the shared
// retrying HTTP layer.
func Fetch(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("fetching workbook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("workbook fetch returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading workbook body: %w", err)
	}
	return data, nil
}
