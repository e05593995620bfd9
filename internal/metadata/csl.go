// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/doi-navigator/internal/httputil"
)

// doiBase is the doi.org resolver endpoint. Declared as a var so tests
// can substitute an httptest server.
var doiBase = "https://doi.org/"

// cslAccept requests a CSL-JSON representation via content negotiation.
// doi.org answers for Crossref, DataCite, and mEDRA DOIs alike, which
// makes this the universal fallback for identifiers the registry does
// not know.
const cslAccept = "application/vnd.citationstyles.csl+json"

// fetchCSL resolves one DOI through doi.org content negotiation and
// returns the decoded CSL-JSON document. The client follows the
// resolver's redirects.
func fetchCSL(ctx context.Context, client *http.Client, doi, userAgent string) (workJSON, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, doiBase+doi, nil)
	if err != nil {
		return workJSON{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", cslAccept)

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return workJSON{}, fmt.Errorf("content negotiation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return workJSON{}, fmt.Errorf("content negotiation returned HTTP %d", resp.StatusCode)
	}

	var w workJSON
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return workJSON{}, fmt.Errorf("parsing CSL-JSON response: %w", err)
	}
	return w, nil
}
