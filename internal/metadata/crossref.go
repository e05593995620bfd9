// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/doi-navigator/internal/httputil"
)

// crossrefAPIBase is the Crossref works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works/"

// crossrefEnvelope is the registry's response wrapper; the work itself
// lives in the nested message object.
type crossrefEnvelope struct {
	Message workJSON `json:"message"`
}

// fetchCrossref queries the Crossref registry for one DOI and returns
// the decoded message object.
func fetchCrossref(ctx context.Context, client *http.Client, doi, userAgent string) (workJSON, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, crossrefAPIBase+doi, nil)
	if err != nil {
		return workJSON{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return workJSON{}, fmt.Errorf("Crossref API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return workJSON{}, fmt.Errorf("Crossref API returned HTTP %d", resp.StatusCode)
	}

	var env crossrefEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return workJSON{}, fmt.Errorf("parsing Crossref response: %w", err)
	}
	return env.Message, nil
}
