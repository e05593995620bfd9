// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doi-navigator/internal/cache"
	"github.com/pdiddy/doi-navigator/internal/doi"
	"github.com/pdiddy/doi-navigator/internal/enrich"
	"github.com/pdiddy/doi-navigator/internal/export"
	"github.com/pdiddy/doi-navigator/internal/httputil"
	"github.com/pdiddy/doi-navigator/internal/metadata"
	"github.com/pdiddy/doi-navigator/internal/reftable"
	"github.com/pdiddy/doi-navigator/internal/secrets"
	"github.com/pdiddy/doi-navigator/pkg/types"
)

const defaultTimeout = 15 * time.Second

var resolveCmd = &cobra.Command{
	Use:   "resolve [DOIs...]",
	Short: "Resolve DOIs to metadata and enrich against the reference tables",
	Long: `Resolve normalizes and deduplicates the given DOIs (pass "-" to read
newline-separated identifiers from stdin), resolves each to publication
metadata, and matches the journal names against the impact and indexing
reference tables. Identifiers that cannot be resolved keep their row with
the failure cause in the title column.

Reference table loading failures degrade to empty tables with a warning:
you still get metadata, just without enrichment.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Int("workers", 0, "resolution worker pool size (default 12)")
	resolveCmd.Flags().Int("min-score", 0, "fuzzy match acceptance threshold, inclusive (default 80)")
	resolveCmd.Flags().Bool("wos-if-missing", true, "mark records without an impact match as not WoS-indexed (off leaves them blank)")
	resolveCmd.Flags().Bool("scopus-exact-first", true, "try exact normalized title equality before fuzzy Scopus matching")
	resolveCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 15s)")
	resolveCmd.Flags().String("format", "table", "output format: table, json, yaml, or xlsx")
	resolveCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
	resolveCmd.Flags().Bool("no-enrich", false, "skip reference table loading and matching")
	resolveCmd.Flags().String("cache-dir", "", "resolution cache directory (default: user cache dir; \"off\" disables)")
	resolveCmd.Flags().String("impact-url", "", "impact/quartile workbook URL (overrides config and secrets)")
	resolveCmd.Flags().String("indexing-url", "", "indexed-titles workbook URL (overrides config and secrets)")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ids, err := collectIdentifiers(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("provide one or more DOIs, or \"-\" to read them from stdin")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	httpCfg := types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: userAgent(),
	}
	client := httputil.NewClient(httpCfg)

	workers, _ := cmd.Flags().GetInt("workers")
	resolver := metadata.NewResolver(client, openStore(cmd), types.ResolverConfig{
		HTTPConfig: httpCfg,
		MaxWorkers: workers,
	})

	ctx := cmd.Context()
	records := metadata.ResolveBatch(ctx, resolver, ids, workers, func(done, total int) {
		fmt.Fprintf(os.Stderr, "\rresolving %d/%d", done, total)
	})
	fmt.Fprintln(os.Stderr)

	enriched := enrichRecords(ctx, cmd, client, httpCfg, records)

	format, _ := cmd.Flags().GetString("format")
	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	switch format {
	case "table", "":
		renderTable(out, enriched)
		return nil
	case "json":
		return export.WriteJSON(out, enriched)
	case "yaml":
		return export.WriteYAML(out, enriched)
	case "xlsx":
		return export.WriteXLSX(out, enriched)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, yaml, or xlsx", format)
	}
}

// collectIdentifiers merges argument DOIs with stdin (when an argument
// is "-"), then normalizes and deduplicates while preserving order.
func collectIdentifiers(stdin io.Reader, args []string) ([]string, error) {
	var ids []string
	for _, arg := range args {
		if arg != "-" {
			ids = append(ids, doi.Normalize(arg))
			continue
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading identifiers from stdin: %w", err)
		}
		ids = append(ids, doi.SplitInput(string(data))...)
	}
	return doi.Dedupe(ids), nil
}

// userAgent builds the polite User-Agent, appending the contact email
// when one is configured.
func userAgent() string {
	ua := "doi-navigator/" + version
	email := secretDefault(secrets.ContactEmailKey, viper.GetString("contact_email"))
	if email != "" {
		ua += " (mailto:" + email + ")"
	}
	return ua
}

// openStore opens the SQLite resolution cache. Cache trouble is never
// fatal: a warning is printed and resolution proceeds uncached.
func openStore(cmd *cobra.Command) cache.Store {
	dir, _ := cmd.Flags().GetString("cache-dir")
	if dir == "off" {
		return nil
	}
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: no user cache dir, caching disabled: %v\n", err)
			return nil
		}
		dir = filepath.Join(base, "doi-navigator")
	}
	store, err := cache.NewSQLiteStore(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache unavailable, continuing without: %v\n", err)
		return nil
	}
	return store
}

// enrichRecords loads the reference tables and matches the records
// against them. A table that cannot be loaded degrades to an empty one
// with a warning, so metadata still comes out.
func enrichRecords(ctx context.Context, cmd *cobra.Command, client *http.Client, httpCfg types.HTTPConfig, records []types.MetadataRecord) []types.EnrichedRecord {
	noEnrich, _ := cmd.Flags().GetBool("no-enrich")

	cfg := types.DefaultMatchConfig()
	if minScore, _ := cmd.Flags().GetInt("min-score"); minScore > 0 {
		cfg.MinScore = minScore
	}
	cfg.WOSIfMissing, _ = cmd.Flags().GetBool("wos-if-missing")
	cfg.ScopusExactFirst, _ = cmd.Flags().GetBool("scopus-exact-first")

	impact := &types.ImpactTable{}
	indexing := &types.IndexingTable{}
	if !noEnrich {
		impact, indexing = loadTables(ctx, cmd, client, httpCfg)
	}
	return enrich.Enrich(records, impact, indexing, cfg)
}

func loadTables(ctx context.Context, cmd *cobra.Command, client *http.Client, httpCfg types.HTTPConfig) (*types.ImpactTable, *types.IndexingTable) {
	flagImpact, _ := cmd.Flags().GetString("impact-url")
	flagIndexing, _ := cmd.Flags().GetString("indexing-url")

	tablesCfg := types.TablesConfig{
		HTTPConfig:  httpCfg,
		ImpactURL:   secretDefault(secrets.ImpactURLKey, firstNonEmpty(flagImpact, viper.GetString("impact_url"))),
		IndexingURL: secretDefault(secrets.IndexingURLKey, firstNonEmpty(flagIndexing, viper.GetString("indexing_url"))),
	}
	loader := reftable.NewLoader(client, tablesCfg)

	impact := &types.ImpactTable{}
	if tablesCfg.ImpactURL == "" {
		fmt.Fprintln(os.Stderr, "warning: no impact table source configured; impact enrichment skipped")
	} else if t, err := loader.LoadImpact(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: impact table unavailable, enriching without it: %v\n", err)
	} else {
		impact = t
	}

	indexing := &types.IndexingTable{}
	if tablesCfg.IndexingURL == "" {
		fmt.Fprintln(os.Stderr, "warning: no indexing table source configured; Scopus enrichment skipped")
	} else if t, err := loader.LoadIndexing(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: indexing table unavailable, enriching without it: %v\n", err)
	} else {
		indexing = t
	}

	return impact, indexing
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// openOutput resolves the output writer from --output, defaulting to stdout.
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
