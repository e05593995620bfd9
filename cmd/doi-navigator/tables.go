// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pdiddy/doi-navigator/internal/httputil"
	"github.com/pdiddy/doi-navigator/pkg/types"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Load the reference tables and report their sizes",
	Long: `Tables downloads and parses both journal reference workbooks and
prints how many usable rows each one contributed. Use it to verify the
configured sources before running a large batch.`,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 15s)")
	tablesCmd.Flags().String("impact-url", "", "impact/quartile workbook URL (overrides config and secrets)")
	tablesCmd.Flags().String("indexing-url", "", "indexed-titles workbook URL (overrides config and secrets)")

	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	httpCfg := types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: userAgent(),
	}
	client := httputil.NewClient(httpCfg)

	start := time.Now()
	impact, indexing := loadTables(cmd.Context(), cmd, client, httpCfg)

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Table", "Rows"})
	tw.AppendRow(table.Row{"impact/quartile", len(impact.Rows)})
	tw.AppendRow(table.Row{"indexed titles", len(indexing.Rows)})
	tw.AppendFooter(table.Row{"loaded in", time.Since(start).Round(time.Millisecond)})
	tw.Render()

	return nil
}
