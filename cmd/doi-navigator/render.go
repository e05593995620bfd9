// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdiddy/doi-navigator/pkg/types"
)

const titleWidthMax = 60

// renderTable prints enriched records as a terminal table. Failed rows
// show the failure cause in the Title column, so every input identifier
// is accounted for.
func renderTable(w io.Writer, records []types.EnrichedRecord) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{
		"#", "DOI", "Title", "Year", "Journal", "IF", "Q", "Cites", "Scopus", "WoS",
	})
	for i, rec := range records {
		scopus := rec.ScopusIndexed
		tw.AppendRow(table.Row{
			i + 1,
			rec.DOI,
			truncate(rec.DisplayTitle(), titleWidthMax),
			intCell(rec.Year),
			rec.Journal,
			floatCell(rec.ImpactFactor),
			rec.Quartile,
			intCell(rec.Citations),
			types.YesNo(&scopus),
			types.YesNo(rec.WOSIndexed),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})
	tw.Render()

	fmt.Fprintf(w, "%d records\n", len(records))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
