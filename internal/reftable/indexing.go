// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reftable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/doi-navigator/internal/enrich"
	"github.com/pdiddy/doi-navigator/pkg/types"
)

// titlePreference lists likely title-column headers in priority order.
// Headers are compared case-insensitively after trimming.
var titlePreference = []string{
	"source title",
	"title",
	"journal",
	"publication title",
	"full title",
	"journal title",
	"journal name",
	"scopus title",
	"scopus source title",
}

// ParseIndexing reads the first sheet of an indexed-titles workbook.
// The title column is found by header search against titlePreference;
// when no header matches, the first text-typed column is used, and
// failing that the first column. Unlike the impact workbook there is no
// positional contract, so this loader never fails on shape.
func ParseIndexing(data []byte) (*types.IndexingTable, error) {
	rows, err := firstSheetRows(data)
	if err != nil {
		return nil, fmt.Errorf("opening indexing workbook: %w", err)
	}
	if len(rows) == 0 {
		return &types.IndexingTable{}, nil
	}

	col := pickTitleColumn(rows)

	table := &types.IndexingTable{}
	for _, row := range rows[1:] {
		title := strings.TrimSpace(cell(row, col))
		if title == "" {
			continue
		}
		table.Rows = append(table.Rows, types.IndexingRow{
			Title: title,
			Norm:  enrich.NormalizeJournal(title),
		})
	}
	return table, nil
}

// pickTitleColumn resolves the title column index for a sheet whose
// first row is the header.
func pickTitleColumn(rows [][]string) int {
	header := rows[0]
	byName := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := byName[key]; !seen {
			byName[key] = i
		}
	}
	for _, want := range titlePreference {
		if i, ok := byName[want]; ok {
			return i
		}
	}

	// No recognizable header: fall back to the first column whose data
	// cells are not all numeric.
	for i := range header {
		if columnIsText(rows[1:], i) {
			return i
		}
	}
	return 0
}

// columnIsText reports whether column i holds at least one non-empty
// cell that does not parse as a number.
func columnIsText(dataRows [][]string, i int) bool {
	for _, row := range dataRows {
		v := strings.TrimSpace(cell(row, i))
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return true
		}
	}
	return false
}
