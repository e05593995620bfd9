// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reftable

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/doi-navigator/internal/enrich"
	"github.com/pdiddy/doi-navigator/pkg/types"
)

// Positional columns of the impact workbook. The source carries no
// stable header names, so the contract is by position: column B holds
// the journal name, M the impact score, Q the quartile.
const (
	impactJournalCol  = 1
	impactScoreCol    = 12
	impactQuartileCol = 16
	impactMinColumns  = 17
)

// ParseImpact reads the first sheet of an impact workbook and projects
// it onto the canonical three-column table. A sheet with fewer than 17
// columns fails with a *SchemaError: the positional mapping would be
// meaningless, and guessing is worse than refusing.
func ParseImpact(data []byte) (*types.ImpactTable, error) {
	rows, err := firstSheetRows(data)
	if err != nil {
		return nil, fmt.Errorf("opening impact workbook: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) < impactMinColumns {
		cols := 0
		if len(rows) > 0 {
			cols = len(rows[0])
		}
		return nil, &SchemaError{Source: "impact", Columns: cols}
	}

	table := &types.ImpactTable{}
	for _, row := range rows[1:] {
		journal := strings.TrimSpace(cell(row, impactJournalCol))
		if journal == "" {
			continue
		}
		table.Rows = append(table.Rows, types.ImpactRow{
			Journal:  journal,
			Impact:   parseScore(cell(row, impactScoreCol)),
			Quartile: strings.TrimSpace(cell(row, impactQuartileCol)),
			Norm:     enrich.NormalizeJournal(journal),
		})
	}
	return table, nil
}

// parseScore converts an impact cell to a float, nil when the cell is
// empty or non-numeric (the source uses markers like "<0.1").
func parseScore(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// cell returns row[i] or "" when the row is shorter; trailing empty
// cells are dropped by the workbook reader.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// firstSheetRows opens workbook bytes and returns the rows of the first
// sheet.
func firstSheetRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}
