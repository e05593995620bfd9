// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders enriched records to the supported output
// encodings: an Excel workbook for spreadsheet users, YAML and JSON for
// scripting.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doi-navigator/pkg/types"
)

// sheetName is the single sheet of the exported workbook.
const sheetName = "DOI Metadata"

var xlsxHeader = []interface{}{
	"S.No.", "DOI", "Title", "Authors", "Journal", "Publisher",
	"Year", "Citations", "Impact Factor", "Quartile",
	"Scopus Indexed", "WOS Indexed",
}

// WriteXLSX writes records as a one-sheet workbook. Rows keep input
// order with a 1-based serial column; failed resolutions appear with
// the error in the Title cell so the row count always matches the
// input. Indexed flags use the Yes/No/blank encoding, blank meaning
// not-applicable rather than no.
func WriteXLSX(w io.Writer, records []types.EnrichedRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("dropping default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		row := xlsxRow(i+1, rec)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func xlsxRow(serial int, rec types.EnrichedRecord) []interface{} {
	scopus := rec.ScopusIndexed
	row := []interface{}{
		serial,
		rec.DOI,
		rec.DisplayTitle(),
		rec.Authors,
		rec.Journal,
		rec.Publisher,
		"", // Year
		"", // Citations
		"", // Impact Factor
		rec.Quartile,
		types.YesNo(&scopus),
		types.YesNo(rec.WOSIndexed),
	}
	if rec.Year != nil {
		row[6] = *rec.Year
	}
	if rec.Citations != nil {
		row[7] = *rec.Citations
	}
	if rec.ImpactFactor != nil {
		row[8] = *rec.ImpactFactor
	}
	return row
}

// WriteYAML writes records as a YAML list.
func WriteYAML(w io.Writer, records []types.EnrichedRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// WriteJSON writes records as an indented JSON list.
func WriteJSON(w io.Writer, records []types.EnrichedRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
