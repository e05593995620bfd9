// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ImpactRow is one journal in the impact/quartile reference table.
type ImpactRow struct {
	// Journal is the canonical journal name as published in the source.
	Journal string `json:"journal" yaml:"journal"`

	// Impact is the impact score, nil when the cell was not numeric.
	Impact *float64 `json:"impact" yaml:"impact"`

	// Quartile is the quartile label, usually "Q1".."Q4".
	Quartile string `json:"quartile" yaml:"quartile"`

	// Norm is the precomputed normalized-name key used for matching.
	Norm string `json:"-" yaml:"-"`
}

// ImpactTable is the loaded impact/quartile reference table. Tables are
// immutable snapshots: a cache refresh builds a new table while readers
// keep the one they were lent.
type ImpactTable struct {
	Rows []ImpactRow
}

// Empty reports whether the table has no rows.
func (t *ImpactTable) Empty() bool { return t == nil || len(t.Rows) == 0 }

// Keys returns the normalized-name key of every row, in row order.
func (t *ImpactTable) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		keys[i] = r.Norm
	}
	return keys
}

// IndexingRow is one title in the indexed-titles reference table.
type IndexingRow struct {
	// Title is the canonical source title.
	Title string `json:"title" yaml:"title"`

	// Norm is the precomputed normalized-name key used for matching.
	Norm string `json:"-" yaml:"-"`
}

// IndexingTable is the loaded indexed-titles reference table, with the
// same immutable-snapshot lifecycle as ImpactTable.
type IndexingTable struct {
	Rows []IndexingRow
}

// Empty reports whether the table has no rows.
func (t *IndexingTable) Empty() bool { return t == nil || len(t.Rows) == 0 }

// Keys returns the normalized-name key of every row, in row order.
func (t *IndexingTable) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		keys[i] = r.Norm
	}
	return keys
}
