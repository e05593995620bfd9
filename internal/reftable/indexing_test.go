// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reftable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexingHeaderPreference(t *testing.T) {
	// Both "title" and "source title" are present; "source title" ranks
	// higher in the preference order regardless of column position.
	data := workbook(t, [][]interface{}{
		{"ISSN", "Title", "Source Title"},
		{"1234-5678", "wrong column", "Frontiers in Microbiology"},
		{"8765-4321", "also wrong", "Ageing Research Reviews"},
	})

	table, err := ParseIndexing(data)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Frontiers in Microbiology", table.Rows[0].Title)
	assert.Equal(t, "frontiers in microbiology", table.Rows[0].Norm)
	assert.Equal(t, "Ageing Research Reviews", table.Rows[1].Title)
}

func TestParseIndexingHeaderCaseInsensitive(t *testing.T) {
	data := workbook(t, [][]interface{}{
		{"  JOURNAL NAME  ", "Publisher"},
		{"Nature", "Springer"},
	})

	table, err := ParseIndexing(data)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Nature", table.Rows[0].Title)
}

func TestParseIndexingTextColumnFallback(t *testing.T) {
	// No recognizable header; the first column is numeric, so the text
	// column next to it is chosen.
	data := workbook(t, [][]interface{}{
		{"Rank", "Name of Source"},
		{1, "Cell"},
		{2, "The Lancet"},
	})

	table, err := ParseIndexing(data)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Cell", table.Rows[0].Title)
	assert.Equal(t, "The Lancet", table.Rows[1].Title)
}

func TestParseIndexingAllNumericFallsBackToFirstColumn(t *testing.T) {
	data := workbook(t, [][]interface{}{
		{"A", "B"},
		{1, 2},
		{3, 4},
	})

	table, err := ParseIndexing(data)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1", table.Rows[0].Title)
}

func TestParseIndexingSkipsEmptyTitles(t *testing.T) {
	data := workbook(t, [][]interface{}{
		{"Source Title"},
		{"Nature"},
		{""},
		{"   "},
		{"Cell"},
	})

	table, err := ParseIndexing(data)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Nature", table.Rows[0].Title)
	assert.Equal(t, "Cell", table.Rows[1].Title)
}

func TestParseIndexingEmptySheet(t *testing.T) {
	table, err := ParseIndexing(workbook(t, nil))
	require.NoError(t, err)
	assert.True(t, table.Empty())
}

func TestParseIndexingHeaderOnly(t *testing.T) {
	table, err := ParseIndexing(workbook(t, [][]interface{}{{"Source Title"}}))
	require.NoError(t, err)
	assert.True(t, table.Empty())
}
