//go:build basic

// Package integration contains end-to-end tests for the babynames CLI.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Database tests need Docker: go test -tags database ./integration
package integration

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countBirths sums births per name straight from the sample files.
func countBirths(t *testing.T) map[string]int {
	t.Helper()
	totals := make(map[string]int)
	for _, file := range []string{"CA.TXT", "NY.csv"} {
		data, err := os.ReadFile(filepath.Join("..", testDataDir, file))
		require.NoError(t, err)
		for line := range strings.Lines(string(data)) {
			fields := strings.Split(strings.TrimSpace(line), ",")
			if len(fields) != 5 {
				continue
			}
			count, err := strconv.Atoi(strings.TrimSpace(fields[4]))
			require.NoError(t, err)
			totals[strings.TrimSpace(fields[3])] += count
		}
	}
	return totals
}

// TestPopularVerification checks the CSV ranking against births summed from the files.
func TestPopularVerification(t *testing.T) {
	out, err := runBabynames(t, nil, "popular", "--data", testDataDir, "--metric", "total", "--limit", "10", "--output", "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	header := rows[0]
	nameCol, totalCol := -1, -1
	for i, col := range header {
		switch col {
		case "name":
			nameCol = i
		case "total":
			totalCol = i
		}
	}
	require.NotEqual(t, -1, nameCol)
	require.NotEqual(t, -1, totalCol)

	expected := countBirths(t)
	require.Len(t, rows[1:], len(expected))
	for _, row := range rows[1:] {
		total, err := strconv.Atoi(row[totalCol])
		require.NoError(t, err)
		assert.Equal(t, expected[row[nameCol]], total, row[nameCol])
	}
	assert.Equal(t, "Mary", rows[1][nameCol])
}

// TestSQLiteRoundTrip imports the sample files into SQLite and compares rankings.
func TestSQLiteRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "names.db")
	env := []string{"BABYNAMES_TARGET_BACKEND=sqlite", "BABYNAMES_TARGET_CONNECT=" + dbPath}

	out, err := runBabynames(t, env, "dataset", "import", "--data", testDataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 6 records into sqlite")

	fromFiles, err := runBabynames(t, nil, "report", "--data", testDataDir, "--target-years", "2013", "--min-count", "5", "--base", "2013", "--compare", "2014", "--output", "json")
	require.NoError(t, err)
	fromStore, err := runBabynames(t, nil, "report", "--source", "sqlite", "--data", dbPath, "--target-years", "2013", "--min-count", "5", "--base", "2013", "--compare", "2014", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, fromFiles, fromStore)
}

// TestParquetRoundTrip converts the sample files to Parquet and compares series output.
func TestParquetRoundTrip(t *testing.T) {
	parquetPath := filepath.Join(t.TempDir(), "names.parquet")
	_, err := runBabynames(t, nil, "dataset", "convert", "--data", testDataDir, "--output-file", parquetPath)
	require.NoError(t, err)

	fromFiles, err := runBabynames(t, nil, "series", "Alex", "--data", testDataDir, "--output", "json")
	require.NoError(t, err)
	fromParquet, err := runBabynames(t, nil, "series", "Alex", "--source", "parquet", "--data", parquetPath, "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, fromFiles, fromParquet)
	assert.Contains(t, fromParquet, `"total_count": 18`)
}
