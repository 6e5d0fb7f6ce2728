package source

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/datastore"
	"github.com/huangsam/babynames/internal/parquet"
	"github.com/huangsam/babynames/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		backend  schema.SourceBackend
		expected contract.RecordSource
	}{
		{schema.CSVSource, &CSVSource{Path: "names", Strict: true}},
		{schema.ParquetSource, &ParquetSource{Path: "names"}},
		{schema.SQLiteBackend, &SQLSource{Backend: schema.SQLiteBackend, ConnStr: "names"}},
		{schema.PostgreSQLBackend, &SQLSource{Backend: schema.PostgreSQLBackend, ConnStr: "names"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			src, err := New(&contract.Config{SourceBackend: tt.backend, DataPath: "names", StrictParse: true})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, src)
		})
	}

	_, err := New(&contract.Config{SourceBackend: "excel"})
	assert.Error(t, err)
}

func TestCSVSourceDirectory(t *testing.T) {
	src := &CSVSource{Path: filepath.Join("testdata", "names")}
	records, stats, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 6)
	assert.Equal(t, 2, stats.FilesRead)
	assert.Equal(t, 1, stats.FilesSkipped, "the readme pdf is not a data file")
	assert.Equal(t, 6, stats.LinesRead)
	assert.Equal(t, 6, stats.Records)
	assert.Zero(t, stats.LinesSkipped)

	// Whitespace and carriage returns are trimmed
	assert.Contains(t, records, schema.Record{State: "NY", Sex: schema.Male, Year: 2014, Name: "Liam", Count: 50})
	assert.Contains(t, records, schema.Record{State: "NY", Sex: schema.Male, Year: 2013, Name: "Alex", Count: 8})
	assert.Contains(t, records, schema.Record{State: "CA", Sex: schema.Female, Year: 1910, Name: "Mary", Count: 295})
}

func TestCSVSourceLenient(t *testing.T) {
	src := &CSVSource{Path: filepath.Join("testdata", "malformed.txt")}
	records, stats, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []schema.Record{{State: "TX", Sex: schema.Male, Year: 1945, Name: "James", Count: 120}}, records)
	assert.Equal(t, 1, stats.FilesRead)
	assert.Equal(t, 4, stats.LinesRead)
	assert.Equal(t, 3, stats.LinesSkipped)
	assert.Equal(t, 1, stats.Records)
}

func TestCSVSourceStrict(t *testing.T) {
	src := &CSVSource{Path: filepath.Join("testdata", "malformed.txt"), Strict: true}
	_, _, err := src.Load(context.Background())
	require.Error(t, err)

	var malformed *schema.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Line)
	assert.Equal(t, "notanumber", malformed.Fields[4])
}

func TestCSVSourceMissingPath(t *testing.T) {
	src := &CSVSource{Path: filepath.Join(t.TempDir(), "missing")}
	_, _, err := src.Load(context.Background())
	assert.Error(t, err)
}

func TestCSVSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &CSVSource{Path: filepath.Join("testdata", "names")}
	_, _, err := src.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseRecord(t *testing.T) {
	rec, err := parseRecord("x", 3, []string{"CA", "X", "2013", "Sam", "0"})
	require.NoError(t, err)
	assert.Equal(t, schema.Record{State: "CA", Sex: "X", Year: 2013, Name: "Sam", Count: 0}, rec)

	_, err = parseRecord("x", 3, []string{"CA", "F", "2013", "Sam", "1", "extra"})
	assert.ErrorContains(t, err, "expected 5 fields")

	_, err = parseRecord("x", 3, []string{"CA", "F", "year", "Sam", "1"})
	assert.ErrorContains(t, err, "x:3")
}

func TestParquetSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.parquet")
	want := []schema.Record{
		{State: "CA", Sex: schema.Female, Year: 2013, Name: "Alex", Count: 10},
		{State: "NY", Sex: schema.Male, Year: 2013, Name: "Alex", Count: 8},
	}
	require.NoError(t, parquet.WriteRecordsParquet(want, path))

	src := &ParquetSource{Path: path}
	records, stats, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, records)
	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, schema.ParquetSource, stats.Backend)
}

func TestSQLSourceSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "names.db")
	require.NoError(t, datastore.MigrateDataset(&bytes.Buffer{}, schema.SQLiteBackend, dbPath, -1))

	store, err := datastore.NewStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	want := []schema.Record{
		{State: "CA", Sex: schema.Female, Year: 2013, Name: "Alex", Count: 10},
		{State: "NY", Sex: schema.Male, Year: 2013, Name: "Alex", Count: 8},
	}
	_, err = store.Import(context.Background(), want)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	src := &SQLSource{Backend: schema.SQLiteBackend, ConnStr: dbPath}
	records, stats, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, want, records)
	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, dbPath, stats.Location)
}

func TestSQLSourceWithoutImport(t *testing.T) {
	src := &SQLSource{Backend: schema.SQLiteBackend, ConnStr: filepath.Join(t.TempDir(), "empty.db")}
	_, _, err := src.Load(context.Background())
	assert.ErrorContains(t, err, "dataset import")
}

func TestSQLSourceDescribeHidesCredentials(t *testing.T) {
	src := &SQLSource{Backend: schema.MySQLBackend, ConnStr: "root:secret@tcp(localhost:3306)/names"}
	_, location := src.Describe()
	assert.NotContains(t, location, "secret")
}
