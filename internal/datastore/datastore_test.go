package datastore

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/babynames/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords(n int) []schema.Record {
	records := make([]schema.Record, 0, n)
	names := []string{"Alex", "Emma", "Liam"}
	for i := range n {
		sex := schema.Female
		if i%2 == 1 {
			sex = schema.Male
		}
		records = append(records, schema.Record{
			State: "CA",
			Sex:   sex,
			Year:  1990 + i%10,
			Name:  names[i%len(names)],
			Count: 5 + i,
		})
	}
	return records
}

// newMigratedStore opens a sqlite store in a temp dir at the latest schema.
func newMigratedStore(t *testing.T) (*StoreImpl, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "dataset.db")
	require.NoError(t, MigrateDataset(&bytes.Buffer{}, schema.SQLiteBackend, dbPath, -1))
	store, err := NewStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*StoreImpl), dbPath
}

func TestStoreImportAndStatus(t *testing.T) {
	store, _ := newMigratedStore(t)
	ctx := context.Background()

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, uint(3), status.SchemaVersion)
	assert.Zero(t, status.TotalRows)
	assert.True(t, status.LastImportedTime.IsZero())

	// More than one insert batch
	records := sampleRecords(insertBatchSize + 7)
	n, err := store.Import(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, len(records), n)

	status, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(records), status.TotalRows)
	assert.Equal(t, 3, status.DistinctNames)
	assert.Equal(t, schema.YearRange{Start: 1990, End: 1999}, status.Years)
	assert.WithinDuration(t, time.Now(), status.LastImportedTime, time.Minute)

	// A second import replaces the first
	n, err = store.Import(ctx, sampleRecords(4))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	status, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, status.TotalRows)
}

func TestStoreStatusBeforeMigrate(t *testing.T) {
	store, err := NewStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Zero(t, status.SchemaVersion)
	assert.Zero(t, status.TotalRows)
}

func TestStoreStatusAfterRollback(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rolled.db")
	require.NoError(t, MigrateDataset(&bytes.Buffer{}, schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateDataset(&bytes.Buffer{}, schema.SQLiteBackend, dbPath, 0))

	store, err := NewStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// schema_migrations exists but holds no rows
	version, dirty, err := readSchemaVersion(context.Background(), store.db)
	require.NoError(t, err)
	assert.Zero(t, version)
	assert.False(t, dirty)

	status, err := store.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Zero(t, status.SchemaVersion)
}

func TestStoreImportWithoutSchema(t *testing.T) {
	store, err := NewStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.Import(context.Background(), sampleRecords(2))
	assert.Error(t, err)
}

func TestStoreClear(t *testing.T) {
	store, dbPath := newMigratedStore(t)
	_, err := store.Import(context.Background(), sampleRecords(3))
	require.NoError(t, err)

	require.NoError(t, store.Clear())
	assert.NoFileExists(t, dbPath)

	status, err := store.GetStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestNoneBackendStore(t *testing.T) {
	store, err := NewStore(schema.NoneBackend, "")
	require.NoError(t, err)

	n, err := store.Import(context.Background(), sampleRecords(3))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, store.Clear())
	assert.Error(t, store.Migrate(-1))
	assert.NoError(t, store.Close())
}

func TestOpenDBUnsupported(t *testing.T) {
	_, err := OpenDB(schema.CSVSource, "names")
	assert.ErrorContains(t, err, "unsupported backend")
}

func TestBuildInsertQuery(t *testing.T) {
	assert.Equal(t,
		`INSERT INTO "baby_names" (state, sex, birth_year, name, births) VALUES (?, ?, ?, ?, ?), (?, ?, ?, ?, ?)`,
		buildInsertQuery(2, schema.SQLiteBackend))
	assert.Equal(t,
		`INSERT INTO "baby_names" (state, sex, birth_year, name, births) VALUES ($1, $2, $3, $4, $5), ($6, $7, $8, $9, $10)`,
		buildInsertQuery(2, schema.PostgreSQLBackend))
	assert.Equal(t,
		"INSERT INTO `baby_names` (state, sex, birth_year, name, births) VALUES (?, ?, ?, ?, ?)",
		buildInsertQuery(1, schema.MySQLBackend))
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	got, err := parseTime(want.Format(time.RFC3339Nano))
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = parseTime([]byte("2024-03-01 12:30:00.000000"))
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = parseTime(nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = parseTime(42)
	assert.Error(t, err)
}

func TestPrintStoreStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintStoreStatus(&buf, schema.StoreStatus{Backend: "sqlite"})
	assert.Contains(t, buf.String(), "Connected: false")
	assert.NotContains(t, buf.String(), "Total Rows")

	buf.Reset()
	PrintStoreStatus(&buf, schema.StoreStatus{
		Backend:       "sqlite",
		Connected:     true,
		SchemaVersion: 3,
		TotalRows:     10,
		DistinctNames: 2,
		Years:         schema.YearRange{Start: 1990, End: 1999},
	})
	out := buf.String()
	assert.Contains(t, out, "Schema Version: 3")
	assert.Contains(t, out, "Years: 1990-1999")
	assert.NotContains(t, out, "Last Import")
}

func TestClearDatasetUnsupported(t *testing.T) {
	assert.NoError(t, ClearDataset(schema.NoneBackend, ""))
	assert.Error(t, ClearDataset(schema.CSVSource, ""))
	assert.NoError(t, ClearDataset(schema.SQLiteBackend, filepath.Join(t.TempDir(), "missing.db")))
}
