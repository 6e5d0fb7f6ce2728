// Package datastore keeps a SQL copy of the baby names dataset.
package datastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names for the dataset.
const (
	namesTable   = "baby_names"
	importsTable = "baby_names_imports"
)

// insertBatchSize bounds the rows per INSERT so postgres and sqlite stay under their parameter limits.
const insertBatchSize = 500

// timeLayouts are tried in order when a driver returns a timestamp as text.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999", "2006-01-02 15:04:05"}

// StoreImpl implements the DatasetStore interface.
type StoreImpl struct {
	db      *sql.DB
	backend schema.SourceBackend
	connStr string
}

var _ contract.DatasetStore = &StoreImpl{} // Compile-time check

// OpenDB opens and pings a database for the backend.
func OpenDB(backend schema.SourceBackend, connStr string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetDatasetDBFilePath()
		}
		db, err = sql.Open(backend.DriverName(), dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		db, err = sql.Open(backend.DriverName(), connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		db, err = sql.Open(backend.DriverName(), connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}
	return db, nil
}

// NewStore creates a new DatasetStore with the specified backend.
// The none backend yields a no-op store.
func NewStore(backend schema.SourceBackend, connStr string) (contract.DatasetStore, error) {
	if backend == schema.NoneBackend {
		return &StoreImpl{backend: backend}, nil
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetDatasetDBFilePath()
	}
	db, err := OpenDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	return &StoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// quoteIdent quotes a table or column name for the backend.
func quoteIdent(name string, backend schema.SourceBackend) string {
	if backend == schema.MySQLBackend {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}

// placeholder returns the n-th (1-based) bind parameter for the backend.
func placeholder(n int, backend schema.SourceBackend) string {
	if backend == schema.PostgreSQLBackend {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// buildInsertQuery returns a multi-row INSERT for rows records.
func buildInsertQuery(rows int, backend schema.SourceBackend) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (state, sex, birth_year, name, births) VALUES ", quoteIdent(namesTable, backend))
	n := 1
	for i := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for col := range 5 {
			if col > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(placeholder(n, backend))
			n++
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// formatTime converts a timestamp into the value stored by the backend.
func formatTime(t time.Time, backend schema.SourceBackend) any {
	if backend == schema.SQLiteBackend {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return t.UTC()
}

// parseTime converts a scanned timestamp back into a time.Time.
func parseTime(v any) (time.Time, error) {
	var text string
	switch val := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return val, nil
	case []byte:
		text = string(val)
	case string:
		text = val
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", text)
}

// Migrate moves the dataset schema to targetVersion.
func (s *StoreImpl) Migrate(targetVersion int) error {
	if s.backend == schema.NoneBackend {
		return fmt.Errorf("migrations are not supported for NoneBackend")
	}
	return MigrateDataset(os.Stdout, s.backend, s.connStr, targetVersion)
}

// Import replaces the stored records and logs the import in a single transaction.
func (s *StoreImpl) Import(ctx context.Context, records []schema.Record) (int, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", quoteIdent(namesTable, s.backend))); err != nil {
		return 0, fmt.Errorf("failed to clear %s: %w", namesTable, err)
	}

	fullQuery := buildInsertQuery(insertBatchSize, s.backend)
	args := make([]any, 0, insertBatchSize*5)
	for start := 0; start < len(records); start += insertBatchSize {
		batch := records[start:min(start+insertBatchSize, len(records))]
		args = args[:0]
		for _, r := range batch {
			args = append(args, r.State, string(r.Sex), r.Year, r.Name, r.Count)
		}
		query := fullQuery
		if len(batch) < insertBatchSize {
			query = buildInsertQuery(len(batch), s.backend)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("failed to insert records %d-%d: %w", start, start+len(batch)-1, err)
		}
	}

	logQuery := fmt.Sprintf("INSERT INTO %s (imported_at, source, row_count) VALUES (%s, %s, %s)",
		quoteIdent(importsTable, s.backend), placeholder(1, s.backend), placeholder(2, s.backend), placeholder(3, s.backend))
	if _, err := tx.ExecContext(ctx, logQuery, formatTime(time.Now(), s.backend), "babynames", len(records)); err != nil {
		return 0, fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return len(records), nil
}

// Clear removes the stored dataset. The store cannot be used afterwards.
func (s *StoreImpl) Clear() error {
	if s.backend == schema.NoneBackend {
		return nil
	}
	if s.db != nil {
		_ = s.db.Close()
		s.db = nil
	}
	return ClearDataset(s.backend, s.connStr)
}

// GetStatus returns status information about the stored dataset.
func (s *StoreImpl) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}
	if s.backend == schema.NoneBackend || s.db == nil {
		return status, nil
	}

	version, dirty, err := readSchemaVersion(ctx, s.db)
	if err != nil {
		return status, err
	}
	status.SchemaVersion, status.Dirty = version, dirty
	if version == 0 {
		return status, nil
	}

	var minYear, maxYear sql.NullInt64
	statsQuery := fmt.Sprintf("SELECT COUNT(*), COUNT(DISTINCT name), MIN(birth_year), MAX(birth_year) FROM %s", quoteIdent(namesTable, s.backend))
	if err := s.db.QueryRowContext(ctx, statsQuery).Scan(&status.TotalRows, &status.DistinctNames, &minYear, &maxYear); err != nil {
		return status, fmt.Errorf("failed to get dataset stats: %w", err)
	}
	status.Years = schema.YearRange{Start: int(minYear.Int64), End: int(maxYear.Int64)}

	if version < 3 {
		return status, nil
	}
	var lastImported any
	lastQuery := fmt.Sprintf("SELECT MAX(imported_at) FROM %s", quoteIdent(importsTable, s.backend))
	if err := s.db.QueryRowContext(ctx, lastQuery).Scan(&lastImported); err != nil {
		return status, fmt.Errorf("failed to get last import time: %w", err)
	}
	if status.LastImportedTime, err = parseTime(lastImported); err != nil {
		return status, fmt.Errorf("failed to parse last import time: %w", err)
	}
	return status, nil
}

// readSchemaVersion reads the golang-migrate bookkeeping table. A missing table means version 0.
func readSchemaVersion(ctx context.Context, db *sql.DB) (uint, bool, error) {
	var version int64
	var dirty bool
	err := db.QueryRowContext(ctx, "SELECT version, dirty FROM schema_migrations LIMIT 1").Scan(&version, &dirty)
	if err == nil {
		return uint(version), dirty, nil
	}
	if errors.Is(err, sql.ErrNoRows) || isMissingTable(err) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("failed to read schema version: %w", err)
}

// isMissingTable reports whether err means the queried table does not exist.
func isMissingTable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such table") || // sqlite
		strings.Contains(msg, "doesn't exist") || // mysql
		strings.Contains(msg, "does not exist") // postgresql
}

// Close closes the underlying connection.
func (s *StoreImpl) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
