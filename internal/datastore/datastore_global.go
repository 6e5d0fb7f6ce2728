package datastore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
)

// StoreManager holds the dataset store shared by the commands.
type StoreManager struct {
	sync.Mutex
	store contract.DatasetStore
}

// GetStore returns the active dataset store, or nil when none was initialized.
func (m *StoreManager) GetStore() contract.DatasetStore {
	m.Lock()
	defer m.Unlock()
	return m.store
}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStore initializes the global dataset store.
// An empty or none backend leaves the manager without a store.
func InitStore(backend schema.SourceBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		if backend == "" || backend == schema.NoneBackend {
			return
		}
		store, err := NewStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize dataset store: %w", err)
			return
		}
		Manager.Lock()
		Manager.store = store
		Manager.Unlock()
	})

	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// ClearDataset clears the dataset for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the dataset tables.
// For NoneBackend, it does nothing.
func ClearDataset(backend schema.SourceBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		dbFilePath := connStr
		if dbFilePath == "" {
			dbFilePath = contract.GetDatasetDBFilePath()
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		db, err := sql.Open(backend.DriverName(), connStr)
		if err != nil {
			return fmt.Errorf("failed to connect to %s database: %w", backend, err)
		}
		defer func() { _ = db.Close() }()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to ping %s database: %w", backend, err)
		}
		// schema_migrations goes too so the next migrate starts from scratch
		for _, table := range []string{namesTable, importsTable, "schema_migrations"} {
			if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(table, backend))); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported dataset backend for clearing: %s", backend)
	}
}
