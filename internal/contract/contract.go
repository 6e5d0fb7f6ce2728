// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/babynames/schema"
)

// RecordSource defines where baby name records come from.
// This allows the core logic to be tested without touching disk or a database.
type RecordSource interface {
	// Load reads every record of the source. Order is not guaranteed.
	Load(ctx context.Context) ([]schema.Record, schema.LoadStats, error)

	// Describe returns the backend and location for logging.
	Describe() (schema.SourceBackend, string)
}

// DatasetStore defines the operations on a SQL copy of the dataset.
type DatasetStore interface {
	// Migrate moves the schema to targetVersion, where -1 means latest.
	Migrate(targetVersion int) error

	// Import replaces the stored records in a single transaction and returns the row count.
	Import(ctx context.Context, records []schema.Record) (int, error)

	// Clear removes the stored dataset.
	Clear() error

	// GetStatus returns information about the stored dataset.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}
