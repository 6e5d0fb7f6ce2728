// Package source loads baby name records from csv directories, parquet files
// and SQL tables.
package source

import (
	"fmt"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
)

// New returns the record source configured by cfg.
func New(cfg *contract.Config) (contract.RecordSource, error) {
	switch cfg.SourceBackend {
	case schema.CSVSource, "":
		return &CSVSource{Path: cfg.DataPath, Strict: cfg.StrictParse}, nil
	case schema.ParquetSource:
		return &ParquetSource{Path: cfg.DataPath}, nil
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
		return &SQLSource{Backend: cfg.SourceBackend, ConnStr: cfg.DataPath}, nil
	default:
		return nil, fmt.Errorf("unsupported source backend: %s", cfg.SourceBackend)
	}
}
