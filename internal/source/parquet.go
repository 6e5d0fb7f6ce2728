package source

import (
	"context"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/parquet"
	"github.com/huangsam/babynames/schema"
)

// ParquetSource reads records from a file written by dataset convert.
type ParquetSource struct {
	Path string
}

var _ contract.RecordSource = &ParquetSource{} // Compile-time check

// Describe implements the RecordSource interface.
func (s *ParquetSource) Describe() (schema.SourceBackend, string) {
	return schema.ParquetSource, s.Path
}

// Load implements the RecordSource interface.
func (s *ParquetSource) Load(ctx context.Context) ([]schema.Record, schema.LoadStats, error) {
	stats := schema.LoadStats{Backend: schema.ParquetSource, Location: s.Path}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	records, err := parquet.ReadRecordsParquet(s.Path)
	if err != nil {
		return nil, stats, err
	}
	stats.FilesRead = 1
	stats.LinesRead = len(records)
	stats.Records = len(records)
	return records, stats, nil
}
