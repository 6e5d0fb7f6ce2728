package source

import (
	"context"
	"fmt"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/internal/datastore"
	"github.com/huangsam/babynames/schema"
)

// selectRecordsQuery reads every row of the imported dataset.
const selectRecordsQuery = "SELECT state, sex, birth_year, name, births FROM baby_names"

// SQLSource reads records from a baby_names table created by dataset import.
type SQLSource struct {
	Backend schema.SourceBackend
	ConnStr string
}

var _ contract.RecordSource = &SQLSource{} // Compile-time check

// Describe implements the RecordSource interface.
func (s *SQLSource) Describe() (schema.SourceBackend, string) {
	if s.Backend == schema.SQLiteBackend {
		return s.Backend, s.ConnStr
	}
	// Connection strings may carry credentials
	return s.Backend, "database"
}

// Load implements the RecordSource interface.
func (s *SQLSource) Load(ctx context.Context) ([]schema.Record, schema.LoadStats, error) {
	backend, location := s.Describe()
	stats := schema.LoadStats{Backend: backend, Location: location}

	db, err := datastore.OpenDB(s.Backend, s.ConnStr)
	if err != nil {
		return nil, stats, err
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, selectRecordsQuery)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to query records (run dataset import first): %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.Record
	for rows.Next() {
		var rec schema.Record
		var sex string
		if err := rows.Scan(&rec.State, &sex, &rec.Year, &rec.Name, &rec.Count); err != nil {
			return nil, stats, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Sex = schema.Sex(sex)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read records: %w", err)
	}

	stats.LinesRead = len(records)
	stats.Records = len(records)
	return records, stats, nil
}
