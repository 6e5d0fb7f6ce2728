package contract

import (
	"context"

	"github.com/huangsam/babynames/schema"
	"github.com/stretchr/testify/mock"
)

// MockRecordSource is a mock implementation of RecordSource for testing.
type MockRecordSource struct {
	mock.Mock
}

var _ RecordSource = &MockRecordSource{} // Compile-time check

// Load implements the RecordSource interface.
func (m *MockRecordSource) Load(ctx context.Context) ([]schema.Record, schema.LoadStats, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]schema.Record)
	stats, _ := args.Get(1).(schema.LoadStats)
	return records, stats, args.Error(2)
}

// Describe implements the RecordSource interface.
func (m *MockRecordSource) Describe() (schema.SourceBackend, string) {
	args := m.Called()
	return args.Get(0).(schema.SourceBackend), args.String(1)
}

// NewStaticRecordSource returns a mock that always yields records.
func NewStaticRecordSource(records []schema.Record) *MockRecordSource {
	src := &MockRecordSource{}
	src.On("Load", mock.Anything).Return(records, schema.LoadStats{Backend: schema.CSVSource, Location: "memory", Records: len(records)}, nil)
	src.On("Describe").Return(schema.CSVSource, "memory")
	return src
}
