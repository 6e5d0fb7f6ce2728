package datastore

import (
	"context"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
	"github.com/stretchr/testify/mock"
)

// MockDatasetStore is a mock implementation of DatasetStore for testing.
type MockDatasetStore struct {
	mock.Mock
}

var _ contract.DatasetStore = &MockDatasetStore{} // Compile-time check

// Migrate implements the DatasetStore interface.
func (m *MockDatasetStore) Migrate(targetVersion int) error {
	args := m.Called(targetVersion)
	return args.Error(0)
}

// Import implements the DatasetStore interface.
func (m *MockDatasetStore) Import(ctx context.Context, records []schema.Record) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

// Clear implements the DatasetStore interface.
func (m *MockDatasetStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the DatasetStore interface.
func (m *MockDatasetStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the DatasetStore interface.
func (m *MockDatasetStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
