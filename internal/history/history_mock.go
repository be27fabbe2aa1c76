package history

import (
	"github.com/huangsam/wikistat/internal/contract"
	"github.com/huangsam/wikistat/schema"
	"github.com/stretchr/testify/mock"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetRunStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// RecordRun implements the RunStore interface.
func (m *MockRunStore) RecordRun(report schema.Report, meta schema.RunMeta) (string, error) {
	args := m.Called(report, meta)
	return args.String(0), args.Error(1)
}

// ListRuns implements the RunStore interface.
func (m *MockRunStore) ListRuns(limit int) ([]schema.RunRecord, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetRunWords implements the RunStore interface.
func (m *MockRunStore) GetRunWords(runID string) ([]schema.RunWordRecord, error) {
	args := m.Called(runID)
	words, _ := args.Get(0).([]schema.RunWordRecord)
	return words, args.Error(1)
}

// GetRunHistogram implements the RunStore interface.
func (m *MockRunStore) GetRunHistogram(runID string) ([]schema.RunHistogramRecord, error) {
	args := m.Called(runID)
	rows, _ := args.Get(0).([]schema.RunHistogramRecord)
	return rows, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
