package schema

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("boom"), ""},
		{"direct", ErrMalformedXML, "malformed xml"},
		{"wrapped once", fmt.Errorf("%w: a.xml.bz2", ErrMissingSizeAttribute), "missing size attribute"},
		{"wrapped twice", fmt.Errorf("file: %w", fmt.Errorf("%w: bad", ErrCorruptStream)), "corrupt compressed stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FailureKind(tt.err))
		})
	}
}

func TestValidSets(t *testing.T) {
	for _, mode := range []OutputMode{TextOut, HTMLOut, JSONOut, CSVOut, TableOut, ParquetOut} {
		assert.Contains(t, ValidOutputModes, mode)
	}
	assert.NotContains(t, ValidOutputModes, OutputMode("xml"))

	for _, backend := range []DatabaseBackend{SQLiteBackend, MySQLBackend, PostgreSQLBackend, NoneBackend} {
		assert.Contains(t, ValidHistoryBackends, backend)
	}
	assert.NotContains(t, ValidHistoryBackends, DatabaseBackend("redis"))
}
