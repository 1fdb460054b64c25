package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatImportID(t *testing.T) {
	ts := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "imported-1706745600000-0", FormatImportID(ts, 0))
	assert.Equal(t, "imported-1706745600000-12", FormatImportID(ts, 12))
}

func TestParseImportID(t *testing.T) {
	ts := time.Date(2024, 2, 1, 10, 30, 0, 123_000_000, time.UTC)

	gotTS, idx, err := ParseImportID(FormatImportID(ts, 7))
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, 7, idx)
}

func TestParseImportID_Errors(t *testing.T) {
	tests := []string{
		"",
		"imported",
		"imported-123",
		"exported-123-1",
		"imported-abc-1",
		"imported-123-x",
		"imported-123--1",
		"imported-123-1-2",
	}
	for _, input := range tests {
		_, _, err := ParseImportID(input)
		assert.Error(t, err, "ParseImportID(%q) should fail", input)
		assert.False(t, IsImportID(input))
	}
}

func TestIsImportID(t *testing.T) {
	assert.True(t, IsImportID("imported-1706745600000-0"))
}

func TestFormatManualID(t *testing.T) {
	ts := time.UnixMilli(1706745600000)
	assert.Equal(t, "manual-1706745600000", FormatManualID(ts))
	assert.False(t, IsImportID(FormatManualID(ts)))
}
