package importlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	e := NewEntry(testTime, "hdfc_april.csv", "auto")
	e.Parsed = 12
	e.Imported = 10
	e.Duplicates = 2
	return e
}

func TestNewEntry(t *testing.T) {
	a := NewEntry(testTime, "a.csv", "auto")
	b := NewEntry(testTime, "a.csv", "auto")
	assert.NotEqual(t, uuid.Nil, a.BatchID)
	assert.NotEqual(t, a.BatchID, b.BatchID)
	assert.Equal(t, time.UTC, a.Timestamp.Location())
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hdfc_april.csv", entries[0].File)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.File = "chase_jan.csv"
	e2.Format = "chase"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "hdfc_april.csv", entries[0].File)
	assert.Equal(t, "chase", entries[1].Format)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.BatchID, got.BatchID)
	assert.Equal(t, original.File, got.File)
	assert.Equal(t, original.Format, got.Format)
	assert.Equal(t, 12, got.Parsed)
	assert.Equal(t, 10, got.Imported)
	assert.Equal(t, 2, got.Duplicates)
}

func TestRead_NoFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestAppend_Header(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "import-log.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), Header+"\n")
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	good := MarshalEntry(testEntry())

	tests := []struct {
		name   string
		mutate func([]string) []string
		errMsg string
	}{
		{"short", func(r []string) []string { return r[:3] }, "expected 7 fields"},
		{"timestamp", func(r []string) []string { r[colTimestamp] = "yesterday"; return r }, "parsing timestamp"},
		{"batch", func(r []string) []string { r[colBatchID] = "not-a-uuid"; return r }, "parsing batch_id"},
		{"count", func(r []string) []string { r[colImported] = "ten"; return r }, "parsing count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.mutate(append([]string(nil), good...))
			_, err := UnmarshalEntry(rec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
