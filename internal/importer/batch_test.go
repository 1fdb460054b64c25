package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	good := copyFixture(t, dir, "debit_credit_balance.csv")
	indian := copyFixture(t, dir, "indian_bank.csv")
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("Date,Description,Amount\n"), 0o644))

	im := New(Config{})
	results, err := im.ParseFiles(context.Background(), []string{good, empty, indian}, "auto")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, good, results[0].Path)
	assert.NoError(t, results[0].Err)
	assert.Len(t, results[0].Transactions, 2)

	assert.True(t, IsEmpty(results[1].Err))

	assert.NoError(t, results[2].Err)
	assert.Len(t, results[2].Transactions, 4)
}

func TestParseFiles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{}).ParseFiles(ctx, []string{"a.csv", "b.csv"}, "auto")
	assert.ErrorIs(t, err, context.Canceled)
}
