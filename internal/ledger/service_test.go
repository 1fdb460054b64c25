package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveup-dev/saveup/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(filepath.Join(t.TempDir(), "ledger", "transactions.csv"), checker())
}

func TestAll_MissingLedger(t *testing.T) {
	svc := newTestService(t)
	txns, err := svc.All()
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestInit(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Init())

	data, err := os.ReadFile(svc.Path())
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))

	// Init leaves an existing ledger alone.
	require.NoError(t, svc.Append([]model.Transaction{sampleTxn("a", "x", "1", model.CategoryOther)}))
	require.NoError(t, svc.Init())
	txns, err := svc.All()
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	svc := newTestService(t)

	err := svc.Append([]model.Transaction{
		sampleTxn("a", "Coffee", "-3.20", model.CategoryFood),
		sampleTxn("b", "Salary", "1000", model.CategoryIncome),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(svc.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
}

func TestAppend_AddsToExisting(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append([]model.Transaction{sampleTxn("a", "x", "1", model.CategoryOther)}))
	require.NoError(t, svc.Append([]model.Transaction{sampleTxn("b", "y", "-2", model.CategoryOther)}))

	txns, err := svc.All()
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "a", txns[0].ID)
	assert.Equal(t, "b", txns[1].ID)
}

func TestAppend_ValidationAgainstExisting(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append([]model.Transaction{sampleTxn("a", "x", "1", model.CategoryOther)}))

	err := svc.Append([]model.Transaction{sampleTxn("a", "again", "1", model.CategoryOther)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate transaction ID")

	txns, err := svc.All()
	require.NoError(t, err)
	assert.Len(t, txns, 1, "failed append must not write")
}

func TestAppend_Empty(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append(nil))
	_, err := os.Stat(svc.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestFingerprint(t *testing.T) {
	a := sampleTxn("a", " Coffee Shop ", "-5.50", model.CategoryOther)
	b := sampleTxn("b", "COFFEE SHOP", "-5.5", model.CategoryFood)
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, "2024-01-15|-5.5|coffee shop", Fingerprint(a))

	c := sampleTxn("c", "Coffee Shop", "5.5", model.CategoryOther)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
}

func TestDeduplicate(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append([]model.Transaction{
		sampleTxn("a", "Coffee", "-3", model.CategoryFood),
		sampleTxn("b", "Salary", "100", model.CategoryIncome),
	}))

	fresh, dropped, err := svc.Deduplicate([]model.Transaction{
		sampleTxn("c", "Coffee", "-3", model.CategoryFood),
		sampleTxn("d", "Coffee", "-3", model.CategoryFood),
		sampleTxn("e", "Books", "-20", model.CategoryShopping),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	require.Len(t, fresh, 2)
	assert.Equal(t, "d", fresh[0].ID, "second identical coffee is a new purchase")
	assert.Equal(t, "e", fresh[1].ID)
}
