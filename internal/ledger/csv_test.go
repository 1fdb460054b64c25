package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveup-dev/saveup/internal/model"
)

func sampleTxn(id, desc, amount string, cat model.Category) model.Transaction {
	amt := decimal.RequireFromString(amount)
	typ := model.TypeIncome
	if amt.IsNegative() {
		typ = model.TypeExpense
	}
	return model.Transaction{
		ID:          id,
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Amount:      amt,
		Category:    cat,
		Type:        typ,
		Account:     "Imported",
	}
}

func TestWriteRead(t *testing.T) {
	txns := []model.Transaction{
		sampleTxn("imported-1-0", "Coffee Shop", "-5.5", model.CategoryOther),
		sampleTxn("imported-1-1", "ACME, Inc. payroll", "2000", model.CategoryIncome),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range txns {
		assert.Equal(t, txns[i].ID, got[i].ID)
		assert.True(t, txns[i].Date.Equal(got[i].Date))
		assert.Equal(t, txns[i].Description, got[i].Description)
		assert.True(t, txns[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, txns[i].Category, got[i].Category)
		assert.Equal(t, txns[i].Type, got[i].Type)
		assert.Equal(t, txns[i].Account, got[i].Account)
	}
}

func TestWriteTransactions_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarshalTransaction(t *testing.T) {
	row := MarshalTransaction(sampleTxn("imported-1-0", "Food & Co", "-12.30", model.CategoryFood))
	assert.Equal(t, []string{"imported-1-0", "2024-01-15", "Food & Co", "-12.3", "Food & Dining", "expense", "Imported"}, row)
}

func TestUnmarshalTransaction_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
		errMsg string
	}{
		{"short", []string{"a", "b"}, "expected 7 fields"},
		{"bad date", []string{"x", "15/01/2024", "d", "1", "Other", "income", "Imported"}, "parsing date"},
		{"bad amount", []string{"x", "2024-01-15", "d", "one", "Other", "income", "Imported"}, "parsing amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalTransaction(tt.record)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestReadTransactions_RowNumberInError(t *testing.T) {
	data := Header + "\nimported-1-0,2024-01-15,ok,1,Other,income,Imported\nimported-1-1,bad,x,1,Other,income,Imported\n"
	_, err := ReadTransactions(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}
