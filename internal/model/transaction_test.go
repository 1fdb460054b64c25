package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsedTransactionSigned(t *testing.T) {
	tests := []struct {
		amount    string
		direction Direction
		want      string
	}{
		{"5.50", DirectionDebit, "-5.5"},
		{"2000", DirectionCredit, "2000"},
		{"0.01", DirectionDebit, "-0.01"},
	}
	for _, tt := range tests {
		p := ParsedTransaction{Amount: decimal.RequireFromString(tt.amount), Direction: tt.direction}
		assert.Equal(t, tt.want, p.Signed().String(), "Signed(%s %s)", tt.amount, tt.direction)
	}
}

func TestTypeFor(t *testing.T) {
	assert.Equal(t, TypeExpense, TypeFor(DirectionDebit))
	assert.Equal(t, TypeIncome, TypeFor(DirectionCredit))
}
