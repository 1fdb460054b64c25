package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction records whether a statement line decreased or increased the balance.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// ParsedTransaction is one statement line as read from a bank CSV.
// Amount is always a positive magnitude; Direction carries the sign.
type ParsedTransaction struct {
	Date        string // YYYY-MM-DD, or the raw source text when unrecognised
	Description string
	Amount      decimal.Decimal
	Direction   Direction
	Balance     *decimal.Decimal // nil when the layout has no balance column
}

// Signed returns the amount negated for debits.
func (p ParsedTransaction) Signed() decimal.Decimal {
	if p.Direction == DirectionDebit {
		return p.Amount.Neg()
	}
	return p.Amount
}

// TransactionType classifies a ledger row.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// TypeFor maps a statement direction onto a ledger type.
func TypeFor(d Direction) TransactionType {
	if d == DirectionDebit {
		return TypeExpense
	}
	return TypeIncome
}

// Transaction is a row in the ledger (transactions.csv).
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
	Category    Category
	Type        TransactionType
	Account     string
}
