package statement

import (
	"github.com/shopspring/decimal"

	"github.com/saveup-dev/saveup/internal/model"
)

// Layout names a column arrangement recognised by Classify.
type Layout string

const (
	LayoutWide          Layout = "wide"           // date, narration, ref, value date, withdrawal, deposit, balance
	LayoutDebitCredit   Layout = "debit-credit"   // date, description, [ref], debit, credit, [balance]
	LayoutAmountBalance Layout = "amount-balance" // date, description, amount, balance | debit, credit
	LayoutSignedAmount  Layout = "signed-amount"  // date, description, amount
)

const (
	colDate = 0
	colDesc = 1

	wideColWithdrawal = 4
	wideColDeposit    = 5
	wideColBalance    = 6

	minFields = 3
)

var (
	// referenceThreshold: an integral value above this in column 2 is a
	// cheque/reference number, not money.
	referenceThreshold = decimal.NewFromInt(1_000_000)
	// balanceRatio: in a 4-column row, column 3 is a balance when it exceeds
	// column 2 by more than this factor.
	balanceRatio = decimal.NewFromInt(2)
)

// Classification is the money half of a classified row.
type Classification struct {
	Layout    Layout
	Amount    decimal.Decimal // magnitude; zero when the row carried no usable amount
	Direction model.Direction
	Balance   *decimal.Decimal
}

type layoutRule struct {
	layout Layout
	match  func(n int) bool
	apply  func(fields []string) (Classification, bool)
}

// layoutRules is evaluated top to bottom; the first rule whose match accepts
// the field count classifies the row.
var layoutRules = []layoutRule{
	{layout: LayoutWide, match: func(n int) bool { return n >= 7 }, apply: classifyWide},
	{layout: LayoutDebitCredit, match: func(n int) bool { return n == 5 || n == 6 }, apply: classifyDebitCredit},
	{layout: LayoutAmountBalance, match: func(n int) bool { return n == 4 }, apply: classifyAmountBalance},
	{layout: LayoutSignedAmount, match: func(n int) bool { return n == 3 }, apply: classifySignedAmount},
}

// Classify picks the layout for a tokenized row and extracts amount,
// direction and balance. It returns false when the row must be discarded
// outright. A true result may still carry a zero Amount; such rows are
// dropped by the parser.
func Classify(fields []string) (Classification, bool) {
	for _, rule := range layoutRules {
		if !rule.match(len(fields)) {
			continue
		}
		c, ok := rule.apply(fields)
		c.Layout = rule.layout
		return c, ok
	}
	return Classification{}, false
}

func classifyWide(fields []string) (Classification, bool) {
	withdrawal := ParseAmount(fields[wideColWithdrawal])
	deposit := ParseAmount(fields[wideColDeposit])
	balance := ParseAmount(fields[wideColBalance])

	var c Classification
	switch {
	case withdrawal.IsZero() && deposit.IsZero():
		return c, false
	case withdrawal.IsPositive() && deposit.IsZero():
		c.Amount, c.Direction = withdrawal, model.DirectionDebit
	case deposit.IsPositive() && withdrawal.IsZero():
		c.Amount, c.Direction = deposit, model.DirectionCredit
	case withdrawal.IsPositive() && deposit.IsPositive():
		if withdrawal.GreaterThan(deposit) {
			c.Amount, c.Direction = withdrawal, model.DirectionDebit
		} else {
			c.Amount, c.Direction = deposit, model.DirectionCredit
		}
	default:
		return c, false
	}

	if balance.IsPositive() {
		c.Balance = &balance
	}
	return c, true
}

func classifyDebitCredit(fields []string) (Classification, bool) {
	debitCol, creditCol := 2, 3
	isReference := IsReferenceNumber(ParseAmount(fields[2]))
	if isReference {
		debitCol, creditCol = 3, 4
	}

	c := debitCreditPair(ParseAmount(fields[debitCol]), ParseAmount(fields[creditCol]))

	switch {
	case len(fields) > 5:
		balance := ParseAmount(fields[len(fields)-1])
		c.Balance = &balance
	case !isReference && fields[4] != "":
		// date, description, debit, credit, balance
		balance := ParseAmount(fields[4])
		c.Balance = &balance
	}
	return c, true
}

func classifyAmountBalance(fields []string) (Classification, bool) {
	first := ParseAmount(fields[2])
	second := ParseAmount(fields[3])

	if !LooksLikeBalance(first, second) {
		return debitCreditPair(first, second), true
	}
	c := signedAmount(first)
	c.Balance = &second
	return c, true
}

func classifySignedAmount(fields []string) (Classification, bool) {
	return signedAmount(ParseAmount(fields[2])), true
}

// IsReferenceNumber reports whether v looks like a reference number rather
// than an amount.
func IsReferenceNumber(v decimal.Decimal) bool {
	return v.GreaterThan(referenceThreshold) && v.IsInteger()
}

// LooksLikeBalance reports whether candidate is large enough next to amount
// to be a running balance.
func LooksLikeBalance(amount, candidate decimal.Decimal) bool {
	return candidate.Abs().GreaterThan(amount.Abs().Mul(balanceRatio))
}

// debitCreditPair accepts exactly one positive column with the other zero.
func debitCreditPair(debit, credit decimal.Decimal) Classification {
	switch {
	case debit.IsPositive() && credit.IsZero():
		return Classification{Amount: debit, Direction: model.DirectionDebit}
	case credit.IsPositive() && debit.IsZero():
		return Classification{Amount: credit, Direction: model.DirectionCredit}
	default:
		return Classification{Direction: model.DirectionDebit}
	}
}

func signedAmount(v decimal.Decimal) Classification {
	if v.IsNegative() {
		return Classification{Amount: v.Abs(), Direction: model.DirectionDebit}
	}
	return Classification{Amount: v, Direction: model.DirectionCredit}
}
