package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveup-dev/saveup/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		ok        bool
		layout    Layout
		amount    string
		direction model.Direction
		balance   string // "" = no balance
	}{
		// wide
		{"wide withdrawal", "01/04/24,ATM,123,01/04/24,500.00,,1500.00", true, LayoutWide, "500", model.DirectionDebit, "1500"},
		{"wide deposit", "01/04/24,NEFT,123,01/04/24,0,2500,4000", true, LayoutWide, "2500", model.DirectionCredit, "4000"},
		{"wide both zero", "01/04/24,X,123,01/04/24,0,0,4000", false, LayoutWide, "0", "", ""},
		{"wide both empty", "01/04/24,X,123,01/04/24,,,4000", false, LayoutWide, "0", "", ""},
		{"wide both positive debit wins", "d,X,r,v,300,200,900", true, LayoutWide, "300", model.DirectionDebit, "900"},
		{"wide both positive credit wins", "d,X,r,v,200,300,900", true, LayoutWide, "300", model.DirectionCredit, "900"},
		{"wide equal goes credit", "d,X,r,v,200,200,900", true, LayoutWide, "200", model.DirectionCredit, "900"},
		{"wide negative withdrawal", "d,X,r,v,-200,0,900", false, LayoutWide, "0", "", ""},
		{"wide non-positive balance dropped", "d,X,r,v,10,0,-5", true, LayoutWide, "10", model.DirectionDebit, ""},
		{"wide eight fields", "d,X,r,v,10,0,50,extra", true, LayoutWide, "10", model.DirectionDebit, "50"},

		// debit-credit
		{"five debit", "2024-01-01,Coffee Shop,5.50,0,994.50", true, LayoutDebitCredit, "5.5", model.DirectionDebit, "994.5"},
		{"five credit", "2024-01-02,Paycheck,0,2000.00,2994.50", true, LayoutDebitCredit, "2000", model.DirectionCredit, "2994.5"},
		{"five empty balance", "2024-01-01,Coffee Shop,5.50,0,", true, LayoutDebitCredit, "5.5", model.DirectionDebit, ""},
		{"five both positive", "d,X,5,5,100", true, LayoutDebitCredit, "0", model.DirectionDebit, "100"},
		{"five with reference debit", "d,X,12345678,40,0", true, LayoutDebitCredit, "40", model.DirectionDebit, ""},
		{"five with reference credit", "d,X,12345678,0,40", true, LayoutDebitCredit, "40", model.DirectionCredit, ""},
		{"six with reference", "d,X,12345678,0,40,1040", true, LayoutDebitCredit, "40", model.DirectionCredit, "1040"},
		{"six no reference", "d,X,25,0,ref,1040", true, LayoutDebitCredit, "25", model.DirectionDebit, "1040"},
		{"six balance unconditional", "d,X,25,0,ref,", true, LayoutDebitCredit, "25", model.DirectionDebit, "0"},

		// amount-balance
		{"four amount and balance", "d,X,-20,1000", true, LayoutAmountBalance, "20", model.DirectionDebit, "1000"},
		{"four positive amount and balance", "d,X,20,1000", true, LayoutAmountBalance, "20", model.DirectionCredit, "1000"},
		{"four debit column", "d,X,20,0", true, LayoutAmountBalance, "20", model.DirectionDebit, ""},
		{"four zero amount reads as balance", "d,X,0,20", true, LayoutAmountBalance, "0", model.DirectionCredit, "20"},
		{"four close values are a pair", "d,X,30,50", true, LayoutAmountBalance, "0", model.DirectionDebit, ""},
		{"four exactly double is pair", "d,X,10,20", true, LayoutAmountBalance, "0", model.DirectionDebit, ""},

		// signed
		{"three negative", "d,X,-12.34", true, LayoutSignedAmount, "12.34", model.DirectionDebit, ""},
		{"three positive", "d,X,12.34", true, LayoutSignedAmount, "12.34", model.DirectionCredit, ""},
		{"three zero", "d,X,0", true, LayoutSignedAmount, "0", model.DirectionCredit, ""},

		// too short
		{"two fields", "d,X", false, "", "0", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Classify(SplitRow(tt.row))
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.layout, c.Layout)
			if !ok {
				return
			}
			assert.True(t, dec(tt.amount).Equal(c.Amount), "amount = %s, want %s", c.Amount, tt.amount)
			assert.Equal(t, tt.direction, c.Direction)
			if tt.balance == "" {
				assert.Nil(t, c.Balance)
			} else {
				require.NotNil(t, c.Balance)
				assert.True(t, dec(tt.balance).Equal(*c.Balance), "balance = %s, want %s", c.Balance, tt.balance)
			}
		})
	}
}

func TestIsReferenceNumber(t *testing.T) {
	assert.True(t, IsReferenceNumber(dec("1000001")))
	assert.True(t, IsReferenceNumber(dec("412345678901")))
	assert.False(t, IsReferenceNumber(dec("1000000")), "threshold is exclusive")
	assert.False(t, IsReferenceNumber(dec("1000001.50")), "fractions are money")
	assert.False(t, IsReferenceNumber(dec("-5000000")))
	assert.False(t, IsReferenceNumber(decimal.Zero))
}

func TestLooksLikeBalance(t *testing.T) {
	assert.True(t, LooksLikeBalance(dec("10"), dec("20.01")))
	assert.True(t, LooksLikeBalance(dec("-10"), dec("-25")))
	assert.False(t, LooksLikeBalance(dec("10"), dec("20")))
	assert.False(t, LooksLikeBalance(dec("10"), dec("5")))
	assert.True(t, LooksLikeBalance(decimal.Zero, dec("1")))
}

func TestLayoutRulesOrderedAndDisjoint(t *testing.T) {
	for n := 0; n <= 12; n++ {
		var matched []Layout
		for _, r := range layoutRules {
			if r.match(n) {
				matched = append(matched, r.layout)
			}
		}
		assert.LessOrEqual(t, len(matched), 1, "field count %d matched %v", n, matched)
		if n >= minFields {
			assert.Len(t, matched, 1, "field count %d has no layout", n)
		}
	}
}
