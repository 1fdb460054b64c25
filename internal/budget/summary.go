// Package budget reports on the ledger: monthly income and spending, budget
// limits per category and progress towards savings goals.
package budget

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saveup-dev/saveup/internal/model"
)

const monthFormat = "2006-01"

var hundred = decimal.NewFromInt(100)

// ParseMonth reads a YYYY-MM month. The result is midnight UTC on the first.
func ParseMonth(s string) (time.Time, error) {
	m, err := time.Parse(monthFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return m, nil
}

// MonthOf returns the first day of t's month in UTC.
func MonthOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func inMonth(t, month time.Time) bool {
	return MonthOf(t).Equal(month)
}

// CategoryTotal is the money moved in one category and direction.
type CategoryTotal struct {
	Category model.Category
	Type     model.TransactionType
	Amount   decimal.Decimal // magnitude
	Count    int
}

// Overview is the dashboard view of one month.
type Overview struct {
	Month       time.Time
	Balance     decimal.Decimal // sum of every ledger amount, all time
	Income      decimal.Decimal
	Expenses    decimal.Decimal // magnitude
	Net         decimal.Decimal
	SavingsRate decimal.Decimal // percent of income kept; zero without income
	Categories  []CategoryTotal // largest first
}

// Summarize totals txns for month.
func Summarize(txns []model.Transaction, month time.Time) Overview {
	month = MonthOf(month)
	o := Overview{Month: month}

	type key struct {
		cat model.Category
		typ model.TransactionType
	}
	totals := make(map[key]*CategoryTotal)

	for _, txn := range txns {
		o.Balance = o.Balance.Add(txn.Amount)
		if !inMonth(txn.Date, month) {
			continue
		}

		mag := txn.Amount.Abs()
		if txn.Type == model.TypeIncome {
			o.Income = o.Income.Add(mag)
		} else {
			o.Expenses = o.Expenses.Add(mag)
		}

		k := key{txn.Category, txn.Type}
		ct, ok := totals[k]
		if !ok {
			ct = &CategoryTotal{Category: txn.Category, Type: txn.Type}
			totals[k] = ct
		}
		ct.Amount = ct.Amount.Add(mag)
		ct.Count++
	}

	o.Net = o.Income.Sub(o.Expenses)
	if o.Income.IsPositive() {
		o.SavingsRate = o.Net.Div(o.Income).Mul(hundred).Round(1)
	}

	for _, ct := range totals {
		o.Categories = append(o.Categories, *ct)
	}
	sort.Slice(o.Categories, func(i, j int) bool {
		a, b := o.Categories[i], o.Categories[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Type < b.Type
	})
	return o
}

// LatestMonth returns the month of the newest transaction, or the month of
// now when txns is empty.
func LatestMonth(txns []model.Transaction, now time.Time) time.Time {
	if len(txns) == 0 {
		return MonthOf(now)
	}
	latest := txns[0].Date
	for _, txn := range txns[1:] {
		if txn.Date.After(latest) {
			latest = txn.Date
		}
	}
	return MonthOf(latest)
}
