package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saveup-dev/saveup/internal/config"
	"github.com/saveup-dev/saveup/internal/model"
)

// CategoryLookup finds a category by name.
type CategoryLookup interface {
	Get(name model.Category) (model.CategoryInfo, bool)
}

// Budget is a monthly spending limit for an expense category.
type Budget struct {
	Category model.Category
	Limit    decimal.Decimal
}

// FromConfig validates the budgets section of saveup.yaml. Every category
// must exist and be an expense category, limits must be positive and each
// category may be budgeted once.
func FromConfig(cfgs []config.BudgetConfig, cats CategoryLookup) ([]Budget, error) {
	var errs []error
	seen := make(map[model.Category]bool, len(cfgs))
	budgets := make([]Budget, 0, len(cfgs))

	for _, c := range cfgs {
		name := model.Category(c.Category)
		info, ok := cats.Get(name)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("budget %q: unknown category", c.Category))
			continue
		case info.Type == model.TypeIncome:
			errs = append(errs, fmt.Errorf("budget %q: income categories cannot be budgeted", c.Category))
			continue
		case !c.Amount.IsPositive():
			errs = append(errs, fmt.Errorf("budget %q: amount must be positive, got %s", c.Category, c.Amount))
			continue
		case seen[name]:
			errs = append(errs, fmt.Errorf("budget %q: listed more than once", c.Category))
			continue
		}
		seen[name] = true
		budgets = append(budgets, Budget{Category: name, Limit: c.Amount})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return budgets, nil
}

// Status is a budget measured against one month of spending.
type Status struct {
	Budget
	Spent       decimal.Decimal
	Remaining   decimal.Decimal // negative when over budget
	PercentUsed decimal.Decimal // one decimal place, may exceed 100
}

// Over reports whether spending exceeded the limit.
func (s Status) Over() bool {
	return s.Spent.GreaterThan(s.Limit)
}

// Track measures each budget against the expenses of month. Statuses keep
// the order of budgets.
func Track(txns []model.Transaction, budgets []Budget, month time.Time) []Status {
	month = MonthOf(month)

	spent := make(map[model.Category]decimal.Decimal)
	for _, txn := range txns {
		if txn.Type != model.TypeExpense || !inMonth(txn.Date, month) {
			continue
		}
		spent[txn.Category] = spent[txn.Category].Add(txn.Amount.Abs())
	}

	statuses := make([]Status, len(budgets))
	for i, b := range budgets {
		s := spent[b.Category]
		statuses[i] = Status{
			Budget:      b,
			Spent:       s,
			Remaining:   b.Limit.Sub(s),
			PercentUsed: s.Div(b.Limit).Mul(hundred).Round(1),
		}
	}
	return statuses
}
