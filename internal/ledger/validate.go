package ledger

import (
	"fmt"

	"github.com/saveup-dev/saveup/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant     int
	TransactionID string
	Description   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.TransactionID, e.Description)
}

// CategoryChecker tests whether a category name is known.
type CategoryChecker interface {
	Exists(name model.Category) bool
}

// ValidateTransactions checks the ledger invariants over a full set of rows:
//
//  1. IDs are non-empty and unique.
//  2. Amounts are non-zero.
//  3. Type agrees with the sign: expense is negative, income positive.
//  4. Category is known.
func ValidateTransactions(txns []model.Transaction, categories CategoryChecker) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(txns))
	for _, txn := range txns {
		if txn.ID == "" {
			errs = append(errs, ValidationError{Invariant: 1, Description: "missing transaction ID"})
		} else if seen[txn.ID] {
			errs = append(errs, ValidationError{
				Invariant:     1,
				TransactionID: txn.ID,
				Description:   "duplicate transaction ID",
			})
		}
		seen[txn.ID] = true

		if txn.Amount.IsZero() {
			errs = append(errs, ValidationError{
				Invariant:     2,
				TransactionID: txn.ID,
				Description:   "amount is zero",
			})
		}

		switch txn.Type {
		case model.TypeExpense:
			if txn.Amount.IsPositive() {
				errs = append(errs, ValidationError{
					Invariant:     3,
					TransactionID: txn.ID,
					Description:   fmt.Sprintf("expense with positive amount %s", txn.Amount),
				})
			}
		case model.TypeIncome:
			if txn.Amount.IsNegative() {
				errs = append(errs, ValidationError{
					Invariant:     3,
					TransactionID: txn.ID,
					Description:   fmt.Sprintf("income with negative amount %s", txn.Amount),
				})
			}
		default:
			errs = append(errs, ValidationError{
				Invariant:     3,
				TransactionID: txn.ID,
				Description:   fmt.Sprintf("unknown type %q", txn.Type),
			})
		}

		if !categories.Exists(txn.Category) {
			errs = append(errs, ValidationError{
				Invariant:     4,
				TransactionID: txn.ID,
				Description:   fmt.Sprintf("unknown category %q", txn.Category),
			})
		}
	}

	return errs
}
