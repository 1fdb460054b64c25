package importer

import (
	"time"

	"go.uber.org/zap"

	"github.com/saveup-dev/saveup/internal/id"
	"github.com/saveup-dev/saveup/internal/model"
)

// Categorizer guesses a category from a description.
type Categorizer interface {
	Guess(description string) model.Category
}

// ToTransactions turns parsed statement lines into ledger rows: debits become
// negative expenses, credits positive income, each with a guessed category and
// an ID derived from now and its position. Lines whose date is not ISO are
// skipped and logged.
func ToTransactions(parsed []model.ParsedTransaction, account string, cat Categorizer, now time.Time, logger *zap.Logger) []model.Transaction {
	if logger == nil {
		logger = zap.NewNop()
	}

	txns := make([]model.Transaction, 0, len(parsed))
	for i, p := range parsed {
		date, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			logger.Warn("skipping transaction with unrecognised date",
				zap.String("date", p.Date),
				zap.String("description", p.Description))
			continue
		}

		txns = append(txns, model.Transaction{
			ID:          id.FormatImportID(now, i),
			Date:        date,
			Description: p.Description,
			Amount:      p.Signed(),
			Category:    cat.Guess(p.Description),
			Type:        model.TypeFor(p.Direction),
			Account:     account,
		})
	}
	return txns
}
