package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saveup-dev/saveup/internal/id"
	"github.com/saveup-dev/saveup/internal/model"
)

const manualAccount = "Manual"

func newAddCommand(g *globals) *cobra.Command {
	var (
		repo        string
		date        string
		description string
		amount      string
		category    string
		typ         string
		account     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction by hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(g, repo)
			if err != nil {
				return err
			}

			txn, err := manualTransaction(date, description, amount, category, typ, account, p.cats.Guess)
			if err != nil {
				return err
			}

			existing, err := p.ledger.All()
			if err != nil {
				return err
			}
			txn.ID = uniqueManualID(time.Now(), existing)

			if err := p.ledger.Append([]model.Transaction{txn}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", txn.ID, p.ledger.Path())

			hash, err := p.commitMessage(cmd.Context(), "add: "+txn.Description)
			if err != nil {
				return fmt.Errorf("committing transaction: %w", err)
			}
			if hash != "" {
				p.logger.Info("committed transaction", zap.String("commit", hash))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "project directory")
	cmd.Flags().StringVar(&date, "date", "", "transaction date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "what the money was for (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount, always entered as a positive number (required)")
	cmd.Flags().StringVar(&category, "category", "", "category name (default: guessed from the description)")
	cmd.Flags().StringVar(&typ, "type", string(model.TypeExpense), "income or expense")
	cmd.Flags().StringVar(&account, "account", manualAccount, "account label")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// manualTransaction builds a ledger row from user input. Expenses are stored
// negative whatever sign was typed.
func manualTransaction(date, description, amount, category, typ, account string, guess func(string) model.Category) (model.Transaction, error) {
	t := model.TransactionType(typ)
	if t != model.TypeIncome && t != model.TypeExpense {
		return model.Transaction{}, fmt.Errorf("invalid --type %q (want income or expense)", typ)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid --amount %q: %w", amount, err)
	}
	value = value.Abs()
	if t == model.TypeExpense {
		value = value.Neg()
	}

	when := time.Now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		when, err = time.Parse("2006-01-02", date)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", date, err)
		}
	}

	cat := model.Category(category)
	if cat == "" {
		cat = guess(description)
	}

	return model.Transaction{
		Date:        when,
		Description: description,
		Amount:      value,
		Category:    cat,
		Type:        t,
		Account:     account,
	}, nil
}

// uniqueManualID returns a manual ID for now, moved forward a millisecond at
// a time past any ID already in use.
func uniqueManualID(now time.Time, existing []model.Transaction) string {
	used := make(map[string]bool, len(existing))
	for _, txn := range existing {
		used[txn.ID] = true
	}
	for {
		candidate := id.FormatManualID(now)
		if !used[candidate] {
			return candidate
		}
		now = now.Add(time.Millisecond)
	}
}
