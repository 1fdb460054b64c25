package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saveup-dev/saveup/internal/budget"
	"github.com/saveup-dev/saveup/internal/config"
	"github.com/saveup-dev/saveup/internal/model"
	"github.com/saveup-dev/saveup/internal/preview"
)

// reportMonth picks the month to report on: --month when given, otherwise
// the month of the newest ledger row.
func reportMonth(flag string, txns []model.Transaction) (time.Time, error) {
	if flag != "" {
		return budget.ParseMonth(flag)
	}
	return budget.LatestMonth(txns, time.Now()), nil
}

func newSummaryCommand(g *globals) *cobra.Command {
	var repo string
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show balance, income, spending and savings rate for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(g, repo)
			if err != nil {
				return err
			}
			txns, err := p.ledger.All()
			if err != nil {
				return err
			}
			m, err := reportMonth(month, txns)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), preview.Overview(budget.Summarize(txns, m), p.cfg.Owner.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "project directory")
	cmd.Flags().StringVar(&month, "month", "", "month to report, YYYY-MM (default: newest in ledger)")

	return cmd
}

func newBudgetsCommand(g *globals) *cobra.Command {
	var repo string
	var month string

	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Compare a month's spending with the budgets in saveup.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(g, repo)
			if err != nil {
				return err
			}
			budgets, err := budget.FromConfig(p.cfg.Budgets, p.cats)
			if err != nil {
				return fmt.Errorf("invalid budgets in %s: %w", config.FileName, err)
			}
			txns, err := p.ledger.All()
			if err != nil {
				return err
			}
			m, err := reportMonth(month, txns)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), preview.Budgets(budget.Track(txns, budgets, m), m, p.cfg.Owner.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "project directory")
	cmd.Flags().StringVar(&month, "month", "", "month to report, YYYY-MM (default: newest in ledger)")

	return cmd
}

func newGoalsCommand(g *globals) *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show progress towards the savings goals in saveup.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(g, repo)
			if err != nil {
				return err
			}
			goals, err := budget.GoalsFromConfig(p.cfg.Goals)
			if err != nil {
				return fmt.Errorf("invalid goals: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), preview.Goals(budget.Progress(goals, time.Now()), p.cfg.Owner.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "project directory")

	return cmd
}
