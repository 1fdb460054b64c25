package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saveup-dev/saveup/internal/categories"
	"github.com/saveup-dev/saveup/internal/importer"
	"github.com/saveup-dev/saveup/internal/model"
	"github.com/saveup-dev/saveup/internal/preview"
	"github.com/saveup-dev/saveup/internal/statement"
)

func newParseCommand(g *globals) *cobra.Command {
	var format string
	var asJSON bool
	var currency string

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Preview the transactions read from statement CSVs",
		Long: "Preview the transactions read from one or more statement CSVs without\n" +
			"touching the ledger. With --json the transactions of all files are\n" +
			"printed as a single array.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im := importer.New(importer.Config{Logger: g.logger})
			results, err := im.ParseFiles(cmd.Context(), args, format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cats := categories.NewService(categories.Default())

			var all []model.ParsedTransaction
			var failed []error
			for _, r := range results {
				switch {
				case importer.IsEmpty(r.Err):
					fmt.Fprintln(out, "No valid transactions found in the CSV file")
					failed = append(failed, fmt.Errorf("%s: %w", r.Path, r.Err))
					continue
				case errors.Is(r.Err, statement.ErrUnreadable):
					failed = append(failed, fmt.Errorf("error parsing CSV file %s: %w", r.Path, r.Err))
					continue
				case r.Err != nil:
					failed = append(failed, r.Err)
					continue
				}

				if asJSON {
					all = append(all, r.Transactions...)
					continue
				}
				if len(results) > 1 {
					fmt.Fprintln(out, r.Path)
				}
				fmt.Fprintln(out, preview.Table(r.Transactions, cats, currency))
			}

			if asJSON && len(all) > 0 {
				if err := preview.WriteJSON(out, all, cats); err != nil {
					return err
				}
			}
			return errors.Join(failed...)
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", "statement format (auto or chase)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().StringVar(&currency, "currency", "USD", "currency code used to display amounts")

	return cmd
}
