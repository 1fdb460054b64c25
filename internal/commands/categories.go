package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saveup-dev/saveup/internal/categories"
	"github.com/saveup-dev/saveup/internal/model"
	"github.com/saveup-dev/saveup/internal/preview"
)

func newCategoriesCommand() *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the spending categories and the keywords that select them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := categories.NewService(categories.Default())

			list := svc.All()
			switch model.TransactionType(typ) {
			case "":
			case model.TypeIncome, model.TypeExpense:
				list = svc.ByType(model.TransactionType(typ))
			default:
				return fmt.Errorf("invalid --type %q (want income or expense)", typ)
			}

			fmt.Fprintln(cmd.OutOrStdout(), preview.Categories(list))
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "only list income or expense categories")

	return cmd
}
