package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saveup-dev/saveup/internal/importlog"
	"github.com/saveup-dev/saveup/internal/preview"
)

func newLogCommand(g *globals) *cobra.Command {
	var repo string
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the history of statement imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(g, repo)
			if err != nil {
				return err
			}
			entries, err := importlog.Read(p.root)
			if err != nil {
				return err
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			fmt.Fprintln(cmd.OutOrStdout(), preview.ImportLog(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "project directory")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "show at most this many imports (0 for all)")

	return cmd
}
