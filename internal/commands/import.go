package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saveup-dev/saveup/internal/importer"
)

func newImportCommand(g *globals) *cobra.Command {
	var repo string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import every statement CSV in the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(g, repo)
			if err != nil {
				return err
			}

			files, err := importer.Scan(p.importDir())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintf(out, "No CSV files in %s\n", p.importDir())
				return nil
			}

			var imported []string
			var failed int
			for _, f := range files {
				res, err := p.importOne(f.Path, dryRun)
				printResult(out, res, err)
				if err != nil && !importer.IsEmpty(err) {
					failed++
					continue
				}
				if res.Imported > 0 {
					imported = append(imported, f.Name)
				}
			}

			if !dryRun {
				hash, err := p.commit(cmd.Context(), imported)
				if err != nil {
					return fmt.Errorf("committing import: %w", err)
				}
				if hash != "" {
					p.logger.Info("committed import", zap.String("commit", hash))
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d statements failed to import", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "project directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without writing")

	return cmd
}
