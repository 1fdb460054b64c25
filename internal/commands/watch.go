package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saveup-dev/saveup/internal/importer"
)

func newWatchCommand(g *globals) *cobra.Command {
	var repo string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Import statement CSVs as they are dropped into the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(g, repo)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			handle := func(path string) error {
				res, err := p.importOne(path, false)
				printResult(out, res, err)
				if err != nil && !importer.IsEmpty(err) {
					return err
				}
				if res.Imported == 0 {
					return nil
				}
				hash, err := p.commit(context.WithoutCancel(ctx), []string{filepath.Base(path)})
				if err != nil {
					return err
				}
				if hash != "" {
					p.logger.Info("committed import", zap.String("commit", hash))
				}
				return nil
			}

			return importer.NewWatcher(p.importDir(), handle, debounce, p.logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "project directory")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "quiet period before a new file is imported")

	return cmd
}
