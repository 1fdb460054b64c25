package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saveup-dev/saveup/internal/buildinfo"
	"github.com/saveup-dev/saveup/internal/logging"
)

// globals holds state shared by every subcommand.
type globals struct {
	verbose   bool
	logFormat string
	logger    *zap.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globals{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:     "saveup",
		Short:   "Import bank statement CSVs into a personal ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setLogger("warn", g.logFormat)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = g.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "log output format: console or json (default from saveup.yaml)")

	rootCmd.AddCommand(
		newInitCommand(),
		newParseCommand(g),
		newImportCommand(g),
		newWatchCommand(g),
		newAddCommand(g),
		newSummaryCommand(g),
		newBudgetsCommand(g),
		newGoalsCommand(g),
		newLogCommand(g),
		newCategoriesCommand(),
	)

	return rootCmd
}

// setLogger replaces the logger. --verbose always wins over level.
func (g *globals) setLogger(level, format string) error {
	if g.verbose {
		level = "debug"
	}
	logger, err := logging.New(level, format)
	if err != nil {
		return err
	}
	_ = g.logger.Sync()
	g.logger = logger
	return nil
}
