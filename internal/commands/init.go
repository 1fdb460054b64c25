package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saveup-dev/saveup/internal/categories"
	"github.com/saveup-dev/saveup/internal/config"
	"github.com/saveup-dev/saveup/internal/gitops"
	"github.com/saveup-dev/saveup/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var name string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new SaveUp project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			hash, err := runInit(cmd.Context(), absDir, name, currency)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized SaveUp project at %s (%s)\n", absDir, hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "owner name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currency, "currency", "USD", "display currency code")

	return cmd
}

func runInit(ctx context.Context, dir, name, currency string) (string, error) {
	cfg := config.Default(name)
	cfg.Owner.Currency = currency

	dirs := []string{
		cfg.Import.Dir,
		cfg.Import.ProcessedDir,
		filepath.Dir(cfg.Ledger.Path),
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	led := ledger.NewService(filepath.Join(dir, cfg.Ledger.Path), categories.NewService(categories.Default()))
	if err := led.Init(); err != nil {
		return "", fmt.Errorf("writing ledger: %w", err)
	}

	// Statements hold account numbers; keep them out of history.
	gitignore := "import/*.csv\nimport/processed/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return "", fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, cfg.Import.Dir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return "", fmt.Errorf("writing .gitkeep: %w", err)
	}

	if err := gitops.Init(ctx, dir); err != nil {
		return "", fmt.Errorf("git init: %w", err)
	}

	id := gitops.Identity{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	hash, err := gitops.CommitAll(ctx, dir, "init: Initialize "+name, id)
	if err != nil {
		return "", fmt.Errorf("initial commit: %w", err)
	}
	return hash, nil
}
