package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/saveup-dev/saveup/internal/categories"
	"github.com/saveup-dev/saveup/internal/config"
	"github.com/saveup-dev/saveup/internal/gitops"
	"github.com/saveup-dev/saveup/internal/importer"
	"github.com/saveup-dev/saveup/internal/ledger"
)

// project is an initialized saveup directory with its services wired up.
type project struct {
	root     string
	cfg      *config.Config
	ledger   *ledger.Service
	cats     *categories.Service
	importer *importer.Importer
	logger   *zap.Logger
}

func openProject(g *globals, repo string) (*project, error) {
	root, err := filepath.Abs(repo)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadDir(root)
	if err != nil {
		return nil, fmt.Errorf("not a saveup project (run saveup init): %w", err)
	}
	if err := g.setLogger(cfg.Logging.Level, logFormat(g, cfg)); err != nil {
		return nil, err
	}

	cats := categories.NewService(categories.Default())
	led := ledger.NewService(config.Resolve(root, cfg.Ledger.Path), cats)

	im := importer.New(importer.Config{
		Ledger:     led,
		Categories: cats,
		Account:    cfg.Import.Account,
		LogRoot:    root,
		Logger:     g.logger,
	})

	return &project{root: root, cfg: cfg, ledger: led, cats: cats, importer: im, logger: g.logger}, nil
}

// logFormat prefers an explicit --log-format over the config file.
func logFormat(g *globals, cfg *config.Config) string {
	if g.logFormat != "" {
		return g.logFormat
	}
	return cfg.Logging.Format
}

func (p *project) importDir() string {
	return config.Resolve(p.root, p.cfg.Import.Dir)
}

func (p *project) processedDir() string {
	return config.Resolve(p.root, p.cfg.Import.ProcessedDir)
}

// importOne imports a single statement and moves it to the processed dir.
// Statements with nothing to import are moved too so they are not retried.
func (p *project) importOne(path string, dryRun bool) (importer.Result, error) {
	res, err := p.importer.ImportFile(path, p.cfg.Import.Format, dryRun)
	if err != nil && !importer.IsEmpty(err) {
		return res, err
	}
	if dryRun {
		return res, err
	}
	if mvErr := importer.MarkProcessed(path, p.processedDir()); mvErr != nil {
		return res, mvErr
	}
	return res, err
}

// commit records an import when auto-commit is on and the project is a git
// repository.
func (p *project) commit(ctx context.Context, files []string) (string, error) {
	if len(files) == 0 {
		return "", nil
	}
	return p.commitMessage(ctx, "import: "+strings.Join(files, ", "))
}

func (p *project) commitMessage(ctx context.Context, msg string) (string, error) {
	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.root) {
		return "", nil
	}
	dirty, err := gitops.HasChanges(ctx, p.root)
	if err != nil || !dirty {
		return "", err
	}
	id := gitops.Identity{Name: p.cfg.Git.AuthorName, Email: p.cfg.Git.AuthorEmail}
	return gitops.CommitAll(ctx, p.root, msg, id)
}

func printResult(w io.Writer, res importer.Result, err error) {
	switch {
	case importer.IsEmpty(err):
		fmt.Fprintf(w, "%s: no valid transactions found in the CSV file\n", res.File)
	case err != nil:
		fmt.Fprintf(w, "%s: error parsing CSV file: %v\n", res.File, err)
	default:
		fmt.Fprintf(w, "%s: %d parsed, %d imported, %d duplicates\n", res.File, res.Parsed, res.Imported, res.Duplicates)
	}
}
