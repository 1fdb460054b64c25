package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/saveup-dev/saveup/internal/id"
	"github.com/saveup-dev/saveup/internal/importlog"
	"github.com/saveup-dev/saveup/internal/ledger"
	"github.com/saveup-dev/saveup/internal/model"
)

// Importer reads statements into the ledger.
type Importer struct {
	registry   *Registry
	ledger     *ledger.Service
	categories Categorizer
	account    string
	logRoot    string // project root holding logs/import-log.csv; empty disables the log
	now        func() time.Time
	logger     *zap.Logger

	mu        sync.Mutex
	lastStamp time.Time // last batch time handed out; zero until seeded
}

// Config holds the collaborators of an Importer.
type Config struct {
	Registry   *Registry
	Ledger     *ledger.Service
	Categories Categorizer
	Account    string
	LogRoot    string
	Now        func() time.Time
	Logger     *zap.Logger
}

// New creates an Importer. Registry, Now and Logger have defaults.
func New(cfg Config) *Importer {
	im := &Importer{
		registry:   cfg.Registry,
		ledger:     cfg.Ledger,
		categories: cfg.Categories,
		account:    cfg.Account,
		logRoot:    cfg.LogRoot,
		now:        cfg.Now,
		logger:     cfg.Logger,
	}
	if im.logger == nil {
		im.logger = zap.NewNop()
	}
	if im.registry == nil {
		im.registry = DefaultRegistry(im.logger)
	}
	if im.now == nil {
		im.now = time.Now
	}
	return im
}

// Result summarises one imported file.
type Result struct {
	File       string
	Format     string
	Parsed     int
	Imported   int
	Duplicates int
}

// ParseFile reads the statement at path with the named parser. An empty
// result is ErrNoTransactions.
func (im *Importer) ParseFile(path, format string) ([]model.ParsedTransaction, error) {
	p, err := im.registry.Lookup(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	parsed, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if len(parsed) == 0 {
		return nil, ErrNoTransactions
	}
	return parsed, nil
}

// ImportFile parses path, drops transactions already in the ledger and
// appends the rest. With dryRun nothing is written.
func (im *Importer) ImportFile(path, format string, dryRun bool) (Result, error) {
	res := Result{File: filepath.Base(path), Format: format}
	log := im.logger.With(zap.String("file", res.File), zap.String("format", format))

	parsed, err := im.ParseFile(path, format)
	if err != nil {
		return res, err
	}
	res.Parsed = len(parsed)

	now, err := im.nextStamp()
	if err != nil {
		return res, err
	}
	txns := ToTransactions(parsed, im.account, im.categories, now, log)

	fresh, dups, err := im.ledger.Deduplicate(txns)
	if err != nil {
		return res, fmt.Errorf("checking duplicates: %w", err)
	}
	res.Duplicates = dups
	res.Imported = len(fresh)

	log.Debug("statement parsed",
		zap.Int("parsed", res.Parsed),
		zap.Int("new", res.Imported),
		zap.Int("duplicates", res.Duplicates))

	if dryRun {
		return res, nil
	}

	if err := im.ledger.Append(fresh); err != nil {
		return res, fmt.Errorf("writing ledger: %w", err)
	}

	if im.logRoot != "" {
		entry := importlog.NewEntry(now, res.File, format)
		entry.Parsed, entry.Imported, entry.Duplicates = res.Parsed, res.Imported, res.Duplicates
		if err := importlog.Append(im.logRoot, []importlog.Entry{entry}); err != nil {
			log.Warn("failed to write import log", zap.Error(err))
		}
	}

	log.Info("statement imported", zap.Int("imported", res.Imported), zap.Int("duplicates", res.Duplicates))
	return res, nil
}

// nextStamp returns the batch time used in transaction IDs. Stamps are
// millisecond precision and strictly increasing, starting after the newest
// import ID already in the ledger, so two imports never share an ID prefix.
func (im *Importer) nextStamp() (time.Time, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.lastStamp.IsZero() {
		existing, err := im.ledger.All()
		if err != nil {
			return time.Time{}, fmt.Errorf("reading ledger: %w", err)
		}
		for _, txn := range existing {
			if !id.IsImportID(txn.ID) {
				continue
			}
			ts, _, err := id.ParseImportID(txn.ID)
			if err == nil && ts.After(im.lastStamp) {
				im.lastStamp = ts
			}
		}
	}

	stamp := im.now().Truncate(time.Millisecond)
	if !stamp.After(im.lastStamp) {
		stamp = im.lastStamp.Add(time.Millisecond)
	}
	im.lastStamp = stamp
	return stamp, nil
}

// IsEmpty reports whether err means the statement had nothing to import.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrNoTransactions)
}
