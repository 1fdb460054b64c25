package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/saveup-dev/saveup/internal/model"
)

// DefaultPath is the ledger location relative to the project root.
const DefaultPath = "ledger/transactions.csv"

// Service reads and appends to the transaction ledger.
type Service struct {
	path       string
	categories CategoryChecker
}

// NewService creates a ledger Service for the CSV file at path.
func NewService(path string, categories CategoryChecker) *Service {
	return &Service{path: path, categories: categories}
}

// Path returns the ledger file location.
func (s *Service) Path() string { return s.path }

// All reads every transaction. A missing ledger is empty.
func (s *Service) All() ([]model.Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", s.path, err)
	}
	return txns, nil
}

// Init writes an empty ledger with only a header, unless one exists.
func (s *Service) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	defer f.Close()

	return WriteTransactions(f, nil)
}

// Append validates txns together with the existing ledger and appends them.
func (s *Service) Append(txns []model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	existing, err := s.All()
	if err != nil {
		return err
	}

	all := append(existing, txns...)
	if verrs := ValidateTransactions(all, s.categories); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, txns); err != nil {
		return fmt.Errorf("appending transactions: %w", err)
	}
	return nil
}

// Fingerprint identifies a transaction by date, signed amount and
// description, ignoring ID and case.
func Fingerprint(txn model.Transaction) string {
	return strings.Join([]string{
		txn.Date.Format(dateFormat),
		txn.Amount.String(),
		strings.ToLower(strings.TrimSpace(txn.Description)),
	}, "|")
}

// Deduplicate returns the transactions not already in the ledger, and the
// number dropped. Repeats within txns are kept; two identical coffees on the
// same day are two purchases.
func (s *Service) Deduplicate(txns []model.Transaction) ([]model.Transaction, int, error) {
	existing, err := s.All()
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]int, len(existing))
	for _, e := range existing {
		seen[Fingerprint(e)]++
	}

	var fresh []model.Transaction
	dropped := 0
	for _, txn := range txns {
		fp := Fingerprint(txn)
		if seen[fp] > 0 {
			seen[fp]--
			dropped++
			continue
		}
		fresh = append(fresh, txn)
	}
	return fresh, dropped, nil
}
