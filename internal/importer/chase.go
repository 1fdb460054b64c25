package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saveup-dev/saveup/internal/model"
)

// ChaseParser parses Chase checking CSV exports. Unlike the auto parser it
// knows the exact layout and rejects malformed rows.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
	chaseColBalance = 5
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV. Zero-amount rows are dropped.
func (p *ChaseParser) Parse(r io.Reader) ([]model.ParsedTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.ParsedTransaction
	for i, rec := range records[1:] {
		txn, ok, err := parseChaseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if ok {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

func parseChaseRow(rec []string) (model.ParsedTransaction, bool, error) {
	date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
	if err != nil {
		return model.ParsedTransaction{}, false, fmt.Errorf("parsing date %q: %w", rec[chaseColDate], err)
	}

	amount, err := decimal.NewFromString(rec[chaseColAmount])
	if err != nil {
		return model.ParsedTransaction{}, false, fmt.Errorf("parsing amount %q: %w", rec[chaseColAmount], err)
	}
	if amount.IsZero() {
		return model.ParsedTransaction{}, false, nil
	}

	txn := model.ParsedTransaction{
		Date:        date.Format("2006-01-02"),
		Description: rec[chaseColDesc],
		Amount:      amount.Abs(),
		Direction:   model.DirectionCredit,
	}
	if amount.IsNegative() {
		txn.Direction = model.DirectionDebit
	}

	if rec[chaseColBalance] != "" {
		balance, err := decimal.NewFromString(rec[chaseColBalance])
		if err != nil {
			return model.ParsedTransaction{}, false, fmt.Errorf("parsing balance %q: %w", rec[chaseColBalance], err)
		}
		txn.Balance = &balance
	}
	return txn, true, nil
}
