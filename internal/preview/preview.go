// Package preview renders parsed statement lines for the terminal.
package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/saveup-dev/saveup/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	creditStyle = cellStyle.Foreground(lipgloss.Color("2"))
	debitStyle  = cellStyle.Foreground(lipgloss.Color("1"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

const (
	colType   = 2
	colAmount = 3
)

// Categorizer guesses a category from a description.
type Categorizer interface {
	Guess(description string) model.Category
}

// Table renders parsed transactions as a bordered table with credits in green
// and debits in red.
func Table(parsed []model.ParsedTransaction, cat Categorizer, currency string) string {
	rows := make([][]string, len(parsed))
	for i, p := range parsed {
		rows[i] = []string{
			p.Date,
			p.Description,
			string(p.Direction),
			FormatAmount(p.Amount.StringFixed(2), currency),
			string(cat.Guess(p.Description)),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Description", "Type", "Amount", "Category").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col != colType && col != colAmount {
				return cellStyle
			}
			if parsed[row].Direction == model.DirectionCredit {
				return creditStyle.Align(alignFor(col))
			}
			return debitStyle.Align(alignFor(col))
		})

	title := titleStyle.Render(fmt.Sprintf("Found %d transactions", len(parsed)))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}

func alignFor(col int) lipgloss.Position {
	if col == colAmount {
		return lipgloss.Right
	}
	return lipgloss.Left
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF",
	"CNY": "¥",
	"INR": "₹",
	"BRL": "R$",
}

// FormatAmount prefixes amount with the symbol for a currency code. Unknown
// codes are written after the amount.
func FormatAmount(amount, currency string) string {
	if currency == "" {
		return amount
	}
	if sym, ok := currencySymbols[currency]; ok {
		return sym + amount
	}
	return amount + " " + currency
}

// Money formats d to two places in currency, with a leading minus for
// negative values.
func Money(d decimal.Decimal, currency string) string {
	s := FormatAmount(d.Abs().StringFixed(2), currency)
	if d.IsNegative() {
		return "-" + s
	}
	return s
}

// Categories renders the category set with its type and keywords.
func Categories(infos []model.CategoryInfo) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Type", "Keywords").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, c := range infos {
		kw := strings.Join(c.Keywords, ", ")
		if kw == "" {
			kw = "-"
		}
		t.Row(string(c.Name), string(c.Type), kw)
	}
	return t.Render()
}

type jsonTransaction struct {
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Type        string   `json:"type"`
	Balance     *float64 `json:"balance,omitempty"`
	Category    string   `json:"category"`
}

// WriteJSON writes parsed transactions as an indented JSON array.
func WriteJSON(w io.Writer, parsed []model.ParsedTransaction, cat Categorizer) error {
	out := make([]jsonTransaction, len(parsed))
	for i, p := range parsed {
		amount, _ := p.Amount.Float64()
		jt := jsonTransaction{
			Date:        p.Date,
			Description: p.Description,
			Amount:      amount,
			Type:        string(p.Direction),
			Category:    string(cat.Guess(p.Description)),
		}
		if p.Balance != nil {
			b, _ := p.Balance.Float64()
			jt.Balance = &b
		}
		out[i] = jt
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
