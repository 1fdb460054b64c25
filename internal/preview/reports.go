package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/saveup-dev/saveup/internal/budget"
	"github.com/saveup-dev/saveup/internal/importlog"
)

const barWidth = 20

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func plainTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// bar draws a progress bar for a percentage, capped at full.
func bar(percent decimal.Decimal) string {
	filled := int(percent.Div(decimal.NewFromInt(100)).Mul(decimal.NewFromInt(barWidth)).IntPart())
	filled = max(0, min(filled, barWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func card(label, value string) string {
	return cardStyle.Render(labelStyle.Render(label) + "\n" + titleStyle.Render(value))
}

// Overview renders the month's totals as cards followed by a per-category
// breakdown.
func Overview(o budget.Overview, currency string) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Balance", Money(o.Balance, currency)),
		card("Monthly Income", Money(o.Income, currency)),
		card("Monthly Expenses", Money(o.Expenses, currency)),
		card("Savings Rate", o.SavingsRate.String()+"%"),
	)

	title := titleStyle.Render("Overview for " + o.Month.Format("January 2006"))
	if len(o.Categories) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, cards, "No transactions this month")
	}

	t := plainTable("Category", "Type", "Amount", "Count")
	for _, c := range o.Categories {
		t.Row(string(c.Category), string(c.Type), Money(c.Amount, currency), fmt.Sprint(c.Count))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, cards, t.Render())
}

// Budgets renders budget statuses with a usage bar.
func Budgets(statuses []budget.Status, month time.Time, currency string) string {
	title := titleStyle.Render("Budgets for " + month.Format("January 2006"))
	if len(statuses) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "No budgets configured; add a budgets section to saveup.yaml")
	}

	t := plainTable("Category", "Spent", "Budget", "Used", "", "Status")
	for _, s := range statuses {
		status := goodStyle.Render(Money(s.Remaining, currency) + " remaining")
		if s.Over() {
			status = badStyle.Render("Over budget by " + Money(s.Remaining.Neg(), currency))
		}
		t.Row(
			string(s.Category),
			Money(s.Spent, currency),
			Money(s.Limit, currency),
			s.PercentUsed.StringFixed(1)+"%",
			bar(s.PercentUsed),
			status,
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}

// Goals renders savings goals with progress bars.
func Goals(progress []budget.GoalProgress, currency string) string {
	if len(progress) == 0 {
		return "No goals configured; add a goals section to saveup.yaml"
	}

	t := plainTable("Goal", "Saved", "Target", "Progress", "", "Target date", "Per month")
	for _, p := range progress {
		due, perMonth := "-", "-"
		if !p.TargetDate.IsZero() {
			due = p.TargetDate.Format("Jan 2006")
		}
		if p.PerMonth.IsPositive() {
			perMonth = Money(p.PerMonth, currency)
		}
		if p.Reached() {
			perMonth = goodStyle.Render("reached")
		}
		t.Row(
			p.Name,
			Money(p.Saved, currency),
			Money(p.Target, currency),
			p.Percent.String()+"% complete",
			bar(p.Percent),
			due,
			perMonth,
		)
	}
	return t.Render()
}

// ImportLog renders import history, newest first.
func ImportLog(entries []importlog.Entry) string {
	if len(entries) == 0 {
		return "No imports yet"
	}

	t := plainTable("Time", "File", "Format", "Parsed", "Imported", "Duplicates", "Batch")
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		t.Row(
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			e.File,
			e.Format,
			fmt.Sprint(e.Parsed),
			fmt.Sprint(e.Imported),
			fmt.Sprint(e.Duplicates),
			e.BatchID.String()[:8],
		)
	}
	return t.Render()
}
