package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saveup-dev/saveup/internal/config"
)

// Goal is a savings target.
type Goal struct {
	Name       string
	Target     decimal.Decimal
	Saved      decimal.Decimal
	TargetDate time.Time // zero when open-ended
}

// GoalsFromConfig validates the goals section of saveup.yaml.
func GoalsFromConfig(cfgs []config.GoalConfig) ([]Goal, error) {
	var errs []error
	goals := make([]Goal, 0, len(cfgs))

	for _, c := range cfgs {
		if c.Name == "" {
			errs = append(errs, errors.New("goal without a name"))
			continue
		}
		if !c.Target.IsPositive() {
			errs = append(errs, fmt.Errorf("goal %q: target must be positive, got %s", c.Name, c.Target))
			continue
		}
		if c.Saved.IsNegative() {
			errs = append(errs, fmt.Errorf("goal %q: saved cannot be negative", c.Name))
			continue
		}

		g := Goal{Name: c.Name, Target: c.Target, Saved: c.Saved}
		if c.TargetDate != "" {
			d, err := time.Parse("2006-01-02", c.TargetDate)
			if err != nil {
				errs = append(errs, fmt.Errorf("goal %q: target_date: %w", c.Name, err))
				continue
			}
			g.TargetDate = d
		}
		goals = append(goals, g)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return goals, nil
}

// GoalProgress is a goal measured at a point in time.
type GoalProgress struct {
	Goal
	Percent    decimal.Decimal // saved over target, whole percent, may exceed 100
	Remaining  decimal.Decimal // zero once reached
	MonthsLeft int             // whole months until TargetDate; zero when none or past
	PerMonth   decimal.Decimal // saving needed each month to arrive on time
}

// Reached reports whether the target has been saved.
func (p GoalProgress) Reached() bool {
	return !p.Saved.LessThan(p.Target)
}

// Progress measures goals at now.
func Progress(goals []Goal, now time.Time) []GoalProgress {
	out := make([]GoalProgress, len(goals))
	for i, g := range goals {
		p := GoalProgress{
			Goal:    g,
			Percent: g.Saved.Div(g.Target).Mul(hundred).Round(0),
		}
		if !p.Reached() {
			p.Remaining = g.Target.Sub(g.Saved)
		}
		if !g.TargetDate.IsZero() {
			p.MonthsLeft = monthsBetween(now, g.TargetDate)
		}
		if p.MonthsLeft > 0 && p.Remaining.IsPositive() {
			p.PerMonth = p.Remaining.Div(decimal.NewFromInt(int64(p.MonthsLeft))).Round(2)
		}
		out[i] = p
	}
	return out
}

// monthsBetween counts calendar months from from's month to to's month.
func monthsBetween(from, to time.Time) int {
	from, to = MonthOf(from), MonthOf(to)
	n := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	if n < 0 {
		return 0
	}
	return n
}
