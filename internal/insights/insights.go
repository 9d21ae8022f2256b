// Package insights derives summaries from the ledger: running totals,
// top spending category, daily spending spikes, and monthly goal
// progress. Everything here is a pure function recomputed in full on
// each call; the dataset is small and local, so incremental aggregation
// would be complexity without payoff.
package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/joshsymonds/budget-friendly/internal/model"
)

// Totals holds the signed aggregate of the ledger.
type Totals struct {
	Income  float64
	Expense float64
	Balance float64
}

// ComputeTotals sums income and expense amounts; balance is their
// difference.
func ComputeTotals(txns []model.Transaction) Totals {
	var t Totals
	for _, txn := range txns {
		switch txn.Type {
		case model.TypeIncome:
			t.Income += txn.Amount
		case model.TypeExpense:
			t.Expense += txn.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// CategoryTotal is an expense sum for one category bucket.
type CategoryTotal struct {
	Name   string
	Amount float64
}

// Label renders the bucket as shown in the insights panel.
func (c CategoryTotal) Label() string {
	return fmt.Sprintf("%s (%.2f)", c.Name, c.Amount)
}

// uncategorized is the fallback bucket for expenses with no category.
const uncategorized = "Uncategorized"

// TopCategory groups expenses by category and returns the bucket with
// the largest sum. Ties go to whichever bucket first appeared in ledger
// order.
func TopCategory(txns []model.Transaction) (CategoryTotal, bool) {
	sums := make(map[string]float64)
	var order []string

	for _, txn := range txns {
		if txn.Type != model.TypeExpense {
			continue
		}
		name := txn.Category
		if name == "" {
			name = uncategorized
		}
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += txn.Amount
	}

	if len(order) == 0 {
		return CategoryTotal{}, false
	}

	top := CategoryTotal{Name: order[0], Amount: sums[order[0]]}
	for _, name := range order[1:] {
		if sums[name] > top.Amount {
			top = CategoryTotal{Name: name, Amount: sums[name]}
		}
	}
	return top, true
}

// Spike describes a day whose expense total exceeds three times the
// historical daily mean.
type Spike struct {
	Today     float64
	DailyMean float64
}

// Message renders the spike warning.
func (s Spike) Message() string {
	return fmt.Sprintf("Spike detected: today's spending %.2f is unusually high.", s.Today)
}

// DetectSpike groups expense amounts by calendar day and flags a spike
// when today's total exceeds 3x the mean across days that have at least
// one expense. Days with no recorded expenses do not dilute the mean.
func DetectSpike(txns []model.Transaction, today string) (Spike, bool) {
	daily := make(map[string]float64)
	for _, txn := range txns {
		if txn.Type != model.TypeExpense {
			continue
		}
		day := txn.Day()
		if day == "" {
			continue
		}
		daily[day] += txn.Amount
	}

	if len(daily) == 0 {
		return Spike{}, false
	}

	var total float64
	for _, v := range daily {
		total += v
	}
	mean := total / float64(len(daily))
	todayAmt := daily[today]

	spike := Spike{Today: todayAmt, DailyMean: mean}
	return spike, mean > 0 && todayAmt > mean*3
}

// GoalProgress describes where the current month stands against the
// configured monthly goal.
type GoalProgress struct {
	Set        bool
	Goal       float64
	MonthTotal float64
	Percent    int
}

// Meta renders the goal line, e.g. "450.00 of 500.00 (90%)".
func (g GoalProgress) Meta() string {
	if !g.Set {
		return "No goal set"
	}
	return fmt.Sprintf("%.2f of %.2f (%d%%)", g.MonthTotal, g.Goal, g.Percent)
}

// Motivation renders the under/over goal message, or "" when no goal is set.
func (g GoalProgress) Motivation() string {
	if !g.Set {
		return ""
	}
	if g.MonthTotal <= g.Goal {
		return fmt.Sprintf("Great job: you're %.2f under your goal this month.", g.Goal-g.MonthTotal)
	}
	return fmt.Sprintf("You've exceeded your monthly goal by %.2f.", g.MonthTotal-g.Goal)
}

// ComputeGoalProgress sums this month's expenses against the goal. The
// month is the calendar month of now; a zero goal means no goal is set.
func ComputeGoalProgress(txns []model.Transaction, goal float64, month string) GoalProgress {
	var monthTotal float64
	for _, txn := range txns {
		if txn.Type == model.TypeExpense && txn.Month() == month {
			monthTotal += txn.Amount
		}
	}

	if goal <= 0 {
		return GoalProgress{MonthTotal: monthTotal}
	}

	pct := int(math.Min(100, math.Round(monthTotal/goal*100)))
	return GoalProgress{
		Set:        true,
		Goal:       goal,
		MonthTotal: monthTotal,
		Percent:    pct,
	}
}

// Summary is everything the presentation layer renders after a mutation.
type Summary struct {
	Totals      Totals
	Top         CategoryTotal
	HasTop      bool
	Goal        GoalProgress
	Spiked      bool
	Spike       Spike
	Warning     string
	Motivation  string
	TopLabel    string
}

// BuildSummary computes the full derived view of the ledger as of now.
//
// There is a single warning slot. The spike warning is written first;
// the goal near-limit (90-99%) and exceeded (>=100%) alerts are
// evaluated afterwards and take precedence when both fire.
func BuildSummary(txns []model.Transaction, settings model.Settings, now time.Time) Summary {
	sum := Summary{
		Totals: ComputeTotals(txns),
		Goal:   ComputeGoalProgress(txns, settings.MonthlyGoal, now.Format("2006-01")),
	}

	sum.Top, sum.HasTop = TopCategory(txns)
	if sum.HasTop {
		sum.TopLabel = "Top category: " + sum.Top.Label()
	} else {
		sum.TopLabel = "Top category: —"
	}

	sum.Spike, sum.Spiked = DetectSpike(txns, now.Format(model.DateLayout))
	if sum.Spiked {
		sum.Warning = sum.Spike.Message()
	}
	if sum.Goal.Set {
		switch {
		case sum.Goal.Percent >= 100:
			sum.Warning = "Alert: You have exceeded your monthly budget."
		case sum.Goal.Percent >= 90:
			sum.Warning = "Alert: You are close to your monthly budget!"
		}
	}

	sum.Motivation = sum.Goal.Motivation()
	return sum
}
