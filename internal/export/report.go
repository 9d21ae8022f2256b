package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/joshsymonds/budget-friendly/internal/insights"
)

// Report is the already-rendered summary handed to whatever produces
// the final document. Layout beyond this text is a presentation concern.
type Report struct {
	GeneratedAt time.Time
	ProfileName string
	Currency    string
	Summary     insights.Summary
}

// BuildReport assembles a report for the given profile and summary.
func BuildReport(profileName, currencySymbol string, sum insights.Summary, now time.Time) Report {
	return Report{
		GeneratedAt: now,
		ProfileName: profileName,
		Currency:    currencySymbol,
		Summary:     sum,
	}
}

// Render produces the plain-text report body.
func (r Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Budget report: %s\n", r.ProfileName)
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "Balance:  %s%.2f\n", r.Currency, r.Summary.Totals.Balance)
	fmt.Fprintf(&b, "Income:   %s%.2f\n", r.Currency, r.Summary.Totals.Income)
	fmt.Fprintf(&b, "Expenses: %s%.2f\n\n", r.Currency, r.Summary.Totals.Expense)

	fmt.Fprintf(&b, "%s\n", r.Summary.TopLabel)
	fmt.Fprintf(&b, "Goal: %s\n", r.Summary.Goal.Meta())

	if r.Summary.Warning != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Summary.Warning)
	}
	if r.Summary.Motivation != "" {
		fmt.Fprintf(&b, "%s\n", r.Summary.Motivation)
	}

	return b.String()
}

// ReportFilename derives the report filename from the profile name.
func ReportFilename(profileName string) string {
	return safeName(profileName) + "-report.txt"
}
