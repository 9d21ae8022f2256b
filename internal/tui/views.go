package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshsymonds/budget-friendly/internal/model"
)

const recentTransactionLimit = 5

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.onboarding {
		return m.onboardingView()
	}

	var sections []string

	profileName := "(no profile)"
	if current, ok := m.session.Current(); ok {
		profileName = current.Name
	}
	sections = append(sections,
		m.theme.Title.Render("Budget Friendly"),
		m.theme.Subtitle.Render("Profile: "+profileName))

	sections = append(sections, m.totalsView(), "")
	sections = append(sections, m.goalView(), "")
	sections = append(sections, m.transactionsView())
	sections = append(sections, m.insightsView())

	sections = append(sections,
		"",
		m.theme.Muted.Render("p: switch profile • t: toggle theme • q: quit"))

	if m.lastError != nil {
		sections = append(sections, m.theme.Warning.Render(m.lastError.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) totalsView() string {
	t := m.summary.Totals
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Normal.Render(fmt.Sprintf("Balance %s%.2f", m.currency, t.Balance)),
		m.theme.Muted.Render("  │  "),
		m.theme.Income.Render(fmt.Sprintf("Income %s%.2f", m.currency, t.Income)),
		m.theme.Muted.Render("  │  "),
		m.theme.Expense.Render(fmt.Sprintf("Expenses %s%.2f", m.currency, t.Expense)),
	)
}

func (m Model) goalView() string {
	goal := m.summary.Goal
	if !goal.Set {
		return m.theme.Muted.Render("No goal set")
	}
	bar := m.goalBar.ViewAs(float64(goal.Percent) / 100)
	return bar + "\n" + m.theme.Subtitle.Render(goal.Meta())
}

func (m Model) transactionsView() string {
	txns := m.session.Transactions()
	if len(txns) == 0 {
		return m.theme.Muted.Render("No transactions yet") + "\n"
	}

	var b strings.Builder
	// Most recent first, capped for the widget.
	shown := 0
	for i := len(txns) - 1; i >= 0 && shown < recentTransactionLimit; i-- {
		txn := txns[i]
		amount := fmt.Sprintf("%s%.2f", m.currency, txn.Amount)
		style := m.theme.Income
		if txn.Type == model.TypeExpense {
			amount = "-" + amount
			style = m.theme.Expense
		}
		line := fmt.Sprintf("%s  %-24s %s",
			m.theme.Muted.Render(txn.Date),
			truncate(txn.Description, 24),
			style.Render(amount))
		if txn.Category != "" {
			line += m.theme.Muted.Render("  [" + txn.Category + "]")
		}
		b.WriteString(line + "\n")
		shown++
	}
	return b.String()
}

func (m Model) insightsView() string {
	var lines []string
	lines = append(lines, m.theme.Normal.Render(m.summary.TopLabel))
	if m.summary.Warning != "" {
		lines = append(lines, m.theme.Warning.Render(m.summary.Warning))
	}
	if m.summary.Motivation != "" {
		lines = append(lines, m.theme.Positive.Render(m.summary.Motivation))
	}
	return strings.Join(lines, "\n")
}

func (m Model) onboardingView() string {
	body := strings.Join([]string{
		m.theme.Title.Render("Welcome to Budget Friendly!"),
		"",
		m.theme.Normal.Render("Create profiles, add transactions with categories and"),
		m.theme.Normal.Render("dates, set a monthly goal, and export CSV reports."),
		"",
		m.theme.Muted.Render("Press any key to continue"),
	}, "\n")
	return m.theme.Box.Render(body)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
