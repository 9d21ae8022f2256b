// Package tui renders the budget dashboard: totals, goal progress,
// recent transactions, and insights, refreshed after every mutation.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshsymonds/budget-friendly/internal/insights"
	"github.com/joshsymonds/budget-friendly/internal/session"
	"github.com/joshsymonds/budget-friendly/internal/tui/themes"
)

// Config carries everything the dashboard needs to run.
type Config struct {
	Session        *session.Session
	Currency       string
	ThemeName      string
	ShowOnboarding bool
}

// Model holds the dashboard state.
type Model struct {
	session    *session.Session
	theme      themes.Theme
	themeName  string
	currency   string
	keymap     KeyMap
	goalBar    progress.Model
	summary    insights.Summary
	width      int
	height     int
	onboarding bool
	quitting   bool
	lastError  error
}

func newModel(cfg Config) Model {
	theme := themes.ForName(cfg.ThemeName)
	m := Model{
		session:    cfg.Session,
		theme:      theme,
		themeName:  cfg.ThemeName,
		currency:   cfg.Currency,
		keymap:     DefaultKeyMap(),
		goalBar:    newGoalBar(theme),
		onboarding: cfg.ShowOnboarding,
	}
	m.recompute()
	return m
}

func newGoalBar(theme themes.Theme) progress.Model {
	return progress.New(
		progress.WithScaledGradient(theme.GradientLo, theme.GradientHi),
		progress.WithoutPercentage(),
	)
}

// recompute rebuilds the summary from the session working set.
func (m *Model) recompute() {
	m.summary = insights.BuildSummary(m.session.Transactions(), m.session.Settings(), time.Now())
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.goalBar.Width = min(msg.Width-8, 50)
		return m, nil

	case refreshMsg:
		m.recompute()
		return m, nil

	case profileSwitchedMsg:
		m.lastError = msg.err
		m.recompute()
		return m, nil

	case themeToggledMsg:
		if msg.err == nil {
			m.themeName = msg.name
			m.theme = themes.ForName(msg.name)
			m.goalBar = newGoalBar(m.theme)
			m.goalBar.Width = min(m.width-8, 50)
		}
		m.lastError = msg.err
		return m, nil

	case onboardedMsg:
		m.lastError = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Any key dismisses the onboarding overlay.
	if m.onboarding {
		m.onboarding = false
		return m, m.markOnboarded()
	}

	switch {
	case matches(key, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case matches(key, m.keymap.NextProfile):
		return m, m.cycleProfile()
	case matches(key, m.keymap.ToggleTheme):
		return m, m.toggleTheme()
	}
	return m, nil
}

// cycleProfile switches to the next profile in insertion order.
func (m Model) cycleProfile() tea.Cmd {
	return func() tea.Msg {
		profiles := m.session.Profiles()
		current, ok := m.session.Current()
		if !ok || len(profiles) < 2 {
			return profileSwitchedMsg{}
		}

		next := profiles[0]
		for i, p := range profiles {
			if p.ID == current.ID && i+1 < len(profiles) {
				next = profiles[i+1]
				break
			}
		}
		return profileSwitchedMsg{err: m.session.SwitchProfile(context.Background(), next.ID)}
	}
}

func (m Model) toggleTheme() tea.Cmd {
	return func() tea.Msg {
		name := session.ThemeDark
		if m.themeName == session.ThemeDark {
			name = session.ThemeLight
		}
		return themeToggledMsg{name: name, err: m.session.SetTheme(context.Background(), name)}
	}
}

func (m Model) markOnboarded() tea.Cmd {
	return func() tea.Msg {
		return onboardedMsg{err: m.session.MarkOnboarded(context.Background())}
	}
}
