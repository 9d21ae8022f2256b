package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/budget-friendly/internal/model"
	"github.com/joshsymonds/budget-friendly/internal/session"
	"github.com/joshsymonds/budget-friendly/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	store, err := storage.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	sess := session.New(store)
	require.NoError(t, sess.Bootstrap(context.Background()))

	return newModel(Config{
		Session:   sess,
		Currency:  "$",
		ThemeName: session.ThemeLight,
	})
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, updated.View(), "quitting model renders nothing")
}

func TestWindowSizeCapsGoalBar(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 50, updated.(Model).goalBar.Width)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	assert.Equal(t, 32, updated.(Model).goalBar.Width)
}

func TestRefreshRecomputesSummary(t *testing.T) {
	m := newTestModel(t)
	assert.Zero(t, m.summary.Totals.Balance)

	_, err := m.session.AddTransaction(context.Background(), session.TransactionInput{
		Description: "Salary", Amount: 1000, Type: model.TypeIncome,
	})
	require.NoError(t, err)

	updated, _ := m.Update(refreshMsg{})
	assert.Equal(t, 1000.0, updated.(Model).summary.Totals.Balance)
}

func TestToggleTheme(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyMsg("t"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(themeToggledMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	assert.Equal(t, session.ThemeDark, msg.name)

	updated, _ := m.Update(msg)
	assert.Equal(t, session.ThemeDark, updated.(Model).themeName)

	// The preference persisted through the session.
	assert.Equal(t, session.ThemeDark, m.session.Theme(context.Background()))
}

func TestCycleProfile(t *testing.T) {
	ctx := context.Background()
	m := newTestModel(t)

	t.Run("single profile is a no-op", func(t *testing.T) {
		_, cmd := m.Update(keyMsg("p"))
		require.NotNil(t, cmd)

		msg, ok := cmd().(profileSwitchedMsg)
		require.True(t, ok)
		assert.NoError(t, msg.err)
	})

	t.Run("wraps around insertion order", func(t *testing.T) {
		personal, _ := m.session.Current()
		family, err := m.session.CreateProfile(ctx, "Family")
		require.NoError(t, err)
		require.NoError(t, m.session.SwitchProfile(ctx, personal.ID))

		_, cmd := m.Update(keyMsg("p"))
		msg := cmd().(profileSwitchedMsg)
		require.NoError(t, msg.err)
		current, _ := m.session.Current()
		assert.Equal(t, family.ID, current.ID)

		// From the last profile the cycle returns to the first.
		_, cmd = m.Update(keyMsg("p"))
		msg = cmd().(profileSwitchedMsg)
		require.NoError(t, msg.err)
		current, _ = m.session.Current()
		assert.Equal(t, personal.ID, current.ID)
	})
}

func TestOnboardingOverlay(t *testing.T) {
	m := newTestModel(t)
	m.onboarding = true

	assert.Contains(t, m.View(), "Welcome to Budget Friendly!")

	// Any key dismisses the overlay, even one bound to an action.
	updated, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(onboardedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	assert.NotContains(t, updated.View(), "Welcome to Budget Friendly!")
	assert.True(t, m.session.Onboarded(context.Background()))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 24))
	assert.Equal(t, "at-the-limit", truncate("at-the-limit", 12))
	assert.Equal(t, "a very long de…", truncate("a very long description", 15))

	// Multibyte descriptions are cut on rune boundaries, never mid-rune.
	assert.Equal(t, "Café crème à v…", truncate("Café crème à volonté", 15))
	assert.Equal(t, "日本語のテキス…", truncate("日本語のテキストです", 8))
}

func TestView(t *testing.T) {
	ctx := context.Background()
	m := newTestModel(t)

	t.Run("empty profile", func(t *testing.T) {
		out := m.View()
		assert.Contains(t, out, "Budget Friendly")
		assert.Contains(t, out, "Profile: Personal")
		assert.Contains(t, out, "No transactions yet")
		assert.Contains(t, out, "No goal set")
		assert.Contains(t, out, "Top category: —")
	})

	t.Run("populated profile", func(t *testing.T) {
		_, err := m.session.AddTransaction(ctx, session.TransactionInput{
			Description: "Rent", Amount: 450, Type: model.TypeExpense, Category: "Housing",
		})
		require.NoError(t, err)
		require.NoError(t, m.session.SetMonthlyGoal(ctx, 500))

		updated, _ := m.Update(refreshMsg{})
		out := updated.View()
		assert.Contains(t, out, "Rent")
		assert.Contains(t, out, "[Housing]")
		assert.Contains(t, out, "Top category: Housing (450.00)")
		assert.Contains(t, out, "Alert: You are close to your monthly budget!")
	})
}
