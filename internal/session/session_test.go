package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/budget-friendly/internal/common"
	"github.com/joshsymonds/budget-friendly/internal/model"
	"github.com/joshsymonds/budget-friendly/internal/storage"
)

func createTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func newTestSession(t *testing.T) *Session {
	t.Helper()

	sess := New(createTestStore(t))
	require.NoError(t, sess.Bootstrap(context.Background()))
	return sess
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("empty registry auto-creates Personal", func(t *testing.T) {
		sess := New(createTestStore(t))
		require.NoError(t, sess.Bootstrap(ctx))

		profiles := sess.Profiles()
		require.Len(t, profiles, 1)
		assert.Equal(t, "Personal", profiles[0].Name)

		current, ok := sess.Current()
		require.True(t, ok)
		assert.Equal(t, profiles[0].ID, current.ID)
	})

	t.Run("stale current pointer falls back to first profile", func(t *testing.T) {
		store := createTestStore(t)
		sess := New(store)
		require.NoError(t, sess.Bootstrap(ctx))
		first, _ := sess.Current()

		require.NoError(t, store.Set(ctx, storage.KeyCurrentProfile, "gone"))

		reloaded := New(store)
		require.NoError(t, reloaded.Bootstrap(ctx))
		current, ok := reloaded.Current()
		require.True(t, ok)
		assert.Equal(t, first.ID, current.ID)
	})
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)

	t.Run("creates and switches", func(t *testing.T) {
		profile, err := sess.CreateProfile(ctx, "  Family  ")
		require.NoError(t, err)
		assert.Equal(t, "Family", profile.Name)
		assert.NotEmpty(t, profile.ID)

		current, ok := sess.Current()
		require.True(t, ok)
		assert.Equal(t, profile.ID, current.ID)

		// New profile starts empty.
		assert.Empty(t, sess.Transactions())
		assert.Empty(t, sess.Categories())
		assert.Zero(t, sess.Settings().MonthlyGoal)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := sess.CreateProfile(ctx, "   ")
		assert.ErrorIs(t, err, common.ErrEmptyProfileName)
	})
}

func TestSwitchProfile(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)

	personal, _ := sess.Current()
	_, err := sess.AddTransaction(ctx, TransactionInput{
		Description: "Salary", Amount: 1000, Type: model.TypeIncome,
	})
	require.NoError(t, err)

	family, err := sess.CreateProfile(ctx, "Family")
	require.NoError(t, err)
	assert.Empty(t, sess.Transactions(), "new profile must not see the other ledger")

	t.Run("switching restores the other working set", func(t *testing.T) {
		require.NoError(t, sess.SwitchProfile(ctx, personal.ID))
		require.Len(t, sess.Transactions(), 1)
		assert.Equal(t, "Salary", sess.Transactions()[0].Description)

		require.NoError(t, sess.SwitchProfile(ctx, family.ID))
		assert.Empty(t, sess.Transactions())
	})

	t.Run("unknown id is an error", func(t *testing.T) {
		err := sess.SwitchProfile(ctx, "nope")
		assert.ErrorIs(t, err, common.ErrProfileNotFound)
	})
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	sess := New(store)
	require.NoError(t, sess.Bootstrap(ctx))

	first, err := sess.AddTransaction(ctx, TransactionInput{
		Description: "Salary", Amount: 1000, Type: model.TypeIncome, Date: "2024-01-05",
	})
	require.NoError(t, err)
	second, err := sess.AddTransaction(ctx, TransactionInput{
		Description: "Rent", Amount: 400, Type: model.TypeExpense, Date: "2024-01-06",
		Category: "Housing", Color: "#aa0000",
	})
	require.NoError(t, err)
	require.NoError(t, sess.SetMonthlyGoal(ctx, 500))

	// A fresh session over the same store sees an identical working set.
	reloaded := New(store)
	require.NoError(t, reloaded.Bootstrap(ctx))

	assert.Equal(t, []model.Transaction{first, second}, reloaded.Transactions())
	require.Len(t, reloaded.Categories(), 1)
	assert.Equal(t, "Housing", reloaded.Categories()[0].Name)
	assert.Equal(t, 500.0, reloaded.Settings().MonthlyGoal)
}

func TestPrefs(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)

	t.Run("theme defaults to light", func(t *testing.T) {
		assert.Equal(t, ThemeLight, sess.Theme(ctx))
	})

	t.Run("theme round trip", func(t *testing.T) {
		require.NoError(t, sess.SetTheme(ctx, ThemeDark))
		assert.Equal(t, ThemeDark, sess.Theme(ctx))
	})

	t.Run("unknown theme rejected", func(t *testing.T) {
		assert.Error(t, sess.SetTheme(ctx, "solarized"))
	})

	t.Run("onboarding flag", func(t *testing.T) {
		assert.False(t, sess.Onboarded(ctx))
		require.NoError(t, sess.MarkOnboarded(ctx))
		assert.True(t, sess.Onboarded(ctx))
	})
}
