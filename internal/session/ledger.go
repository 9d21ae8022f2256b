package session

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/joshsymonds/budget-friendly/internal/common"
	"github.com/joshsymonds/budget-friendly/internal/model"
	"github.com/joshsymonds/budget-friendly/internal/storage"
)

// TransactionInput carries the user-supplied fields for an add or update.
type TransactionInput struct {
	Description string
	Amount      float64
	Type        model.TransactionType
	Date        string // empty means today
	Category    string
	Color       string
}

// normalize validates the input and returns the fields as they will be
// stored. The stored amount is always the absolute value; the sign the
// user typed carries no information beyond what Type already says.
func (in TransactionInput) normalize() (TransactionInput, error) {
	out := in
	out.Description = strings.TrimSpace(in.Description)
	if out.Description == "" {
		return out, common.ErrEmptyDescription
	}

	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount == 0 {
		return out, common.ErrInvalidAmount
	}
	out.Amount = math.Abs(in.Amount)

	if !in.Type.Valid() {
		return out, fmt.Errorf("%w: %q", common.ErrInvalidType, in.Type)
	}

	if out.Date == "" {
		out.Date = model.Today()
	} else if err := model.ValidateDate(out.Date); err != nil {
		return out, err
	}

	out.Category = strings.TrimSpace(in.Category)
	if out.Category == "" {
		// A color without a category is meaningless.
		out.Color = ""
	}
	return out, nil
}

// Transactions returns the current ledger in insertion order (oldest
// first). Reversing for display is a presentation concern.
func (s *Session) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Categories returns the current profile's categories in creation order.
func (s *Session) Categories() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Settings returns the current profile's settings.
func (s *Session) Settings() model.Settings {
	return s.settings
}

// AddTransaction validates the input, appends a new transaction to the
// ledger, auto-registers its category, and persists.
func (s *Session) AddTransaction(ctx context.Context, in TransactionInput) (model.Transaction, error) {
	if err := s.requireProfile(); err != nil {
		return model.Transaction{}, err
	}
	in, err := in.normalize()
	if err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		ID:          uuid.NewString(),
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Date:        in.Date,
		Category:    in.Category,
		Color:       in.Color,
	}

	if in.Category != "" {
		if err := s.EnsureCategory(ctx, in.Category, in.Color); err != nil {
			return model.Transaction{}, err
		}
	}

	s.transactions = append(s.transactions, txn)
	if err := s.persistTransactions(ctx); err != nil {
		return model.Transaction{}, err
	}

	slog.Debug("added transaction", "id", txn.ID, "type", txn.Type, "amount", txn.Amount)
	s.notifyRefresh()
	return txn, nil
}

// UpdateTransaction replaces all mutable fields of an existing
// transaction after running the same validation as AddTransaction.
func (s *Session) UpdateTransaction(ctx context.Context, id string, in TransactionInput) error {
	if err := s.requireProfile(); err != nil {
		return err
	}
	in, err := in.normalize()
	if err != nil {
		return err
	}

	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		s.transactions[i].Description = in.Description
		s.transactions[i].Amount = in.Amount
		s.transactions[i].Type = in.Type
		s.transactions[i].Date = in.Date
		s.transactions[i].Category = in.Category
		s.transactions[i].Color = in.Color
		if err := s.persistTransactions(ctx); err != nil {
			return err
		}
		s.notifyRefresh()
		return nil
	}
	return fmt.Errorf("%w: %s", common.ErrTransactionNotFound, id)
}

// RemoveTransaction deletes the matching ledger entry.
func (s *Session) RemoveTransaction(ctx context.Context, id string) error {
	if err := s.requireProfile(); err != nil {
		return err
	}
	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
		if err := s.persistTransactions(ctx); err != nil {
			return err
		}
		s.notifyRefresh()
		return nil
	}
	return fmt.Errorf("%w: %s", common.ErrTransactionNotFound, id)
}

// EnsureCategory registers a category the first time its name is seen.
// The lookup is case-insensitive and the first color wins; re-use with a
// different color never updates the existing entry.
func (s *Session) EnsureCategory(ctx context.Context, name, color string) error {
	if err := s.requireProfile(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return nil
		}
	}

	s.categories = append(s.categories, model.Category{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	})
	if err := s.persistCategories(ctx); err != nil {
		return err
	}

	slog.Debug("registered category", "name", name)
	return nil
}

// SetMonthlyGoal updates the monthly expense ceiling. Zero clears the goal.
func (s *Session) SetMonthlyGoal(ctx context.Context, goal float64) error {
	if err := s.requireProfile(); err != nil {
		return err
	}
	if math.IsNaN(goal) || math.IsInf(goal, 0) {
		return common.ErrInvalidAmount
	}
	if goal < 0 {
		return common.ErrNegativeGoal
	}

	s.settings.MonthlyGoal = goal
	if err := s.persistSettings(ctx); err != nil {
		return err
	}
	s.notifyRefresh()
	return nil
}

func (s *Session) persistTransactions(ctx context.Context) error {
	return s.store.Set(ctx, storage.ProfileTransactionsKey(s.currentID), s.transactions)
}

func (s *Session) persistCategories(ctx context.Context) error {
	return s.store.Set(ctx, storage.ProfileCategoriesKey(s.currentID), s.categories)
}

func (s *Session) persistSettings(ctx context.Context) error {
	return s.store.Set(ctx, storage.ProfileSettingsKey(s.currentID), s.settings)
}
