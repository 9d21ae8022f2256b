package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/joshsymonds/budget-friendly/internal/common"
	"github.com/joshsymonds/budget-friendly/internal/config"
	"github.com/joshsymonds/budget-friendly/internal/model"
	"github.com/joshsymonds/budget-friendly/internal/session"
	"github.com/joshsymonds/budget-friendly/internal/storage"
)

// initSession opens storage, runs migrations, and bootstraps the
// session. The caller owns closing the returned store.
func initSession(ctx context.Context) (*session.Session, *storage.Store, error) {
	store, err := storage.NewStore(config.DatabasePath())
	if err != nil {
		return nil, nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	sess := session.New(store)
	if err := sess.Bootstrap(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to bootstrap session: %w", err)
	}

	return sess, store, nil
}

// shortID renders the display form of a transaction id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveTransactionID matches a full id or unique short prefix against
// the current ledger.
func resolveTransactionID(sess *session.Session, ref string) (string, error) {
	var match string
	for _, txn := range sess.Transactions() {
		if txn.ID == ref {
			return txn.ID, nil
		}
		if strings.HasPrefix(txn.ID, ref) {
			if match != "" {
				return "", common.NewUserError(fmt.Sprintf("transaction id %q is ambiguous", ref), nil)
			}
			match = txn.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", common.ErrTransactionNotFound, ref)
	}
	return match, nil
}

// resolveProfileID matches a full id or unique short prefix against the
// profile registry.
func resolveProfileID(sess *session.Session, ref string) (string, error) {
	var match string
	for _, p := range sess.Profiles() {
		if p.ID == ref {
			return p.ID, nil
		}
		if strings.HasPrefix(p.ID, ref) {
			if match != "" {
				return "", common.NewUserError(fmt.Sprintf("profile id %q is ambiguous", ref), nil)
			}
			match = p.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", common.ErrProfileNotFound, ref)
	}
	return match, nil
}

// formatAmount renders an amount with the configured currency symbol
// and the sign implied by the transaction type.
func formatAmount(txn model.Transaction) string {
	symbol := config.CurrencySymbol()
	if txn.Type == model.TypeExpense {
		return fmt.Sprintf("-%s%.2f", symbol, txn.Amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, txn.Amount)
}
