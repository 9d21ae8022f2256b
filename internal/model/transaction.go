// Package model defines the domain types shared across the application.
package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for transaction dates (ISO-8601 calendar date).
const DateLayout = "2006-01-02"

// TransactionType indicates whether a transaction adds to or subtracts
// from the balance.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single ledger entry. Amount is stored unsigned; the
// sign is derived from Type at aggregation and display time.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	Category    string          `json:"category,omitempty"`
	Color       string          `json:"color,omitempty"`
}

// SignedAmount returns the amount negated for expenses.
func (t Transaction) SignedAmount() float64 {
	if t.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}

// Day returns the calendar-day portion of the transaction date.
func (t Transaction) Day() string {
	if len(t.Date) < 10 {
		return t.Date
	}
	return t.Date[:10]
}

// Month returns the calendar-month portion (YYYY-MM) of the transaction date.
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// Today returns the current calendar date in wire format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidateDate checks that s is a well-formed calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	return nil
}
