package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies ledger entries.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "D"
	KindWithdrawal TransactionKind = "W"
	// KindInterest appears only on statement rows; interest credits are
	// synthesized at statement time and never stored in the ledger.
	KindInterest TransactionKind = "I"
)

// Transaction is one posted ledger entry. Immutable once admitted.
type Transaction struct {
	Date      time.Time // calendar day, no time component
	ID        string    // "<YYYYMMDD>-<NN>", assigned by the engine
	AccountID string    // matched case-insensitively
	Kind      TransactionKind
	Amount    decimal.Decimal // always positive
}

// Signed returns the amount with its balance effect applied: deposits
// positive, withdrawals negative.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// DateOnly drops the time-of-day component, anchoring the day in UTC.
// Date equality throughout the ledger is calendar-day equality.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
