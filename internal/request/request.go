// Package request defines the typed requests accepted by the ledger engine
// and the field-level validation applied to them. Cross-entity business
// rules (solvency, ordering) are the engine's responsibility, not this
// package's.
package request

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/model"
)

// minYear bounds request dates to plausible calendar years.
const minYear = 1900

var oneHundred = decimal.NewFromInt(100)

// FieldError reports a single malformed or out-of-range request field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Transaction asks the engine to post a deposit or withdrawal.
type Transaction struct {
	Date      time.Time
	AccountID string
	Kind      model.TransactionKind
	Amount    decimal.Decimal
}

// Validate checks primitive field constraints.
func (r Transaction) Validate() error {
	if r.Date.IsZero() || r.Date.Year() < minYear {
		return &FieldError{Field: "date", Reason: "must be a valid date"}
	}
	if strings.TrimSpace(r.AccountID) == "" {
		return &FieldError{Field: "account", Reason: "cannot be empty"}
	}
	if r.Kind != model.KindDeposit && r.Kind != model.KindWithdrawal {
		return &FieldError{Field: "type", Reason: "must be D (deposit) or W (withdrawal)"}
	}
	if !r.Amount.IsPositive() {
		return &FieldError{Field: "amount", Reason: "must be greater than zero"}
	}
	if scaled := r.Amount.Mul(oneHundred); !scaled.Equal(scaled.Floor()) {
		return &FieldError{Field: "amount", Reason: "cannot have more than two decimal places"}
	}
	return nil
}

// InterestRule asks the engine to insert or replace an interest rule.
type InterestRule struct {
	Date        time.Time
	RuleID      string
	RatePercent decimal.Decimal
}

// Validate checks primitive field constraints.
func (r InterestRule) Validate() error {
	if r.Date.IsZero() || r.Date.Year() < minYear {
		return &FieldError{Field: "date", Reason: "must be a valid date"}
	}
	if strings.TrimSpace(r.RuleID) == "" {
		return &FieldError{Field: "rule id", Reason: "cannot be empty"}
	}
	if !r.RatePercent.IsPositive() || r.RatePercent.GreaterThanOrEqual(oneHundred) {
		return &FieldError{Field: "rate", Reason: "must be greater than 0 and less than 100"}
	}
	return nil
}

// Statement asks the engine for an account's monthly statement.
type Statement struct {
	AccountID string
	Year      int
	Month     int
}

// Validate checks primitive field constraints.
func (r Statement) Validate() error {
	if strings.TrimSpace(r.AccountID) == "" {
		return &FieldError{Field: "account", Reason: "cannot be empty"}
	}
	if r.Year < minYear {
		return &FieldError{Field: "year", Reason: "must be 1900 or later"}
	}
	if r.Month < 1 || r.Month > 12 {
		return &FieldError{Field: "month", Reason: "must be between 1 and 12"}
	}
	return nil
}
