package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRule sets the annual interest rate effective from Date onward,
// until superseded by a rule with a later effective date. At most one rule
// exists per calendar date; rule identity is the date, not the rule ID.
type InterestRule struct {
	Date        time.Time
	RuleID      string          // opaque label, not required to be unique
	RatePercent decimal.Decimal // annual rate, strictly between 0 and 100
}
