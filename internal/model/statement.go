package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow is one line of a monthly statement: either a replayed
// transaction with its post-transaction running balance, or the single
// synthetic month-end interest credit (blank ID, KindInterest).
type StatementRow struct {
	Date    time.Time
	ID      string
	Kind    TransactionKind
	Amount  decimal.Decimal
	Balance decimal.Decimal
}
