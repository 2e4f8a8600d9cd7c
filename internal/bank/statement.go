package bank

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/model"
	"github.com/awesomegic/gicbank/internal/request"
)

var (
	oneHundred = decimal.NewFromInt(100)
	// daysPerYear is the fixed divisor of the daily-rate approximation.
	// Leap years and the actual day count of the statement month are
	// deliberately ignored.
	daysPerYear = decimal.NewFromInt(365)
)

// Statement computes the monthly statement for an account: each in-month
// transaction with its post-transaction running balance, optionally
// followed by one synthetic month-end interest credit.
//
// Interest accrues day by day on the end-of-day balance at the rate of the
// rule in effect that day; the accumulated amount is divided by 365 and
// rounded to 2 places. No interest row is emitted when the credit rounds
// to zero.
//
// The computation is a pure fold over the ledger and rule snapshots:
// repeated calls with unchanged backing data return identical rows.
func (s *Service) Statement(req request.Statement) (rows []model.StatementRow, err error) {
	defer recoverToError(&err)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	history := s.ledger.ForAccount(req.AccountID)
	if len(history) == 0 {
		return nil, ErrAccountNotFound
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	// Balance carried into the month, and the month's own transactions.
	// history is already sorted by (date, ID).
	balance := decimal.Zero
	var inMonth []model.Transaction
	for _, t := range history {
		switch {
		case t.Date.Before(periodStart):
			balance = balance.Add(t.Signed())
		case !t.Date.After(periodEnd):
			inMonth = append(inMonth, t)
		}
	}

	rows = []model.StatementRow{}
	accrued := decimal.Zero
	next := 0
	for day := periodStart; !day.After(periodEnd); day = day.AddDate(0, 0, 1) {
		for next < len(inMonth) && inMonth[next].Date.Equal(day) {
			t := inMonth[next]
			balance = balance.Add(t.Signed())
			rows = append(rows, model.StatementRow{
				Date:    t.Date,
				ID:      t.ID,
				Kind:    t.Kind,
				Amount:  t.Amount,
				Balance: balance,
			})
			next++
		}
		if rule, ok := s.rules.Effective(day); ok {
			accrued = accrued.Add(balance.Mul(rule.RatePercent).Div(oneHundred))
		}
	}

	interest := accrued.Div(daysPerYear).Round(2)
	if interest.IsPositive() {
		balance = balance.Add(interest)
		rows = append(rows, model.StatementRow{
			Date:    periodEnd,
			Kind:    model.KindInterest,
			Amount:  interest,
			Balance: balance,
		})
	}
	return rows, nil
}
