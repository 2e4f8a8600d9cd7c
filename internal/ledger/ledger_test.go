package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesomegic/gicbank/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(txnID, account string, day time.Time, kind model.TransactionKind, amount string) model.Transaction {
	return model.Transaction{
		Date:      day,
		ID:        txnID,
		AccountID: account,
		Kind:      kind,
		Amount:    dec(amount),
	}
}

func TestForAccount_Ordering(t *testing.T) {
	s := NewStore()
	// Insert out of chronological order.
	s.Add(txn("20241110-01", "A1", date(2024, 11, 10), model.KindWithdrawal, "10.00"))
	s.Add(txn("20241101-02", "A1", date(2024, 11, 1), model.KindDeposit, "50.00"))
	s.Add(txn("20241101-01", "A1", date(2024, 11, 1), model.KindDeposit, "250.00"))

	got := s.ForAccount("A1")
	require.Len(t, got, 3)
	assert.Equal(t, "20241101-01", got[0].ID)
	assert.Equal(t, "20241101-02", got[1].ID)
	assert.Equal(t, "20241110-01", got[2].ID)
}

func TestForAccount_CaseInsensitive(t *testing.T) {
	s := NewStore()
	s.Add(txn("20241101-01", "Acct1", date(2024, 11, 1), model.KindDeposit, "100.00"))

	assert.Len(t, s.ForAccount("ACCT1"), 1)
	assert.Len(t, s.ForAccount("acct1"), 1)
	assert.Empty(t, s.ForAccount("other"))
}

func TestOnDate(t *testing.T) {
	s := NewStore()
	s.Add(txn("20241101-01", "A1", date(2024, 11, 1), model.KindDeposit, "100.00"))
	s.Add(txn("20241101-02", "A1", date(2024, 11, 1), model.KindDeposit, "20.00"))
	s.Add(txn("20241102-01", "A1", date(2024, 11, 2), model.KindDeposit, "30.00"))
	s.Add(txn("20241101-01", "B2", date(2024, 11, 1), model.KindDeposit, "40.00"))

	assert.Len(t, s.OnDate("A1", date(2024, 11, 1)), 2)
	assert.Len(t, s.OnDate("A1", date(2024, 11, 2)), 1)
	assert.Empty(t, s.OnDate("A1", date(2024, 11, 3)))
}

func TestOnDate_IgnoresTimeOfDay(t *testing.T) {
	s := NewStore()
	noon := time.Date(2024, 11, 1, 12, 30, 0, 0, time.UTC)
	s.Add(txn("20241101-01", "A1", noon, model.KindDeposit, "100.00"))

	assert.Len(t, s.OnDate("A1", date(2024, 11, 1)), 1)
}
