// Package ledger holds posted transactions in memory for the process
// lifetime.
package ledger

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/awesomegic/gicbank/internal/model"
)

// Store is the append-only transaction ledger. Account IDs match
// case-insensitively. The store is safe for concurrent use on its own;
// atomicity across a read-history-then-write admission belongs to the
// engine.
type Store struct {
	mu   sync.RWMutex
	txns []model.Transaction
}

// NewStore creates an empty ledger.
func NewStore() *Store {
	return &Store{}
}

// Add appends a transaction. All business validation happens before this
// point; Add itself cannot fail.
func (s *Store) Add(txn model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txns = append(s.txns, txn)
}

// ForAccount returns the account's transactions ordered ascending by
// (date, transaction ID). Same-day IDs are built to sort in posting order,
// so this ordering is chronological and deterministic.
func (s *Store) ForAccount(accountID string) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.Transaction
	for _, t := range s.txns {
		if strings.EqualFold(t.AccountID, accountID) {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// OnDate returns the account's transactions posted on that exact calendar
// day, in insertion order. Used only to derive the next same-day sequence
// number.
func (s *Store) OnDate(accountID string, day time.Time) []model.Transaction {
	day = model.DateOnly(day)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.Transaction
	for _, t := range s.txns {
		if strings.EqualFold(t.AccountID, accountID) && model.DateOnly(t.Date).Equal(day) {
			result = append(result, t)
		}
	}
	return result
}
