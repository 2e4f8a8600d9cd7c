// Package bank implements the ledger computation engine: transaction
// admission under solvency rules, interest-rule maintenance, and monthly
// statement generation. The engine holds no entity state of its own; it
// computes over the transaction ledger and the interest rule store.
package bank

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/id"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/awesomegic/gicbank/internal/model"
	"github.com/awesomegic/gicbank/internal/request"
	"github.com/awesomegic/gicbank/internal/rules"
)

// Service orchestrates the transaction ledger and the interest rule store.
// mu serializes admissions: each one reads the account's full history and
// then writes, which must happen as one atomic unit.
type Service struct {
	mu     sync.Mutex
	ledger *ledger.Store
	rules  *rules.Store
}

// NewService creates an engine over the given collaborators.
func NewService(ledgerStore *ledger.Store, ruleStore *rules.Store) *Service {
	return &Service{ledger: ledgerStore, rules: ruleStore}
}

// PostTransaction admits a deposit or withdrawal, assigns its transaction
// ID, and returns the stored transaction.
//
// A transaction may be dated earlier than existing history, so solvency
// cannot be checked against the current tail balance alone. The account's
// full history plus the candidate is replayed in (date, ID) order: the
// first entry of the replay must not be a withdrawal, and the running
// balance must never go negative.
func (s *Service) PostTransaction(req request.Transaction) (txn model.Transaction, err error) {
	defer recoverToError(&err)

	if err := req.Validate(); err != nil {
		return model.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	day := model.DateOnly(req.Date)
	seq := len(s.ledger.OnDate(req.AccountID, day)) + 1
	txn = model.Transaction{
		Date:      day,
		ID:        id.FormatTransactionID(day, seq),
		AccountID: req.AccountID,
		Kind:      req.Kind,
		Amount:    req.Amount,
	}

	timeline := append(s.ledger.ForAccount(req.AccountID), txn)
	sortTimeline(timeline)

	if timeline[0].Kind == model.KindWithdrawal {
		return model.Transaction{}, ErrFirstWithdrawal
	}
	balance := decimal.Zero
	for _, t := range timeline {
		balance = balance.Add(t.Signed())
		if balance.IsNegative() {
			return model.Transaction{}, ErrNegativeBalance
		}
	}

	s.ledger.Add(txn)
	return txn, nil
}

// PostInterestRule validates the rate and inserts or replaces the rule for
// its effective date.
func (s *Service) PostInterestRule(req request.InterestRule) (err error) {
	defer recoverToError(&err)

	if err := req.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules.Upsert(model.InterestRule{
		Date:        model.DateOnly(req.Date),
		RuleID:      req.RuleID,
		RatePercent: req.RatePercent,
	})
	return nil
}

// Rules lists every interest rule ordered ascending by effective date.
func (s *Service) Rules() []model.InterestRule {
	return s.rules.All()
}

func sortTimeline(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].ID < txns[j].ID
	})
}

// recoverToError converts an unexpected panic into a plain failure so a
// collaborator fault cannot crash the caller.
func recoverToError(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("internal ledger fault: %v", r)
	}
}
