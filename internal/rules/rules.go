// Package rules stores time-stamped interest-rate rules and resolves the
// rule in effect on a given day.
package rules

import (
	"sort"
	"sync"
	"time"

	"github.com/awesomegic/gicbank/internal/model"
)

// Store holds interest rules keyed by effective calendar date.
type Store struct {
	mu    sync.RWMutex
	rules []model.InterestRule
}

// NewStore creates an empty rule store.
func NewStore() *Store {
	return &Store{}
}

// Upsert inserts the rule, or overwrites the existing rule sharing the same
// calendar date. Date equality ignores time-of-day.
func (s *Store) Upsert(rule model.InterestRule) {
	rule.Date = model.DateOnly(rule.Date)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rules {
		if r.Date.Equal(rule.Date) {
			s.rules[i] = rule
			return
		}
	}
	s.rules = append(s.rules, rule)
}

// All returns every rule ordered ascending by effective date.
func (s *Store) All() []model.InterestRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.InterestRule, len(s.rules))
	copy(result, s.rules)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// Effective returns the rule in force on day: the one with the latest
// effective date not after it. ok is false when no rule applies yet, in
// which case no interest accrues for that day.
func (s *Store) Effective(day time.Time) (rule model.InterestRule, ok bool) {
	day = model.DateOnly(day)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rules {
		if r.Date.After(day) {
			continue
		}
		if !ok || r.Date.After(rule.Date) {
			rule = r
			ok = true
		}
	}
	return rule, ok
}
