package rules

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

func rule(ruleID string, day time.Time, rate string) model.InterestRule {
	return model.InterestRule{
		Date:        day,
		RuleID:      ruleID,
		RatePercent: decimal.RequireFromString(rate),
	}
}

func TestUpsert_ReplacesSameDate(t *testing.T) {
	s := NewStore()
	s.Upsert(rule("RULE01", date(2024, 11, 1), "1.50"))
	s.Upsert(rule("RULE02", date(2024, 11, 1), "2.00"))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "RULE02", all[0].RuleID)
	assert.True(t, all[0].RatePercent.Equal(decimal.RequireFromString("2.00")))
}

func TestUpsert_IgnoresTimeOfDay(t *testing.T) {
	s := NewStore()
	s.Upsert(rule("RULE01", date(2024, 11, 1), "1.50"))
	s.Upsert(rule("RULE02", time.Date(2024, 11, 1, 18, 0, 0, 0, time.UTC), "2.00"))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "RULE02", all[0].RuleID)
}

func TestAll_SortedAscending(t *testing.T) {
	s := NewStore()
	s.Upsert(rule("RULE03", date(2024, 12, 1), "1.80"))
	s.Upsert(rule("RULE01", date(2024, 10, 1), "2.20"))
	s.Upsert(rule("RULE02", date(2024, 11, 1), "2.50"))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "RULE01", all[0].RuleID)
	assert.Equal(t, "RULE02", all[1].RuleID)
	assert.Equal(t, "RULE03", all[2].RuleID)
}

func TestEffective(t *testing.T) {
	s := NewStore()
	s.Upsert(rule("RULE01", date(2024, 10, 1), "2.20"))
	s.Upsert(rule("RULE02", date(2024, 11, 11), "2.50"))

	// Before any rule.
	_, ok := s.Effective(date(2024, 9, 30))
	assert.False(t, ok)

	// Exactly on a rule's effective date.
	r, ok := s.Effective(date(2024, 10, 1))
	require.True(t, ok)
	assert.Equal(t, "RULE01", r.RuleID)

	// Between rules.
	r, ok = s.Effective(date(2024, 11, 10))
	require.True(t, ok)
	assert.Equal(t, "RULE01", r.RuleID)

	// After the latest rule.
	r, ok = s.Effective(date(2025, 1, 1))
	require.True(t, ok)
	assert.Equal(t, "RULE02", r.RuleID)
}

func TestEffective_Empty(t *testing.T) {
	s := NewStore()
	_, ok := s.Effective(date(2024, 11, 1))
	assert.False(t, ok)
}
