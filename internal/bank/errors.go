package bank

import "errors"

// Domain errors surfaced to callers. All are recoverable; the engine never
// panics for expected business conditions.
var (
	// ErrFirstWithdrawal rejects a withdrawal that would become the
	// account's chronologically first transaction, including a backdated
	// withdrawal inserted before all existing history.
	ErrFirstWithdrawal = errors.New("first transaction cannot be a withdrawal")

	// ErrNegativeBalance rejects a transaction whose admission would drive
	// the replayed running balance below zero at any point.
	ErrNegativeBalance = errors.New("transaction would cause account balance to go negative")

	// ErrAccountNotFound is returned for a statement over an account with
	// no transaction history at all. An account with history but no
	// activity in the requested month yields an empty statement instead.
	ErrAccountNotFound = errors.New("account not found")
)
