package domain

import "errors"

// Domain errors
var (
	// ErrCategoryNotFound means the requested category name matched nothing
	// in any group of the budget month.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNotExpense means the name resolved only to an income-variant
	// category, which has no budgeted/spent/balance triple. Kept distinct
	// from ErrCategoryNotFound so callers can tell the two apart even though
	// both surface as a 404.
	ErrCategoryNotExpense = errors.New("category is not an expense category")

	// ErrLedgerUnavailable means the call to the upstream ledger itself
	// failed (network, auth, or a non-2xx response). Never retried.
	ErrLedgerUnavailable = errors.New("ledger service unavailable")
)
