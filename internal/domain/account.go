package domain

// Account is an immutable snapshot of an upstream ledger account. It is
// re-fetched on every request and never mutated locally. Balance is in
// integer minor units.
type Account struct {
	ID        string
	Name      string
	Type      string
	Balance   int64
	OffBudget bool
	Closed    bool
}
