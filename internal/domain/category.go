package domain

// Category is the discriminated expense/income variant as organized by the
// upstream ledger. Exactly one of the two concrete shapes applies per
// instance; the sealed interface makes the mutual exclusivity structural
// instead of a convention over optional fields.
type Category interface {
	CategoryID() string
	CategoryName() string
	CategoryHidden() bool

	isCategory()
}

// ExpenseCategory carries the budgeted/spent/balance triple, all in integer
// minor currency units as received from upstream.
type ExpenseCategory struct {
	ID       string
	Name     string
	Hidden   bool
	Budgeted int64
	Spent    int64
	Balance  int64
}

// IncomeCategory carries only the received total, in integer minor units.
type IncomeCategory struct {
	ID       string
	Name     string
	Hidden   bool
	Received int64
}

func (c ExpenseCategory) CategoryID() string   { return c.ID }
func (c ExpenseCategory) CategoryName() string { return c.Name }
func (c ExpenseCategory) CategoryHidden() bool { return c.Hidden }
func (c ExpenseCategory) isCategory()          {}

func (c IncomeCategory) CategoryID() string   { return c.ID }
func (c IncomeCategory) CategoryName() string { return c.Name }
func (c IncomeCategory) CategoryHidden() bool { return c.Hidden }
func (c IncomeCategory) isCategory()          {}

// CategoryGroup is a named, ordered collection of categories. Order is
// preserved exactly as upstream returned it; names may repeat across groups.
type CategoryGroup struct {
	ID         string
	Name       string
	Categories []Category
}
