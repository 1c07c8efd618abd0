package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BudgetMonth is the aggregate budgeting state for one calendar month.
// Totals stay in integer minor units until they cross the response boundary.
// Instances are request-scoped snapshots; nothing holds onto them.
type BudgetMonth struct {
	Month              string
	IncomeAvailable    int64
	LastMonthOverspent int64
	ForNextMonth       int64
	TotalBudgeted      int64
	ToBudget           int64
	FromLastMonth      int64
	TotalIncome        int64
	TotalSpent         int64
	TotalBalance       int64
	CategoryGroups     []CategoryGroup
}

// FindCategoryByName scans category groups in their given order, and
// categories within each group in their given order, returning the first
// category whose name matches case-insensitively. Duplicate names across
// groups resolve to the first encountered, nothing smarter.
func (bm *BudgetMonth) FindCategoryByName(name string) (Category, bool) {
	for _, group := range bm.CategoryGroups {
		for _, category := range group.Categories {
			if strings.EqualFold(category.CategoryName(), name) {
				return category, true
			}
		}
	}
	return nil, false
}

// CategoryInfo is the per-category projection emitted by ProjectCategories,
// again a two-variant sum mirroring the category it came from.
type CategoryInfo interface {
	isCategoryInfo()
}

// ExpenseCategoryInfo projects an expense category to its remaining balance.
type ExpenseCategoryInfo struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

// IncomeCategoryInfo projects an income category to its received total.
type IncomeCategoryInfo struct {
	ID       string
	Name     string
	Received decimal.Decimal
}

func (ExpenseCategoryInfo) isCategoryInfo() {}
func (IncomeCategoryInfo) isCategoryInfo()  {}

// ProjectCategories flattens all groups into one sequence, preserving
// group-then-category order. Duplicate ids or names are kept as-is; this is
// a map+flatten, not a set. Amounts are converted to decimal on the way out.
func (bm *BudgetMonth) ProjectCategories() []CategoryInfo {
	total := 0
	for _, group := range bm.CategoryGroups {
		total += len(group.Categories)
	}

	infos := make([]CategoryInfo, 0, total)
	for _, group := range bm.CategoryGroups {
		for _, category := range group.Categories {
			switch c := category.(type) {
			case ExpenseCategory:
				infos = append(infos, ExpenseCategoryInfo{
					ID:      c.ID,
					Name:    c.Name,
					Balance: IntegerToAmount(c.Balance),
				})
			case IncomeCategory:
				infos = append(infos, IncomeCategoryInfo{
					ID:       c.ID,
					Name:     c.Name,
					Received: IntegerToAmount(c.Received),
				})
			default:
				panic(fmt.Sprintf("unhandled category variant %T", category))
			}
		}
	}
	return infos
}
