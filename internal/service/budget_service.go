package service

import (
	"context"

	"github.com/finvola/budget-gateway/internal/domain"
	"github.com/finvola/budget-gateway/internal/schema"
	"github.com/shopspring/decimal"
)

// BudgetService derives summary views from validated budget month data.
type BudgetService struct {
	ledger domain.LedgerGateway
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(ledger domain.LedgerGateway) *BudgetService {
	return &BudgetService{ledger: ledger}
}

// CategoryBudget is the budget-remaining view for one expense category,
// amounts in decimal major units.
type CategoryBudget struct {
	CategoryID   string
	CategoryName string
	Budgeted     decimal.Decimal
	Spent        decimal.Decimal
	Balance      decimal.Decimal
}

// GetCategoryBudget locates a category by case-insensitive name in the given
// month and returns its budgeted/spent/balance triple. A name matching only
// an income-variant category returns ErrCategoryNotExpense, kept distinct
// from ErrCategoryNotFound.
func (s *BudgetService) GetCategoryBudget(ctx context.Context, month, name string) (*CategoryBudget, error) {
	bm, err := s.fetchBudgetMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	category, found := bm.FindCategoryByName(name)
	if !found {
		return nil, domain.ErrCategoryNotFound
	}

	expense, ok := category.(domain.ExpenseCategory)
	if !ok {
		return nil, domain.ErrCategoryNotExpense
	}

	return &CategoryBudget{
		CategoryID:   expense.ID,
		CategoryName: expense.Name,
		Budgeted:     domain.IntegerToAmount(expense.Budgeted),
		Spent:        domain.IntegerToAmount(expense.Spent),
		Balance:      domain.IntegerToAmount(expense.Balance),
	}, nil
}

// GetCategoryGroups returns the grouped category structure as organized
// upstream, independent of any month. Group and category order is preserved
// exactly as the ledger returned it.
func (s *BudgetService) GetCategoryGroups(ctx context.Context) ([]domain.CategoryGroup, error) {
	raw, err := s.ledger.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return schema.DecodeCategoryGroups(raw)
}

// GetCategories returns the flat category-info projection for the given
// month, preserving group-then-category order.
func (s *BudgetService) GetCategories(ctx context.Context, month string) ([]domain.CategoryInfo, error) {
	bm, err := s.fetchBudgetMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	return bm.ProjectCategories(), nil
}

func (s *BudgetService) fetchBudgetMonth(ctx context.Context, month string) (*domain.BudgetMonth, error) {
	raw, err := s.ledger.BudgetMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	return schema.DecodeBudgetMonth(raw)
}
