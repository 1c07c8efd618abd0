package service

import (
	"context"
	"testing"

	"github.com/finvola/budget-gateway/internal/domain"
	"github.com/finvola/budget-gateway/internal/schema"
	"github.com/finvola/budget-gateway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const budgetMonthFixture = `{
	"month": "2025-06",
	"incomeAvailable": 350000,
	"lastMonthOverspent": 0,
	"forNextMonth": 0,
	"totalBudgeted": -140000,
	"toBudget": 210000,
	"fromLastMonth": 0,
	"totalIncome": 350000,
	"totalSpent": -125000,
	"totalBalance": 15000,
	"categoryGroups": [
		{"id": "g1", "name": "Fixed", "categories": [
			{"id": "c1", "name": "Rent", "is_income": false, "hidden": false, "budgeted": 100000, "spent": 100000, "balance": 0}
		]},
		{"id": "g2", "name": "Flexible", "categories": [
			{"id": "c2", "name": "Groceries", "is_income": false, "hidden": false, "budgeted": 40000, "spent": 25000, "balance": 15000}
		]},
		{"id": "g3", "name": "Income", "categories": [
			{"id": "c3", "name": "Salary", "is_income": true, "hidden": false, "received": 350000}
		]}
	]
}`

func TestBudgetService_GetCategoryBudget_Found(t *testing.T) {
	ledger := testutil.NewMockLedgerGateway()
	ledger.AddBudgetMonth("2025-06", budgetMonthFixture)
	svc := NewBudgetService(ledger)

	result, err := svc.GetCategoryBudget(context.Background(), "2025-06", "rent")

	require.NoError(t, err)
	assert.Equal(t, "c1", result.CategoryID)
	assert.Equal(t, "Rent", result.CategoryName)
	assert.Equal(t, "1000.00", result.Budgeted.StringFixed(2))
	assert.Equal(t, "1000.00", result.Spent.StringFixed(2))
	assert.Equal(t, "0.00", result.Balance.StringFixed(2))
}

func TestBudgetService_GetCategoryBudget_NotFound(t *testing.T) {
	ledger := testutil.NewMockLedgerGateway()
	ledger.AddBudgetMonth("2025-06", budgetMonthFixture)
	svc := NewBudgetService(ledger)

	_, err := svc.GetCategoryBudget(context.Background(), "2025-06", "vacation")

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestBudgetService_GetCategoryBudget_IncomeVariantIsDistinctFromNotFound(t *testing.T) {
	ledger := testutil.NewMockLedgerGateway()
	ledger.AddBudgetMonth("2025-06", budgetMonthFixture)
	svc := NewBudgetService(ledger)

	_, err := svc.GetCategoryBudget(context.Background(), "2025-06", "salary")

	assert.ErrorIs(t, err, domain.ErrCategoryNotExpense)
	assert.NotErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestBudgetService_GetCategoryBudget_InvalidUpstreamShape(t *testing.T) {
	ledger := testutil.NewMockLedgerGateway()
	ledger.AddBudgetMonth("2025-06", `{"month": "2025-06"}`)
	svc := NewBudgetService(ledger)

	_, err := svc.GetCategoryBudget(context.Background(), "2025-06", "rent")

	var shapeErr *schema.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestBudgetService_GetCategoryBudget_LedgerDown(t *testing.T) {
	ledger := testutil.NewMockLedgerGateway()
	ledger.Err = domain.ErrLedgerUnavailable
	svc := NewBudgetService(ledger)

	_, err := svc.GetCategoryBudget(context.Background(), "2025-06", "rent")

	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestBudgetService_GetCategoryGroups(t *testing.T) {
	ledger := testutil.NewMockLedgerGateway()
	ledger.GroupsJSON = []byte(`[
		{"id": "g1", "name": "Fixed", "categories": [
			{"id": "c1", "name": "Rent", "is_income": false, "hidden": false, "budgeted": 100000, "spent": 100000, "balance": 0}
		]},
		{"id": "g2", "name": "Income", "categories": [
			{"id": "c2", "name": "Salary", "is_income": true, "hidden": false, "received": 350000}
		]}
	]`)
	svc := NewBudgetService(ledger)

	groups, err := svc.GetCategoryGroups(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Fixed", groups[0].Name)
	require.Len(t, groups[0].Categories, 1)

	expense, ok := groups[0].Categories[0].(domain.ExpenseCategory)
	require.True(t, ok, "expected expense category, got %T", groups[0].Categories[0])
	assert.Equal(t, int64(100000), expense.Budgeted)

	income, ok := groups[1].Categories[0].(domain.IncomeCategory)
	require.True(t, ok, "expected income category, got %T", groups[1].Categories[0])
	assert.Equal(t, int64(350000), income.Received)
}

func TestBudgetService_GetCategoryGroups_InvalidUpstreamShape(t *testing.T) {
	ledger := testutil.NewMockLedgerGateway()
	ledger.GroupsJSON = []byte(`[{"id": "g1"}]`)
	svc := NewBudgetService(ledger)

	_, err := svc.GetCategoryGroups(context.Background())

	var shapeErr *schema.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestBudgetService_GetCategoryGroups_LedgerDown(t *testing.T) {
	ledger := testutil.NewMockLedgerGateway()
	ledger.Err = domain.ErrLedgerUnavailable
	svc := NewBudgetService(ledger)

	_, err := svc.GetCategoryGroups(context.Background())

	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestBudgetService_GetCategories(t *testing.T) {
	ledger := testutil.NewMockLedgerGateway()
	ledger.AddBudgetMonth("2025-06", budgetMonthFixture)
	svc := NewBudgetService(ledger)

	infos, err := svc.GetCategories(context.Background(), "2025-06")

	require.NoError(t, err)
	require.Len(t, infos, 3)

	expense, ok := infos[1].(domain.ExpenseCategoryInfo)
	require.True(t, ok, "expected expense info at position 1, got %T", infos[1])
	assert.Equal(t, "Groceries", expense.Name)
	assert.Equal(t, "150.00", expense.Balance.StringFixed(2))

	income, ok := infos[2].(domain.IncomeCategoryInfo)
	require.True(t, ok, "expected income info at position 2, got %T", infos[2])
	assert.Equal(t, "3500.00", income.Received.StringFixed(2))
}
