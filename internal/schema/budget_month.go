package schema

import (
	"encoding/json"
	"fmt"

	"github.com/finvola/budget-gateway/internal/domain"
)

type rawBudgetMonth struct {
	Month              *string            `json:"month" validate:"required,monthshape"`
	IncomeAvailable    *int64             `json:"incomeAvailable" validate:"required"`
	LastMonthOverspent *int64             `json:"lastMonthOverspent" validate:"required"`
	ForNextMonth       *int64             `json:"forNextMonth" validate:"required"`
	TotalBudgeted      *int64             `json:"totalBudgeted" validate:"required"`
	ToBudget           *int64             `json:"toBudget" validate:"required"`
	FromLastMonth      *int64             `json:"fromLastMonth" validate:"required"`
	TotalIncome        *int64             `json:"totalIncome" validate:"required"`
	TotalSpent         *int64             `json:"totalSpent" validate:"required"`
	TotalBalance       *int64             `json:"totalBalance" validate:"required"`
	CategoryGroups     []rawCategoryGroup `json:"categoryGroups" validate:"required"`
}

type rawCategoryGroup struct {
	ID         *string       `json:"id" validate:"required"`
	Name       *string       `json:"name" validate:"required"`
	Categories []rawCategory `json:"categories" validate:"required"`
}

// rawCategory holds the union of both variant shapes. Which fields are
// required is decided by the is_income discriminator alone; fields belonging
// to the other variant are ignored, not rejected.
type rawCategory struct {
	ID       *string `json:"id" validate:"required"`
	Name     *string `json:"name" validate:"required"`
	IsIncome *bool   `json:"is_income" validate:"required"`
	Hidden   *bool   `json:"hidden" validate:"required"`
	Budgeted *int64  `json:"budgeted"`
	Spent    *int64  `json:"spent"`
	Balance  *int64  `json:"balance"`
	Received *int64  `json:"received"`
}

// DecodeBudgetMonth validates a raw upstream budget month, recursing into
// every category group and category. A single malformed category anywhere
// fails the whole month; there is no partial acceptance.
func DecodeBudgetMonth(raw json.RawMessage) (*domain.BudgetMonth, error) {
	var rbm rawBudgetMonth
	if err := json.Unmarshal(raw, &rbm); err != nil {
		return nil, &ShapeError{Entity: "budget month", Issues: decodeIssue("budgetMonth", err)}
	}

	issues := structIssues("", rbm)

	groups := make([]domain.CategoryGroup, 0, len(rbm.CategoryGroups))
	for i, rg := range rbm.CategoryGroups {
		group, groupIssues := decodeCategoryGroup(fmt.Sprintf("categoryGroups[%d]", i), rg)
		if len(groupIssues) > 0 {
			issues = append(issues, groupIssues...)
			continue
		}
		groups = append(groups, group)
	}

	if len(issues) > 0 {
		return nil, &ShapeError{Entity: "budget month", Issues: issues}
	}

	return &domain.BudgetMonth{
		Month:              *rbm.Month,
		IncomeAvailable:    *rbm.IncomeAvailable,
		LastMonthOverspent: *rbm.LastMonthOverspent,
		ForNextMonth:       *rbm.ForNextMonth,
		TotalBudgeted:      *rbm.TotalBudgeted,
		ToBudget:           *rbm.ToBudget,
		FromLastMonth:      *rbm.FromLastMonth,
		TotalIncome:        *rbm.TotalIncome,
		TotalSpent:         *rbm.TotalSpent,
		TotalBalance:       *rbm.TotalBalance,
		CategoryGroups:     groups,
	}, nil
}

// DecodeCategoryGroups validates a bare category group list, as returned by
// the upstream categories endpoint. Same rules as the nested form.
func DecodeCategoryGroups(raw json.RawMessage) ([]domain.CategoryGroup, error) {
	var rawGroups []rawCategoryGroup
	if err := json.Unmarshal(raw, &rawGroups); err != nil {
		return nil, &ShapeError{Entity: "category group", Issues: decodeIssue("categoryGroups", err)}
	}

	var issues []FieldIssue
	groups := make([]domain.CategoryGroup, 0, len(rawGroups))
	for i, rg := range rawGroups {
		group, groupIssues := decodeCategoryGroup(fmt.Sprintf("categoryGroups[%d]", i), rg)
		if len(groupIssues) > 0 {
			issues = append(issues, groupIssues...)
			continue
		}
		groups = append(groups, group)
	}

	if len(issues) > 0 {
		return nil, &ShapeError{Entity: "category group", Issues: issues}
	}
	return groups, nil
}

func decodeCategoryGroup(path string, rg rawCategoryGroup) (domain.CategoryGroup, []FieldIssue) {
	issues := structIssues(path, rg)

	categories := make([]domain.Category, 0, len(rg.Categories))
	for i, rc := range rg.Categories {
		category, categoryIssues := decodeCategory(fmt.Sprintf("%s.categories[%d]", path, i), rc)
		if len(categoryIssues) > 0 {
			issues = append(issues, categoryIssues...)
			continue
		}
		categories = append(categories, category)
	}

	if len(issues) > 0 {
		return domain.CategoryGroup{}, issues
	}
	return domain.CategoryGroup{
		ID:         *rg.ID,
		Name:       *rg.Name,
		Categories: categories,
	}, nil
}

// decodeCategory dispatches on the is_income discriminator: true requires
// received, false requires the budgeted/spent/balance triple.
func decodeCategory(path string, rc rawCategory) (domain.Category, []FieldIssue) {
	issues := structIssues(path, rc)
	if rc.IsIncome == nil {
		// Cannot dispatch without the discriminator; the missing-field issue
		// is already recorded above.
		return nil, issues
	}

	if *rc.IsIncome {
		if rc.Received == nil {
			issues = append(issues, FieldIssue{Field: joinPath(path, "received"), Message: "required field is missing"})
		}
		if len(issues) > 0 {
			return nil, issues
		}
		return domain.IncomeCategory{
			ID:       *rc.ID,
			Name:     *rc.Name,
			Hidden:   *rc.Hidden,
			Received: *rc.Received,
		}, nil
	}

	if rc.Budgeted == nil {
		issues = append(issues, FieldIssue{Field: joinPath(path, "budgeted"), Message: "required field is missing"})
	}
	if rc.Spent == nil {
		issues = append(issues, FieldIssue{Field: joinPath(path, "spent"), Message: "required field is missing"})
	}
	if rc.Balance == nil {
		issues = append(issues, FieldIssue{Field: joinPath(path, "balance"), Message: "required field is missing"})
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return domain.ExpenseCategory{
		ID:       *rc.ID,
		Name:     *rc.Name,
		Hidden:   *rc.Hidden,
		Budgeted: *rc.Budgeted,
		Spent:    *rc.Spent,
		Balance:  *rc.Balance,
	}, nil
}
