package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/finvola/budget-gateway/internal/domain"
	"github.com/finvola/budget-gateway/internal/schema"
	"github.com/finvola/budget-gateway/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BudgetHandler handles budget month HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CategoryBudgetResponse represents the budget-remaining view for a category
type CategoryBudgetResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Budgeted     string `json:"budgeted"`
	Spent        string `json:"spent"`
	Balance      string `json:"balance"`
}

// ExpenseCategoryInfoResponse represents an expense category in the list view
type ExpenseCategoryInfoResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

// IncomeCategoryInfoResponse represents an income category in the list view
type IncomeCategoryInfoResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Received string `json:"received"`
}

// CategoryListResponse represents the mixed-variant category list payload
type CategoryListResponse struct {
	Categories []any `json:"categories"`
}

// ExpenseCategoryResponse represents a full expense category in the grouped view
type ExpenseCategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Hidden   bool   `json:"hidden"`
	Budgeted string `json:"budgeted"`
	Spent    string `json:"spent"`
	Balance  string `json:"balance"`
}

// IncomeCategoryResponse represents a full income category in the grouped view
type IncomeCategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Hidden   bool   `json:"hidden"`
	Received string `json:"received"`
}

// CategoryGroupResponse represents one named group with its categories
type CategoryGroupResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Categories []any  `json:"categories"`
}

// CategoryGroupListResponse represents the grouped category payload
type CategoryGroupListResponse struct {
	CategoryGroups []CategoryGroupResponse `json:"categoryGroups"`
}

// GetCategoryBudget handles GET /api/v1/months/:month/categories/:name/budget
func (h *BudgetHandler) GetCategoryBudget(c echo.Context) error {
	month := c.Param("month")
	if !schema.ValidMonth(month) {
		return NewValidationError(c, "Invalid month, expected YYYY-MM", nil)
	}

	// Echo has already percent-decoded the path param.
	name := c.Param("name")
	if name == "" {
		return NewValidationError(c, "Invalid category name", nil)
	}

	result, err := h.budgetService.GetCategoryBudget(c.Request().Context(), month, name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, fmt.Sprintf("Category %q not found", name))
		}
		if errors.Is(err, domain.ErrCategoryNotExpense) {
			return NewNotFoundError(c, fmt.Sprintf("Category %q is an income category and carries no budget", name))
		}
		var shapeErr *schema.ShapeError
		if errors.As(err, &shapeErr) {
			log.Error().Err(err).Str("month", month).Msg("Ledger returned malformed budget month")
			return NewInternalError(c, "Invalid data received from ledger")
		}
		log.Error().Err(err).Str("month", month).Str("category", name).Msg("Failed to get category budget")
		return NewInternalError(c, "Failed to get category budget")
	}

	return c.JSON(http.StatusOK, CategoryBudgetResponse{
		CategoryID:   result.CategoryID,
		CategoryName: result.CategoryName,
		Budgeted:     result.Budgeted.StringFixed(2),
		Spent:        result.Spent.StringFixed(2),
		Balance:      result.Balance.StringFixed(2),
	})
}

// GetCategories handles GET /api/v1/months/:month/categories
func (h *BudgetHandler) GetCategories(c echo.Context) error {
	month := c.Param("month")
	if !schema.ValidMonth(month) {
		return NewValidationError(c, "Invalid month, expected YYYY-MM", nil)
	}

	infos, err := h.budgetService.GetCategories(c.Request().Context(), month)
	if err != nil {
		var shapeErr *schema.ShapeError
		if errors.As(err, &shapeErr) {
			log.Error().Err(err).Str("month", month).Msg("Ledger returned malformed budget month")
			return NewInternalError(c, "Invalid data received from ledger")
		}
		log.Error().Err(err).Str("month", month).Msg("Failed to get categories")
		return NewInternalError(c, "Failed to get categories")
	}

	return c.JSON(http.StatusOK, toCategoryListResponse(infos))
}

// GetCategoryGroups handles GET /api/v1/categories
func (h *BudgetHandler) GetCategoryGroups(c echo.Context) error {
	groups, err := h.budgetService.GetCategoryGroups(c.Request().Context())
	if err != nil {
		var shapeErr *schema.ShapeError
		if errors.As(err, &shapeErr) {
			log.Error().Err(err).Msg("Ledger returned malformed category groups")
			return NewInternalError(c, "Invalid data received from ledger")
		}
		log.Error().Err(err).Msg("Failed to get category groups")
		return NewInternalError(c, "Failed to get category groups")
	}

	resp := CategoryGroupListResponse{CategoryGroups: make([]CategoryGroupResponse, len(groups))}
	for i, group := range groups {
		categories := make([]any, 0, len(group.Categories))
		for _, category := range group.Categories {
			switch v := category.(type) {
			case domain.ExpenseCategory:
				categories = append(categories, ExpenseCategoryResponse{
					ID:       v.ID,
					Name:     v.Name,
					Hidden:   v.Hidden,
					Budgeted: domain.IntegerToAmount(v.Budgeted).StringFixed(2),
					Spent:    domain.IntegerToAmount(v.Spent).StringFixed(2),
					Balance:  domain.IntegerToAmount(v.Balance).StringFixed(2),
				})
			case domain.IncomeCategory:
				categories = append(categories, IncomeCategoryResponse{
					ID:       v.ID,
					Name:     v.Name,
					Hidden:   v.Hidden,
					Received: domain.IntegerToAmount(v.Received).StringFixed(2),
				})
			default:
				panic(fmt.Sprintf("unhandled category variant %T", category))
			}
		}
		resp.CategoryGroups[i] = CategoryGroupResponse{
			ID:         group.ID,
			Name:       group.Name,
			Categories: categories,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func toCategoryListResponse(infos []domain.CategoryInfo) CategoryListResponse {
	categories := make([]any, 0, len(infos))
	for _, info := range infos {
		switch v := info.(type) {
		case domain.ExpenseCategoryInfo:
			categories = append(categories, ExpenseCategoryInfoResponse{
				ID:      v.ID,
				Name:    v.Name,
				Balance: v.Balance.StringFixed(2),
			})
		case domain.IncomeCategoryInfo:
			categories = append(categories, IncomeCategoryInfoResponse{
				ID:       v.ID,
				Name:     v.Name,
				Received: v.Received.StringFixed(2),
			})
		default:
			panic(fmt.Sprintf("unhandled category info variant %T", info))
		}
	}
	return CategoryListResponse{Categories: categories}
}
