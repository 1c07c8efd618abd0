package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, accountHandler *AccountHandler, budgetHandler *BudgetHandler, transactionHandler *TransactionHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Account routes
	api.GET("/accounts", accountHandler.GetAccounts)

	// Category routes
	api.GET("/categories", budgetHandler.GetCategoryGroups)

	// Budget month routes
	months := api.Group("/months")
	months.GET("/:month/categories", budgetHandler.GetCategories)
	months.GET("/:month/categories/:name/budget", budgetHandler.GetCategoryBudget)

	// Transaction routes
	api.POST("/transactions", transactionHandler.CreateTransaction)
}
