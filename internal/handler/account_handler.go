package handler

import (
	"errors"
	"net/http"

	"github.com/finvola/budget-gateway/internal/domain"
	"github.com/finvola/budget-gateway/internal/schema"
	"github.com/finvola/budget-gateway/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AccountHandler handles account HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountResponse represents a single account in API responses
type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Balance   string `json:"balance"`
	OffBudget bool   `json:"offbudget"`
	Closed    bool   `json:"closed"`
}

// AccountListResponse represents the account list payload
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// GetAccounts handles GET /api/v1/accounts
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAccounts(c.Request().Context())
	if err != nil {
		var shapeErr *schema.ShapeError
		if errors.As(err, &shapeErr) {
			log.Error().Err(err).Msg("Ledger returned malformed account data")
			return NewInternalError(c, "Invalid data received from ledger")
		}
		log.Error().Err(err).Msg("Failed to get accounts")
		return NewInternalError(c, "Failed to get accounts")
	}

	resp := AccountListResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i, account := range accounts {
		resp.Accounts[i] = AccountResponse{
			ID:        account.ID,
			Name:      account.Name,
			Type:      account.Type,
			Balance:   domain.IntegerToAmount(account.Balance).StringFixed(2),
			OffBudget: account.OffBudget,
			Closed:    account.Closed,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
