package handler

import (
	"errors"
	"net/http"

	"github.com/finvola/budget-gateway/internal/schema"
	"github.com/finvola/budget-gateway/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TransactionHandler handles transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionResponse represents the transaction creation result
type CreateTransactionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req schema.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if err := h.transactionService.CreateTransaction(c.Request().Context(), req); err != nil {
		var reqErr *schema.RequestError
		if errors.As(err, &reqErr) {
			return NewValidationError(c, "Invalid transaction", reqErr.Issues)
		}
		log.Error().Err(err).Str("account", req.AccountID).Str("category", req.CategoryID).Msg("Failed to create transaction")
		return NewInternalError(c, "Failed to create transaction")
	}

	log.Info().Str("account", req.AccountID).Str("category", req.CategoryID).Str("date", req.Date).Msg("Transaction created")

	return c.JSON(http.StatusCreated, CreateTransactionResponse{
		Success: true,
		Message: "Transaction created",
	})
}
