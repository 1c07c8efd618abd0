package service

import (
	"context"

	"github.com/finvola/budget-gateway/internal/domain"
	"github.com/finvola/budget-gateway/internal/schema"
	"github.com/shopspring/decimal"
)

// TransactionService validates and submits new transactions upstream.
type TransactionService struct {
	ledger domain.LedgerGateway
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(ledger domain.LedgerGateway) *TransactionService {
	return &TransactionService{ledger: ledger}
}

// CreateTransaction validates the request, converts the amount to integer
// minor units and submits it to the upstream ledger with cleared asserted.
// A request failing validation never reaches the ledger.
func (s *TransactionService) CreateTransaction(ctx context.Context, req schema.CreateTransactionRequest) error {
	if err := schema.ValidateCreateTransaction(req); err != nil {
		return err
	}

	tx := domain.NewTransaction{
		Account:  req.AccountID,
		Date:     req.Date,
		Notes:    req.Description,
		Amount:   domain.AmountToInteger(decimal.NewFromFloat(*req.Amount)),
		Category: req.CategoryID,
		Cleared:  true,
	}
	return s.ledger.CreateTransaction(ctx, tx)
}
