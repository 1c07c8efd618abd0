package service

import (
	"context"

	"github.com/finvola/budget-gateway/internal/domain"
	"github.com/finvola/budget-gateway/internal/schema"
)

// AccountService fetches and validates upstream account data.
type AccountService struct {
	ledger domain.LedgerGateway
}

// NewAccountService creates a new AccountService
func NewAccountService(ledger domain.LedgerGateway) *AccountService {
	return &AccountService{ledger: ledger}
}

// GetAccounts retrieves the account list from the upstream ledger and
// validates its shape. Data is fetched fresh on every call; nothing is
// cached.
func (s *AccountService) GetAccounts(ctx context.Context) ([]domain.Account, error) {
	raw, err := s.ledger.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	return schema.DecodeAccounts(raw)
}
