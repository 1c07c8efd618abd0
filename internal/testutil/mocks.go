package testutil

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finvola/budget-gateway/internal/domain"
)

// MockLedgerGateway is a mock implementation of domain.LedgerGateway
type MockLedgerGateway struct {
	AccountsJSON json.RawMessage
	MonthsJSON   map[string]json.RawMessage
	GroupsJSON   json.RawMessage

	// Err, when set, is returned by every call.
	Err error

	CreatedTransactions []domain.NewTransaction
}

// NewMockLedgerGateway creates a new MockLedgerGateway
func NewMockLedgerGateway() *MockLedgerGateway {
	return &MockLedgerGateway{
		MonthsJSON: make(map[string]json.RawMessage),
	}
}

// AddBudgetMonth registers a raw budget month payload for a YYYY-MM month
func (m *MockLedgerGateway) AddBudgetMonth(month string, raw string) {
	m.MonthsJSON[month] = json.RawMessage(raw)
}

// Accounts returns the configured raw account list
func (m *MockLedgerGateway) Accounts(_ context.Context) (json.RawMessage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.AccountsJSON, nil
}

// BudgetMonth returns the configured raw budget month
func (m *MockLedgerGateway) BudgetMonth(_ context.Context, month string) (json.RawMessage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	raw, ok := m.MonthsJSON[month]
	if !ok {
		return nil, fmt.Errorf("%w: no budget month %s", domain.ErrLedgerUnavailable, month)
	}
	return raw, nil
}

// Categories returns the configured raw category group list
func (m *MockLedgerGateway) Categories(_ context.Context) (json.RawMessage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.GroupsJSON, nil
}

// CreateTransaction records the submitted transaction
func (m *MockLedgerGateway) CreateTransaction(_ context.Context, tx domain.NewTransaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.CreatedTransactions = append(m.CreatedTransactions, tx)
	return nil
}
