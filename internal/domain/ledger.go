package domain

import (
	"context"
	"encoding/json"
)

// LedgerGateway is the boundary with the upstream ledger service. Reads
// return the raw JSON body untouched; shape validation happens in the schema
// layer, never in the transport.
type LedgerGateway interface {
	Accounts(ctx context.Context) (json.RawMessage, error)
	BudgetMonth(ctx context.Context, month string) (json.RawMessage, error)
	Categories(ctx context.Context) (json.RawMessage, error)
	CreateTransaction(ctx context.Context, tx NewTransaction) error
}
