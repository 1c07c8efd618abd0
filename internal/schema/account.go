package schema

import (
	"encoding/json"
	"fmt"

	"github.com/finvola/budget-gateway/internal/domain"
)

// rawAccount mirrors the upstream account shape. Pointer fields distinguish
// an absent key from a legitimate zero value.
type rawAccount struct {
	ID        *string `json:"id" validate:"required"`
	Name      *string `json:"name" validate:"required"`
	Type      *string `json:"type" validate:"required"`
	Balance   *int64  `json:"balance" validate:"required"`
	OffBudget *bool   `json:"offbudget" validate:"required"`
	Closed    *bool   `json:"closed" validate:"required"`
}

// DecodeAccounts validates a raw upstream account list. Any wrong type or
// missing required field anywhere fails the whole list with a *ShapeError
// enumerating every violated field.
func DecodeAccounts(raw json.RawMessage) ([]domain.Account, error) {
	var rawAccounts []rawAccount
	if err := json.Unmarshal(raw, &rawAccounts); err != nil {
		return nil, &ShapeError{Entity: "account", Issues: decodeIssue("accounts", err)}
	}

	var issues []FieldIssue
	accounts := make([]domain.Account, 0, len(rawAccounts))
	for i, ra := range rawAccounts {
		path := fmt.Sprintf("accounts[%d]", i)
		if fieldIssues := structIssues(path, ra); len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}
		accounts = append(accounts, domain.Account{
			ID:        *ra.ID,
			Name:      *ra.Name,
			Type:      *ra.Type,
			Balance:   *ra.Balance,
			OffBudget: *ra.OffBudget,
			Closed:    *ra.Closed,
		})
	}

	if len(issues) > 0 {
		return nil, &ShapeError{Entity: "account", Issues: issues}
	}
	return accounts, nil
}

// decodeIssue turns a JSON unmarshalling error into a field issue. Type
// errors name the offending field; anything else reports the whole payload.
func decodeIssue(path string, err error) []FieldIssue {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		field := path
		if typeErr.Field != "" {
			field = joinPath(path, typeErr.Field)
		}
		return []FieldIssue{{Field: field, Message: "expected " + typeErr.Type.String() + ", got " + typeErr.Value}}
	}
	return []FieldIssue{{Field: path, Message: "malformed JSON"}}
}
