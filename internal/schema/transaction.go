package schema

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// CreateTransactionRequest is the client-facing inbound shape. Amount is in
// decimal major units; conversion to minor units happens after validation.
// Amount is a pointer so an absent field is rejected instead of silently
// decoding to a zero-amount transaction; an explicit 0 remains valid.
type CreateTransactionRequest struct {
	AccountID   string   `json:"accountId" validate:"required"`
	Date        string   `json:"date" validate:"required,dateshape"`
	Description string   `json:"description" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required,finite"`
	CategoryID  string   `json:"categoryId" validate:"required"`
}

// ValidateCreateTransaction validates every field independently and reports
// all issues at once. Rejected requests must never reach the upstream
// ledger.
func ValidateCreateTransaction(req CreateTransactionRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &RequestError{Issues: []FieldIssue{{Field: "request", Message: err.Error()}}}
	}

	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{
			Field:   fe.Field(),
			Message: constraintMessage(fe.Tag()),
		})
	}
	return &RequestError{Issues: issues}
}
