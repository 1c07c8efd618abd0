package handler

import (
	"net/http"

	"github.com/finvola/budget-gateway/internal/schema"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the single error payload shape for the whole API. Issues
// is populated only for request validation failures.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Issues []schema.FieldIssue `json:"issues,omitempty"`
}

// NewValidationError creates a 400 response with itemized field issues
func NewValidationError(c echo.Context, detail string, issues []schema.FieldIssue) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:  detail,
		Issues: issues,
	})
}

// NewNotFoundError creates a 404 response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: detail})
}

// NewInternalError creates a 500 response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: detail})
}
