// Package schema validates untrusted JSON at the gateway's two boundaries:
// responses from the upstream ledger service and client-submitted
// transaction requests. Validation rejects, it never coerces; failures
// enumerate every violated field so nothing has to be re-run to see the
// next problem.
package schema

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shape patterns bound months to 01-12 and days to 01-31 but deliberately
// stop short of calendar correctness: "2024-02-30" passes, "2024-13-40"
// does not.
var (
	dateShapePattern  = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	monthShapePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their wire names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("dateshape", func(fl validator.FieldLevel) bool {
		return dateShapePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("monthshape", func(fl validator.FieldLevel) bool {
		return monthShapePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// ValidMonth reports whether s has the YYYY-MM shape used for budget month
// path parameters.
func ValidMonth(s string) bool {
	return monthShapePattern.MatchString(s)
}

// FieldIssue is a single violated field and the reason.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ShapeError means data from the upstream ledger does not match its
// contract. This is an upstream break, not a client mistake; handlers map
// it to a 500.
type ShapeError struct {
	Entity string
	Issues []FieldIssue
}

func (e *ShapeError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return fmt.Sprintf("invalid %s data from ledger: %s", e.Entity, strings.Join(parts, "; "))
}

// RequestError means a client-submitted request failed validation; handlers
// map it to a 400 with the itemized issues.
type RequestError struct {
	Issues []FieldIssue
}

func (e *RequestError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

// structIssues runs tag validation on a raw decoded struct and converts the
// result into field issues prefixed with path.
func structIssues(path string, s any) []FieldIssue {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldIssue{{Field: path, Message: err.Error()}}
	}

	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{
			Field:   joinPath(path, fe.Field()),
			Message: constraintMessage(fe.Tag()),
		})
	}
	return issues
}

func constraintMessage(tag string) string {
	switch tag {
	case "required":
		return "required field is missing"
	case "dateshape":
		return "must match YYYY-MM-DD"
	case "monthshape":
		return "must match YYYY-MM"
	case "finite":
		return "must be a finite number"
	default:
		return "failed " + tag + " constraint"
	}
}

func joinPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
