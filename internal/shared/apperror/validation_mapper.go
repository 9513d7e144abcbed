package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// approver_employee_ids -> Approver Employee Ids
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

func violationMessage(e validator.FieldError) string {
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return field + " is required"
	default:
		return field + " is invalid"
	}
}

// MapValidationError converts a gin binding failure into an AppError. The
// message reports the first violated rule; every violation is carried in the
// details payload keyed by json field name.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		violations := make(map[string]string, len(errs))
		for _, e := range errs {
			violations[e.Field()] = violationMessage(e)
		}

		return New(
			CodeInvalidInput,
			violationMessage(errs[0]),
			http.StatusBadRequest,
		).WithDetails(violations)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
