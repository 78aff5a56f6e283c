package serverutils

import (
	"fmt"
	"strings"

	"ai-subject-explorer-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct tags on a request DTO and reports the first
// failing field as a client error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return apperr.Validation("invalid request body")
	}

	first := validationErrs[0]
	field := strings.ToLower(first.Field())
	switch first.Tag() {
	case "required":
		return apperr.Validation(fmt.Sprintf("field '%s' is required", field))
	default:
		return apperr.Validation(fmt.Sprintf("field '%s' failed validation '%s'", field, first.Tag()))
	}
}
