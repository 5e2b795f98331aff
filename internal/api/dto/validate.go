package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/field-tracker/pkg/util"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the JSON field name, not the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError describes a single schema violation.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validate checks the payload against its schema tags. Violations come
// back as a VALIDATION_FAILED error carrying the field-level list.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	fields := make([]FieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, FieldError{
			Field: violation.Field(),
			Rule:  violation.Tag(),
		})
	}
	return apperrors.NewValidationError("invalid employee data", map[string]any{
		"errors": fields,
	})
}
