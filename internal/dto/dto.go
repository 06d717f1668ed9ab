// Package dto defines the request payload types the API accepts.
//
// Each type carries echo binding tags (param/query/json) plus validator
// tags, and implements validation.Validatable so the shared handler
// pipeline can bind and validate it before any business logic runs.
// Rules that tags cannot express (cross-field "at least one", decimal
// ranges) are returned as validation.CustomValidationErrors.
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tradepost/backend/internal/validation"
)

// validate is the shared validator instance. It caches struct metadata,
// so one instance serves every request type.
var validate = validator.New()

// notBlank guards PATCH string fields: a nil pointer means "leave
// unchanged", but an explicit empty string is still a bad value that tag
// validation skips (omitempty treats the dereferenced "" as absent).
func notBlank(field string, value *string, errs *validation.CustomValidationErrors) {
	if value != nil && strings.TrimSpace(*value) == "" {
		*errs = append(*errs, validation.CustomValidationError{
			Field:   field,
			Message: "must not be empty",
		})
	}
}
