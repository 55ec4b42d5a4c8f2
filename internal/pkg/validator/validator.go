// Package validator wraps go-playground struct validation behind a single
// call that reports failing fields.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct's validate tags. It returns nil when every rule
// passes, otherwise a field-to-rule map of what failed.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	failed := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		failed[fe.Field()] = fe.Tag()
	}
	return failed
}
