package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldErrors maps a failing field to a readable reason. A nil value means the
// document passed validation.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fe[f])
	}
	return strings.Join(parts, "; ")
}

// Validate checks v against its struct tags.
func Validate(v interface{}) FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"_": err.Error()}
	}
	errs := make(FieldErrors, len(validationErrors))
	for _, e := range validationErrors {
		errs[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return errs
}
