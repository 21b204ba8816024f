package validation

import (
	"fmt"
	"strings"

	"github.com/kbukum/restkit/errors"
)

// Validator collects validation errors across several arguments so they can
// be reported together.
type Validator struct {
	checker *Checker
	errors  []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string           `json:"field"`
	Code    errors.ErrorCode `json:"code,omitempty"`
	Message string           `json:"message"`
}

// New creates a new Validator using the default checker.
func New() *Validator {
	return &Validator{
		checker: defaultChecker,
		errors:  make([]FieldError, 0),
	}
}

// NewWithChecker creates a Validator that runs Check through c.
func NewWithChecker(c *Checker) *Validator {
	v := New()
	v.checker = c
	return v
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Code:    errors.ErrCodeInvalidInput,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an AppError if there are validation errors, nil otherwise.
// A single collected Check failure keeps its own code.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	appErr := errors.Validation(strings.Join(messages, "; "))
	if len(v.errors) == 1 && v.errors[0].Code != "" {
		appErr.Code = v.errors[0].Code
	}
	appErr.Details = map[string]any{
		"fields": v.errors,
	}

	return appErr
}

// Check runs the checker on value and returns the checked value. A failure
// is recorded under field and nil is returned.
func (v *Validator) Check(field string, value any, expected Kind, opts ...Option) any {
	checked, err := v.checker.Check(field, value, expected, opts...)
	if err != nil {
		fe := FieldError{Field: field, Code: errors.ErrCodeInvalidInput, Message: err.Error()}
		if appErr, ok := errors.AsAppError(err); ok {
			fe.Code = appErr.Code
			fe.Message = appErr.Message
		}
		v.errors = append(v.errors, fe)
		return nil
	}
	return checked
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.errors = append(v.errors, FieldError{
			Field:   field,
			Code:    errors.ErrCodeMissingField,
			Message: "is required",
		})
	}
	return v
}

// Pattern checks that a non-empty string fully matches a registered pattern.
func (v *Validator) Pattern(field, value, pattern string) *Validator {
	if value == "" {
		return v
	}
	if !v.checker.registry.Match(pattern, value) {
		v.AddError(field, fmt.Sprintf("does not match the %s pattern", pattern))
	}
	return v
}

// OneOf checks if a non-empty value is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" {
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.AddError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom applies a custom validation condition.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}
