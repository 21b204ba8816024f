package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/restkit/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "John")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("name", "   ")
	if !v2.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
	if appErr := v2.Validate(); appErr.Code != errors.ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", appErr.Code)
	}
}

func TestValidatorCheckCollects(t *testing.T) {
	v := New()
	limit := v.Check("limit", "25", Int)
	if limit != 25 {
		t.Errorf("expected coerced 25, got %#v", limit)
	}

	status := v.Check("status", "gone", String, Choices("open", "closed"))
	if status != nil {
		t.Errorf("expected nil for failed check, got %v", status)
	}
	v.Check("id", 42, String)

	errs := v.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "status" || errs[0].Code != errors.ErrCodeUnexpectedValue {
		t.Errorf("unexpected first error: %+v", errs[0])
	}
	if errs[1].Field != "id" || errs[1].Code != errors.ErrCodeTypeMismatch {
		t.Errorf("unexpected second error: %+v", errs[1])
	}

	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected error")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for several failures, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "status") || !strings.Contains(appErr.Message, "id") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
	if appErr.Details["fields"] == nil {
		t.Error("expected fields in details")
	}
}

func TestValidatorSingleCheckKeepsCode(t *testing.T) {
	v := New()
	v.Check("n", "x", Int)
	appErr := v.Validate()
	if appErr == nil || appErr.Code != errors.ErrCodeTypeMismatch {
		t.Fatalf("expected TYPE_MISMATCH, got %v", appErr)
	}
}

func TestValidatorPattern(t *testing.T) {
	v := New()
	v.Pattern("email", "someone@company.tld", PatternEmail)
	v.Pattern("email", "", PatternEmail)
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v.Pattern("ip", "300.1.1.1", PatternIPv4)
	if !v.HasErrors() {
		t.Error("expected error for invalid ipv4")
	}
}

func TestValidatorWithChecker(t *testing.T) {
	c, err := NewChecker(Config{Patterns: map[string]string{"ticket": `[A-Z]+-\d+`}})
	if err != nil {
		t.Fatalf("NewChecker failed: %v", err)
	}
	v := NewWithChecker(c)
	v.Pattern("key", "API-42", "ticket")
	v.Check("key2", "api-42", String, Pattern("ticket"))
	if len(v.Errors()) != 1 || v.Errors()[0].Field != "key2" {
		t.Errorf("expected only key2 to fail, got %v", v.Errors())
	}
}

func TestValidatorOneOf(t *testing.T) {
	v := New()
	v.OneOf("status", "active", []string{"active", "inactive"})
	v.OneOf("status", "", []string{"active"})
	if v.HasErrors() {
		t.Error("expected no error for valid or empty oneOf value")
	}

	v2 := New()
	v2.OneOf("status", "unknown", []string{"active", "inactive"})
	if !v2.HasErrors() {
		t.Error("expected error for invalid oneOf value")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "field", "should pass")
	if v.HasErrors() {
		t.Error("expected no error for true condition")
	}
	v.Custom(false, "field", "custom error")
	if v.Errors()[0].Message != "custom error" {
		t.Errorf("expected 'custom error', got %q", v.Errors()[0].Message)
	}
}

func TestValidatorValidateEmpty(t *testing.T) {
	if New().Validate() != nil {
		t.Error("expected nil for no errors")
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	result := v.Required("name", "John").OneOf("kind", "a", []string{"a"}).Custom(true, "x", "y")
	if result != v {
		t.Error("expected chaining to return same validator")
	}
}
