// Package validation checks and coerces the arguments REST client code
// passes to an API before a request is built.
//
// # Argument checks
//
// Check validates a single named value against a Kind and returns the value,
// coerced from its string form when soft checking is enabled:
//
//	n, err := validation.Check("limit", "50", validation.Int)           // 50
//	ids, err := validation.Check("ids", []any{1, "2"}, validation.List,
//	    validation.ItemsType(validation.Int))                           // []any{1, 2}
//	_, err = validation.Check("id", raw, validation.String, validation.Pattern("uuid"))
//
// Failures are *errors.AppError values with code TYPE_MISMATCH (wrong type,
// coercion impossible or disabled) or UNEXPECTED_VALUE (outside choices,
// pattern or regex).
//
// # Error collection
//
//	v := validation.New()
//	v.Required("name", name)
//	limit := v.Check("limit", raw, validation.Int)
//	err := v.Validate()
//
// # Struct Tag Validation
//
//	err := validation.Validate(cfg) // `validate:"required,oneof=a b"`
package validation
