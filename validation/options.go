package validation

import "github.com/kbukum/restkit/util"

// Option configures a single Check call.
type Option func(*descriptor)

// descriptor holds the constraints of one Check call.
type descriptor struct {
	itemsType *Kind
	choices   []any
	pattern   string
	regex     string
	softcheck *bool
	caseMode  util.Case
	required  bool
}

func newDescriptor(opts []Option) descriptor {
	var d descriptor
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// ItemsType requires every element of a list value to be of kind k.
func ItemsType(k Kind) Option {
	return func(d *descriptor) { d.itemsType = &k }
}

// Choices restricts the value, or each element of a list, to the given values.
// Numbers compare by value, so the choice 4 accepts int64(4) and 4.0.
func Choices(values ...any) Option {
	return func(d *descriptor) { d.choices = values }
}

// ChoicesOf is Choices for an existing typed slice.
func ChoicesOf[T any](values []T) Option {
	return Choices(util.Map(values, func(v T) any { return v })...)
}

// Pattern requires the value to fully match a registered pattern.
func Pattern(name string) Option {
	return func(d *descriptor) { d.pattern = name }
}

// Regex requires the value to fully match expr. The expression is anchored
// at both ends, so `\d+` and `^\d+$` behave the same.
func Regex(expr string) Option {
	return func(d *descriptor) { d.regex = expr }
}

// Strict disables coercion: a value of the wrong type fails immediately.
func Strict() Option {
	return Softcheck(false)
}

// Softcheck enables or disables coercion of string values, overriding the
// checker default.
func Softcheck(enabled bool) Option {
	return func(d *descriptor) { d.softcheck = &enabled }
}

// WithCase upper- or lowercases string values before choices and patterns
// are checked. The returned value carries the new case.
func WithCase(c util.Case) Option {
	return func(d *descriptor) { d.caseMode = c }
}

// Required rejects nil values instead of passing them through.
func Required() Option {
	return func(d *descriptor) { d.required = true }
}
