package validation

import (
	"fmt"
	"math"
	"reflect"
	"regexp"

	"github.com/kbukum/restkit/errors"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/util"
)

// Checker validates arguments against a pattern registry. The zero value is
// not usable; build one with NewChecker or use the package-level Check.
type Checker struct {
	registry  *Registry
	softcheck bool
	log       *logger.Logger
}

var defaultChecker = &Checker{registry: defaultRegistry, softcheck: true}

// DefaultChecker returns the checker behind the package-level Check: built-in
// patterns only, soft checking on.
func DefaultChecker() *Checker {
	return defaultChecker
}

// NewChecker builds a checker from cfg: extra named patterns are compiled
// into its registry and cfg.Softcheck becomes the default coercion mode.
func NewChecker(cfg Config) (*Checker, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	registry, err := NewRegistry(cfg.Patterns)
	if err != nil {
		return nil, errors.InvalidInput("patterns", err.Error()).WithCause(err)
	}
	return &Checker{registry: registry, softcheck: *cfg.Softcheck}, nil
}

// WithLogger returns a copy of the checker logging through l.
func (c *Checker) WithLogger(l *logger.Logger) *Checker {
	cp := *c
	cp.log = l
	return &cp
}

// Registry returns the checker's pattern registry.
func (c *Checker) Registry() *Registry {
	return c.registry
}

func (c *Checker) logger() *logger.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.Get("validation")
}

// Check validates value with the default checker. See (*Checker).Check.
func Check(name string, value any, expected Kind, opts ...Option) (any, error) {
	return defaultChecker.Check(name, value, expected, opts...)
}

// CheckAs runs Check and asserts the result to T. A nil result yields the
// zero T. Coerced integers are int, coerced floats float64.
func CheckAs[T any](name string, value any, expected Kind, opts ...Option) (T, error) {
	var zero T
	v, err := Check(name, value, expected, opts...)
	if err != nil || v == nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, errors.TypeMismatch(name, fmt.Sprintf("%T", zero), v)
	}
	return typed, nil
}

// Check validates a named value and returns it, possibly coerced.
//
// The steps run in order: type (with coercion of string values when soft
// checking), list item types, case forcing, choices, pattern, regex. The
// first failure is returned as a TYPE_MISMATCH or UNEXPECTED_VALUE AppError.
// A nil value passes through unless Required is given.
func (c *Checker) Check(name string, value any, expected Kind, opts ...Option) (any, error) {
	d := newDescriptor(opts)
	softcheck := c.softcheck
	if d.softcheck != nil {
		softcheck = *d.softcheck
	}

	if value == nil {
		if d.required {
			return nil, errors.TypeMismatch(name, expected.String(), nil)
		}
		return nil, nil
	}

	v, err := c.checkType(name, value, expected, softcheck)
	if err != nil {
		return nil, err
	}

	if d.itemsType != nil {
		if v, err = c.checkItems(name, v, *d.itemsType, softcheck); err != nil {
			return nil, err
		}
	}

	if d.caseMode != util.CaseNone {
		v = applyCase(v, d.caseMode)
	}

	elems := elements(v)

	if d.choices != nil {
		if err := checkChoices(name, elems, d.choices); err != nil {
			return nil, err
		}
	}

	if d.pattern != "" {
		re, ok := c.registry.Lookup(d.pattern)
		if !ok {
			return nil, errors.UnexpectedValue(name, d.pattern, "unknown pattern").
				WithDetail("pattern", d.pattern).
				WithDetail("known", c.registry.Names())
		}
		if err := matchAll(name, elems, re, "the "+d.pattern+" pattern"); err != nil {
			return nil, err.WithDetail("pattern", d.pattern)
		}
	}

	if d.regex != "" {
		re, compileErr := compileAnchored(d.regex)
		if compileErr != nil {
			return nil, errors.UnexpectedValue(name, d.regex, "invalid regex").
				WithDetail("regex", d.regex).
				WithCause(compileErr)
		}
		if err := matchAll(name, elems, re, "regex "+d.regex); err != nil {
			return nil, err.WithDetail("regex", d.regex)
		}
	}

	return v, nil
}

// checkType returns value if it already is of kind expected, otherwise the
// coerced value when softcheck is on and value is a string.
func (c *Checker) checkType(name string, value any, expected Kind, softcheck bool) (any, error) {
	if expected.Matches(value) {
		return value, nil
	}
	s, isString := stringOf(value)
	if !softcheck || !isString {
		return nil, errors.TypeMismatch(name, expected.String(), value)
	}
	coerced, err := coerce(expected, s)
	if err != nil {
		c.logger().Debug("coercion failed", logger.Fields(
			logger.FieldField, name,
			logger.FieldExpected, expected.String(),
			logger.FieldError, err.Error(),
		))
		return nil, errors.TypeMismatch(name, expected.String(), value).WithCause(err)
	}
	c.logger().Debug("coerced value", logger.Fields(
		logger.FieldField, name,
		logger.FieldExpected, expected.String(),
	))
	return coerced, nil
}

// checkItems applies checkType to each element of a list. The original
// value is returned when no element changed, a new []any otherwise.
func (c *Checker) checkItems(name string, value any, itemsType Kind, softcheck bool) (any, error) {
	rv := reflect.ValueOf(value)
	if !isList(rv) {
		return value, nil
	}
	out := make([]any, rv.Len())
	changed := false
	for i := range rv.Len() {
		item := rv.Index(i).Interface()
		checked, err := c.checkType(fmt.Sprintf("%s[%d]", name, i), item, itemsType, softcheck)
		if err != nil {
			appErr, _ := errors.AsAppError(err)
			return nil, appErr.WithDetail("index", i)
		}
		if !changed && !reflect.DeepEqual(checked, item) {
			changed = true
		}
		out[i] = checked
	}
	if !changed {
		return value, nil
	}
	return out, nil
}

// elements returns the items of a list value, or the value itself.
func elements(v any) []any {
	rv := reflect.ValueOf(v)
	if !isList(rv) {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// applyCase forces the case of a string, a []string or the string elements of a []any.
func applyCase(v any, c util.Case) any {
	switch x := v.(type) {
	case string:
		return c.Apply(x)
	case []string:
		return util.ForceCase(x, c)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			if s, ok := item.(string); ok {
				out[i] = c.Apply(s)
				continue
			}
			out[i] = item
		}
		return out
	}
	return v
}

func checkChoices(name string, elems []any, choices []any) error {
	for _, e := range elems {
		if !containsValue(choices, e) {
			return errors.UnexpectedValue(name, e, fmt.Sprintf("must be one of %v", choices)).
				WithDetail("choices", choices)
		}
	}
	return nil
}

func matchAll(name string, elems []any, re *regexp.Regexp, what string) *errors.AppError {
	for _, e := range elems {
		s, ok := stringOf(e)
		if !ok {
			return errors.TypeMismatch(name, "string", e)
		}
		if !re.MatchString(s) {
			return errors.UnexpectedValue(name, s, "does not match "+what)
		}
	}
	return nil
}

func containsValue(choices []any, v any) bool {
	for _, choice := range choices {
		if equalValues(choice, v) {
			return true
		}
	}
	return false
}

// equalValues compares numbers by value across Go integer and float types,
// so a coerced 4.0 matches the choice 4, and falls back to deep equality.
func equalValues(a, b any) bool {
	if ai, ok := asInt64(a); ok {
		if bi, ok := asInt64(b); ok {
			return ai == bi
		}
	}
	if af, ok := asFloat64(a); ok {
		if bf, ok := asFloat64(b); ok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

func asInt64(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
