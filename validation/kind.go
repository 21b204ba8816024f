package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Kind is the expected type of a checked value.
type Kind int

const (
	// Any accepts every non-nil value.
	Any Kind = iota
	// String accepts string values.
	String
	// Int accepts signed and unsigned integers.
	Int
	// Float accepts float32 and float64.
	Float
	// Bool accepts booleans.
	Bool
	// List accepts slices and arrays.
	List
	// Map accepts maps.
	Map
	// UUID accepts uuid.UUID.
	UUID
)

var kindNames = map[Kind]string{
	Any:    "any",
	String: "string",
	Int:    "int",
	Float:  "float",
	Bool:   "bool",
	List:   "list",
	Map:    "map",
	UUID:   "uuid",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a kind name ("int", "list", ...) to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Any, fmt.Errorf("unknown kind %q", name)
}

var uuidType = reflect.TypeOf(uuid.UUID{})

// Matches reports whether v already is of kind k.
func (k Kind) Matches(v any) bool {
	if v == nil {
		return false
	}
	if k == Any {
		return true
	}
	rv := reflect.ValueOf(v)
	switch k {
	case String:
		return rv.Kind() == reflect.String
	case Int:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return true
		}
	case Float:
		return rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64
	case Bool:
		return rv.Kind() == reflect.Bool
	case List:
		return isList(rv)
	case Map:
		return rv.Kind() == reflect.Map
	case UUID:
		return rv.Type() == uuidType
	}
	return false
}

// isList treats slices and arrays as lists, except uuid.UUID which is a [16]byte.
func isList(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice:
		return true
	case reflect.Array:
		return rv.Type() != uuidType
	}
	return false
}

// coercion converts the string form of a value into a kind.
type coercion func(s string) (any, error)

// coercions is the soft-check conversion table. Kinds missing from it
// (String, List, Map, Any) cannot be produced from a string.
var coercions = map[Kind]coercion{
	Int: func(s string) (any, error) {
		if !decimalRegex.MatchString(s) {
			return nil, fmt.Errorf("%q is not a decimal integer", s)
		}
		return cast.ToIntE(trimLeadingZeros(s))
	},
	Float: func(s string) (any, error) {
		return cast.ToFloat64E(s)
	},
	Bool: func(s string) (any, error) {
		return cast.ToBoolE(strings.ToLower(s))
	},
	UUID: func(s string) (any, error) {
		return uuid.Parse(s)
	},
}

// decimalRegex accepts base-10 integers only; cast would otherwise honour
// 0x, 0o and 0b prefixes and read "010" as octal.
var decimalRegex = regexp.MustCompile(`^[+-]?[0-9]+$`)

// trimLeadingZeros drops leading zeros after the optional sign, so "-007"
// becomes "-7" and "000" becomes "0".
func trimLeadingZeros(s string) string {
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return sign + s
}

// coerce converts s into kind k using the conversion table.
func coerce(k Kind, s string) (any, error) {
	fn, ok := coercions[k]
	if !ok {
		return nil, fmt.Errorf("no conversion from string to %s", k)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("cannot convert empty string to %s", k)
	}
	return fn(s)
}

// stringOf returns the string held by v, including named string types.
func stringOf(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
