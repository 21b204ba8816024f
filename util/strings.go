package util

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTruncSuffix is appended by Trunc when text is cut.
const DefaultTruncSuffix = "..."

// Case selects the letter case ForceCase converts to.
type Case int

const (
	// CaseNone leaves values untouched.
	CaseNone Case = iota
	// Upper converts to upper case.
	Upper
	// Lower converts to lower case.
	Lower
)

// String returns the config name of the case.
func (c Case) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "none"
	}
}

// ParseCase maps "upper", "lower" or "" (none) to a Case.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CaseNone, nil
	case "upper":
		return Upper, nil
	case "lower":
		return Lower, nil
	}
	return CaseNone, fmt.Errorf("unknown case %q (want upper or lower)", s)
}

// Apply converts a single string. Casers are stateful, so one is built per call.
func (c Case) Apply(s string) string {
	switch c {
	case Upper:
		return cases.Upper(language.Und).String(s)
	case Lower:
		return cases.Lower(language.Und).String(s)
	default:
		return s
	}
}

// ForceCase returns v converted to the requested case. A slice yields a new
// slice of the same length and order.
//
//	ForceCase("TEST", Lower)            // "test"
//	ForceCase([]string{"a", "b"}, Upper) // []string{"A", "B"}
func ForceCase[T string | []string](v T, c Case) T {
	switch x := any(v).(type) {
	case string:
		return any(c.Apply(x)).(T)
	case []string:
		if x == nil {
			return v
		}
		out := make([]string, len(x))
		for i, s := range x {
			out[i] = c.Apply(s)
		}
		return any(out).(T)
	}
	return v
}

// Trunc shortens text to at most length characters, ending it with "..."
// when it had to be cut.
//
//	Trunc("Too Small", 6) // "Too..."
func Trunc(text string, length int) string {
	return TruncSuffix(text, length, DefaultTruncSuffix)
}

// TruncSuffix shortens text to at most length characters (runes). When text
// is cut the result ends with suffix; an empty suffix cuts at exactly length.
// If suffix does not fit inside length it is dropped.
func TruncSuffix(text string, length int, suffix string) string {
	if length < 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	suffixLen := len([]rune(suffix))
	if suffixLen == 0 || suffixLen >= length {
		return string(runes[:length])
	}
	return string(runes[:length-suffixLen]) + suffix
}
