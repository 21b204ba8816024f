package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kbukum/restkit/util"
)

// Built-in pattern names.
const (
	PatternUUID  = "uuid"
	PatternEmail = "email"
	PatternHex   = "hex"
	PatternURL   = "url"
	PatternIPv4  = "ipv4"
	PatternIPv6  = "ipv6"
)

var (
	uuidRegex  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	hexRegex   = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	urlRegex   = regexp.MustCompile(`^(?:https?|ftps?)://` +
		`(?:[^\s:@/]+(?::[^\s@/]*)?@)?` +
		`(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?)*|\[[0-9a-fA-F:.]+\])` +
		`(?::\d{1,5})?` +
		`(?:[/?#]\S*)?$`)
	ipv4Regex = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)$`)
	ipv6Regex = regexp.MustCompile(`^(?:` +
		`(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,7}:|` +
		`(?:[0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,5}(?::[0-9a-fA-F]{1,4}){1,2}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,4}(?::[0-9a-fA-F]{1,4}){1,3}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,3}(?::[0-9a-fA-F]{1,4}){1,4}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,2}(?::[0-9a-fA-F]{1,4}){1,5}|` +
		`[0-9a-fA-F]{1,4}:(?::[0-9a-fA-F]{1,4}){1,6}|` +
		`:(?:(?::[0-9a-fA-F]{1,4}){1,7}|:)` +
		`)$`)
)

var builtinPatterns = map[string]*regexp.Regexp{
	PatternUUID:  uuidRegex,
	PatternEmail: emailRegex,
	PatternHex:   hexRegex,
	PatternURL:   urlRegex,
	PatternIPv4:  ipv4Regex,
	PatternIPv6:  ipv6Regex,
}

// Registry maps pattern names to compiled, anchored expressions. It is not
// modified after construction and is safe to share.
type Registry struct {
	patterns map[string]*regexp.Regexp
}

var defaultRegistry = &Registry{patterns: builtinPatterns}

// DefaultRegistry returns the registry holding only the built-in patterns.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry returns a registry with the built-in patterns plus extra named
// expressions. Extra expressions are matched against the whole value and may
// not reuse a built-in name.
func NewRegistry(extra map[string]string) (*Registry, error) {
	patterns := make(map[string]*regexp.Regexp, len(builtinPatterns)+len(extra))
	for name, re := range builtinPatterns {
		patterns[name] = re
	}
	for _, name := range util.SortedKeys(extra) {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("pattern name must not be empty")
		}
		if _, ok := builtinPatterns[name]; ok {
			return nil, fmt.Errorf("pattern %q shadows a built-in pattern", name)
		}
		re, err := compileAnchored(extra[name])
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", name, err)
		}
		patterns[name] = re
	}
	return &Registry{patterns: patterns}, nil
}

// Lookup returns the compiled expression registered under name.
func (r *Registry) Lookup(name string) (*regexp.Regexp, bool) {
	re, ok := r.patterns[name]
	return re, ok
}

// Match reports whether s fully matches the named pattern. Unknown names never match.
func (r *Registry) Match(name, s string) bool {
	re, ok := r.Lookup(name)
	return ok && re.MatchString(s)
}

// Names returns the registered pattern names in sorted order.
func (r *Registry) Names() []string {
	return util.SortedKeys(r.patterns)
}

// IsBuiltinPattern reports whether name is one of the built-in patterns.
func IsBuiltinPattern(name string) bool {
	_, ok := builtinPatterns[name]
	return ok
}

// compileAnchored compiles expr so that it must match the entire input.
func compileAnchored(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + expr + `)$`)
}
