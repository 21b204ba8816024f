package util

import "net/url"

// URLPart names a component of a parsed URL.
type URLPart string

const (
	URLScheme   URLPart = "scheme"
	URLHost     URLPart = "host"
	URLPath     URLPart = "path"
	URLQuery    URLPart = "query"
	URLFragment URLPart = "fragment"
)

// URLValidator reports whether raw parses as a URL in which every listed part
// is non-empty. Without parts it requires a scheme and a host.
func URLValidator(raw string, parts ...URLPart) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if len(parts) == 0 {
		parts = []URLPart{URLScheme, URLHost}
	}
	for _, p := range parts {
		var value string
		switch p {
		case URLScheme:
			value = u.Scheme
		case URLHost:
			value = u.Host
		case URLPath:
			value = u.Path
		case URLQuery:
			value = u.RawQuery
		case URLFragment:
			value = u.Fragment
		}
		if value == "" {
			return false
		}
	}
	return true
}
