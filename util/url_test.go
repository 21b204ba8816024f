package util

import "testing"

func TestURLValidator(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		parts []URLPart
		want  bool
	}{
		{"scheme and host", "http://company.com/path/of/stuff", nil, true},
		{"missing scheme", "company.com/path", nil, false},
		{"plain word", "abcdef", nil, false},
		{"path required", "https://company.com", []URLPart{URLScheme, URLHost, URLPath}, false},
		{"path present", "https://company.com/x", []URLPart{URLPath}, true},
		{"query present", "https://company.com/x?a=1", []URLPart{URLQuery}, true},
		{"fragment missing", "https://company.com/x", []URLPart{URLFragment}, false},
		{"unparseable", "http://[::1", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := URLValidator(tc.raw, tc.parts...); got != tc.want {
				t.Errorf("URLValidator(%q, %v) = %v, want %v", tc.raw, tc.parts, got, tc.want)
			}
		})
	}
}
