package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltinPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		value   string
		want    bool
	}{
		{PatternUUID, "550e8400-e29b-41d4-a716-446655440000", true},
		{PatternUUID, "550E8400-E29B-41D4-A716-446655440000", true},
		{PatternUUID, "550e8400e29b41d4a716446655440000", false},
		{PatternEmail, "first.last+tag@example.co.uk", true},
		{PatternEmail, "no-at-sign.example.com", false},
		{PatternHex, "DEADbeef", true},
		{PatternHex, "0xdead", false},
		{PatternURL, "https://api.example.com:8443/v1?x=1", true},
		{PatternURL, "ftp://user:pw@host.tld/file", true},
		{PatternURL, "http://[::1]:80/", true},
		{PatternURL, "http://-bad.com", false},
		{PatternURL, "company.com/path", false},
		{PatternIPv4, "10.0.0.255", true},
		{PatternIPv4, "256.1.1.1", false},
		{PatternIPv4, "01.1.1.1", false},
		{PatternIPv6, "::1", true},
		{PatternIPv6, "fe80::1", true},
		{PatternIPv6, "::", true},
		{PatternIPv6, "2001:db8::ff00:42:8329", true},
		{PatternIPv6, "1::2::3", false},
		{PatternIPv6, "12345::", false},
	}
	reg := DefaultRegistry()
	for _, tc := range tests {
		t.Run(tc.pattern+"/"+tc.value, func(t *testing.T) {
			if got := reg.Match(tc.pattern, tc.value); got != tc.want {
				t.Errorf("Match(%s, %q) = %v, want %v", tc.pattern, tc.value, got, tc.want)
			}
		})
	}
}

func TestRegistryNames(t *testing.T) {
	want := []string{"email", "hex", "ipv4", "ipv6", "url", "uuid"}
	if diff := cmp.Diff(want, DefaultRegistry().Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRegistryExtra(t *testing.T) {
	reg, err := NewRegistry(map[string]string{"digits": `\d+`})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if !reg.Match("digits", "123") {
		t.Error("expected digits to match 123")
	}
	if reg.Match("digits", "12a") {
		t.Error("expected extra pattern to be anchored")
	}
	if !reg.Match(PatternUUID, "00000000-0000-0000-0000-000000000000") {
		t.Error("expected built-ins to be present")
	}
	if _, ok := DefaultRegistry().Lookup("digits"); ok {
		t.Error("extra pattern leaked into the default registry")
	}
}

func TestNewRegistryErrors(t *testing.T) {
	tests := []struct {
		name  string
		extra map[string]string
	}{
		{"shadows builtin", map[string]string{PatternEmail: `.+`}},
		{"empty name", map[string]string{" ": `.+`}},
		{"bad expression", map[string]string{"broken": `[`}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRegistry(tc.extra); err == nil {
				t.Errorf("expected error for %v", tc.extra)
			}
		})
	}
}

func TestRegistryMatchUnknown(t *testing.T) {
	if DefaultRegistry().Match("nope", "anything") {
		t.Error("unknown pattern must not match")
	}
	if !IsBuiltinPattern(PatternIPv6) || IsBuiltinPattern("nope") {
		t.Error("IsBuiltinPattern returned wrong result")
	}
}

func TestParseKind(t *testing.T) {
	for k, name := range kindNames {
		got, err := ParseKind(name)
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", name, got, err, k)
		}
	}
	if _, err := ParseKind("tuple"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("unexpected String for unknown kind: %s", Kind(99))
	}
}
