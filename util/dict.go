package util

import "strings"

// RedactedValue replaces sensitive values in RedactValues when no
// replacement is given.
const RedactedValue = "REDACTED"

// DefaultRedactKeys are the keys RedactValues masks when none are given.
var DefaultRedactKeys = []string{"password"}

// DictMerge recursively merges override into base and returns the result.
// Keys holding maps on both sides are merged at any depth; any other value
// in override replaces or adds to base. Neither argument is modified.
//
//	DictMerge(map[string]any{"s": map[string]any{"a": 1}, "b": 2},
//	          map[string]any{"s": map[string]any{"c": 3, "a": 4}})
//	// {"s": {"a": 4, "c": 3}, "b": 2}
func DictMerge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = copyValue(v)
	}
	for k, ov := range override {
		bm, baseIsMap := merged[k].(map[string]any)
		om, overrideIsMap := ov.(map[string]any)
		if baseIsMap && overrideIsMap {
			merged[k] = DictMerge(bm, om)
			continue
		}
		merged[k] = copyValue(ov)
	}
	return merged
}

// DictClean returns a copy of m with nil values removed, recursing into
// nested maps and maps held in []any.
func DictClean(m map[string]any) map[string]any {
	cleaned := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		cleaned[k] = cleanValue(v)
	}
	return cleaned
}

func cleanValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return DictClean(x)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = cleanValue(item)
		}
		return out
	default:
		return v
	}
}

// DictFlatten collapses nested maps into a single level, joining keys with
// sep ("." when empty). Nested empty maps contribute no keys.
//
//	DictFlatten(map[string]any{"a": map[string]any{"b": 1}}, "") // {"a.b": 1}
func DictFlatten(m map[string]any, sep string) map[string]any {
	if sep == "" {
		sep = "."
	}
	flat := make(map[string]any)
	flattenInto(flat, "", m, sep)
	return flat
}

func flattenInto(dst map[string]any, prefix string, m map[string]any, sep string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + sep + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(dst, key, nested, sep)
			continue
		}
		dst[key] = v
	}
}

// RedactValues returns a copy of v in which the values stored under any of
// keys (matched case-insensitively) are replaced. It walks map[string]any
// and []any; other values are returned as-is.
func RedactValues(v any, keys []string, replacement string) any {
	if len(keys) == 0 {
		keys = DefaultRedactKeys
	}
	if replacement == "" {
		replacement = RedactedValue
	}
	lowered := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		lowered[strings.ToLower(k)] = struct{}{}
	}
	return redact(v, lowered, replacement)
}

func redact(v any, keys map[string]struct{}, replacement string) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			if _, ok := keys[strings.ToLower(k)]; ok {
				out[k] = replacement
				continue
			}
			out[k] = redact(item, keys, replacement)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = redact(item, keys, replacement)
		}
		return out
	default:
		return v
	}
}

// copyValue deep-copies the map and slice containers DictMerge walks so the
// merged result never aliases its inputs.
func copyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
