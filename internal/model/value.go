// Package model defines the dynamic payload representation progward sweeps:
// a JSON-shaped mapping carrying a "programs" sequence plus optional
// top-level flags. Program records arrive from outside systems with loose
// schemas, so every accessor here degrades to "no value" instead of failing
// on missing or wrong-shaped fields.
package model

import (
	"strconv"
	"strings"
)

// Text converts a scalar value to its textual form. Returns false for nil
// and for shapes that have no flat text form (maps, slices).
func Text(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	default:
		return "", false
	}
}

// Norm returns the trimmed, lower-cased textual form of v, or "" when v is
// absent or has no text form. Booleans and numbers are stringified first so
// callers compare uniformly regardless of the wire type.
func Norm(v any) string {
	s, ok := Text(v)
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// FirstPresent returns the value of the first candidate key that is present
// in m with a non-nil value. Candidate order is the priority order.
func FirstPresent(m map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// DeepCopy returns a structurally independent copy of a JSON-shaped value
// tree. Scalars are returned as-is.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = DeepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = DeepCopy(val)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, val := range t {
			out[k] = val
		}
		return out
	default:
		return t
	}
}
