package literal

import (
	"math"
	"strconv"
	"strings"
)

// Lookup walks nested mappings along path and returns the value found at the end.
func Lookup(v any, path ...string) (any, bool) {
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}

		if v, ok = m[key]; !ok {
			return nil, false
		}
	}

	return v, true
}

// Int converts a decoded value to int64. The tool reports counters either as
// numbers or as decimal strings, so both are accepted; fractional values are not.
func Int(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		if !finite(n) || n != math.Trunc(n) || math.Abs(n) >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// String returns v when it is a string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Truthy applies the tool's notion of truth to an envelope flag: false, nil,
// zero and the empty string are false; everything else is true.
func Truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case int64:
		return b != 0
	case float64:
		return b != 0
	case string:
		return b != ""
	default:
		return true
	}
}
