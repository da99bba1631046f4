package lint

import (
	"fmt"
	"math"
)

// GetIntOption extracts an int option, handling float64 from JSON.
// A float with a fractional part (2.9) is not an integer and yields defaultVal.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return defaultVal
		}
		return int(n)
	case int64:
		return int(n)
	case uint64:
		return int(n)
	default:
		return defaultVal
	}
}

// GetFloatOption extracts a numeric option as float64. Thresholds in
// contentlint.yaml may be written as integers or decimals.
func GetFloatOption(opts map[string]any, key string, defaultVal float64) float64 {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return defaultVal
	}
}

// GetStringOption extracts a string option.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// GetStringSliceOption extracts a string slice option.
// Non-string items (numbers in a YAML word list) are formatted as text.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			switch it := item.(type) {
			case string:
				result = append(result, it)
			case nil:
			default:
				result = append(result, fmt.Sprint(it))
			}
		}
		return result
	default:
		return defaultVal
	}
}
