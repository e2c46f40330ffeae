package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Arguments wraps the loosely typed arguments of a tool call
type Arguments map[string]any

func NewArguments(raw map[string]any) Arguments {
	if raw == nil {
		return Arguments{}
	}
	return Arguments(raw)
}

// RequireFloat returns a numeric argument. Numbers may arrive as JSON numbers
// or as numeric strings (REST query parameters).
func (a Arguments) RequireFloat(key string) (float64, error) {
	value, ok := a[key]
	if !ok || value == nil {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidArgument, key)
	}

	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, key)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, key)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, key)
	}
}

// String returns a string argument, or def when it is absent or empty
func (a Arguments) String(key, def string) string {
	value, ok := a[key]
	if !ok || value == nil {
		return def
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return def
	}
	return s
}
