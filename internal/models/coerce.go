package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func coerceFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%v is not a number", v)
	}
}

// coerceInt truncates fractional input, matching how the previous
// implementation parsed inventory levels.
func coerceInt(v any) (int, error) {
	f, err := coerceFloat(v)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// normalizeCategory wraps a scalar into a one-element list; lists pass
// through unchanged.
func normalizeCategory(v any) any {
	switch x := v.(type) {
	case []any:
		return x
	case []string:
		return x
	default:
		return []any{v}
	}
}
