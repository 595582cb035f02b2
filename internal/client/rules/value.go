package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Values flowing through evaluation are nil, bool, float64, string, []any or
// time.Time. Facts may additionally carry Go integers.

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case time.Time:
		return !x.IsZero()
	default:
		if f, ok := number(v); ok {
			return f != 0 && !math.IsNaN(f)
		}
		return true
	}
}

// number converts v to float64 without string parsing.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// toNumber also accepts numeric strings.
func toNumber(v any) (float64, error) {
	if f, ok := number(v); ok {
		return f, nil
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %T is not a number", ErrType, v)
}

// canonical renders scalars so that 2, 2.0 and "2" compare equal.
func canonical(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	}
	if f, ok := number(v); ok {
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// looseEqual follows JsonLogic "==": numbers compare numerically, everything
// else by canonical form.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, err := toNumber(a); err == nil {
		if fb, err := toNumber(b); err == nil {
			return fa == fb
		}
	}
	return canonical(a) == canonical(b)
}

func toTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		t, err := time.Parse(time.RFC3339, x)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not a timestamp", ErrType, x)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %T is not a timestamp", ErrType, v)
}
