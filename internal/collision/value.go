package collision

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// normalize maps Go numeric types onto the three scalar kinds stored in
// records (int64, float64, string) so that values compare by value
// regardless of how the caller spelled them. NaN, as emitted by some
// tabular tools for empty cells, becomes nil.
func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return uintValue(x)
	case float32:
		return normalize(float64(x))
	case float64:
		if math.IsNaN(x) {
			return nil
		}
		return x
	case *string:
		if x == nil {
			return nil
		}
		return *x
	default:
		return v
	}
}

func uintValue(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

// Equal reports whether two scalar values are equal after normalization.
// Integers and floats compare numerically; everything else falls back to
// reflect.DeepEqual so non-comparable values never panic.
func Equal(a, b any) bool {
	a, b = normalize(a), normalize(b)
	switch x := a.(type) {
	case int64:
		switch y := b.(type) {
		case int64:
			return x == y
		case float64:
			return float64(x) == y
		}
		return false
	case float64:
		switch y := b.(type) {
		case int64:
			return x == float64(y)
		case float64:
			return x == y
		}
		return false
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	case [2]any:
		y, ok := b.([2]any)
		return ok && Equal(x[0], y[0]) && Equal(x[1], y[1])
	}
	return reflect.DeepEqual(a, b)
}

// formatValue renders a stored scalar as text. nil renders as "".
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// FormatValue is the exported form of formatValue, used by exporters that
// write every column as text.
func FormatValue(v any) string { return formatValue(normalize(v)) }
