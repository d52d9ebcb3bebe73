package styleprops

import (
	"math"
	"reflect"
	"strconv"
)

// toNumber reports whether v is a Go numeric value and returns it as float64.
// NaN is not a number here.
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// normalizeValue converts every numeric kind to float64 and leaves the rest alone.
func normalizeValue(v any) any {
	if n, ok := toNumber(v); ok {
		return n
	}
	return v
}

func isNegative(v any) bool {
	n, ok := toNumber(v)
	return ok && n < 0
}

// formatNumber renders n the shortest way that round-trips: 10, 0.5, -8.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// responsiveValues returns the elements of a slice or array value, or v itself
// as a single element. Byte slices are treated as scalars.
func responsiveValues(v any) []any {
	switch vv := v.(type) {
	case []any:
		return vv
	case []byte:
		return []any{v}
	case nil:
		return []any{nil}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
