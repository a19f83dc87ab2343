// Package format renders single buffer elements for the output sink.
package format

import (
	"strconv"
	"unsafe"

	"arraypointer/pkg/input"
)

// DefaultPrecision is the number of digits printed after the decimal point
// for floating-point elements.
const DefaultPrecision = 1

// Func renders one element as text.
type Func[T any] func(T) string

// Decimal renders integers in base 10 and floats with precision digits after
// the point. A negative precision falls back to DefaultPrecision.
func Decimal[T input.Number](precision int) Func[T] {
	if precision < 0 {
		precision = DefaultPrecision
	}

	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	switch any(zero).(type) {
	case float32, float64:
		return func(x T) string { return strconv.FormatFloat(float64(x), 'f', precision, bits) }
	case int, int8, int16, int32, int64:
		return func(x T) string { return strconv.FormatInt(int64(x), 10) }
	default:
		return func(x T) string { return strconv.FormatUint(uint64(x), 10) }
	}
}
