package datablock

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Number is the set of values that can be written into a data block.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// AppendNumber appends the textual form of v to dst.
//
// Floats use the shortest representation that parses back to the same value
// and always keep a decimal point or exponent, so gnuplot evaluates them with
// float arithmetic (1/2.0 rather than 1/2).
func AppendNumber[T Number](dst []byte, v T) []byte {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return appendFloat(dst, float64(v), 32)
	case reflect.Float64:
		return appendFloat(dst, float64(v), 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(dst, uint64(v), 10)
	default:
		return strconv.AppendInt(dst, int64(v), 10)
	}
}

// FormatNumber returns the textual form of v, as written by AppendNumber.
func FormatNumber[T Number](v T) string {
	return string(AppendNumber(nil, v))
}

// FormatFloat formats f at the given bit size the way AppendNumber does.
func FormatFloat(f float64, bits int) string {
	return string(appendFloat(nil, f, bits))
}

func appendFloat(dst []byte, f float64, bits int) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, bits)

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return dst
	}

	if !strings.ContainsAny(string(dst[start:]), ".e") {
		dst = append(dst, '.', '0')
	}

	return dst
}
