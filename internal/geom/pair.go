package geom

import (
	"strconv"
	"strings"
)

// Number is the set of types ParsePair can read.
type Number interface {
	int | int32 | int64 | uint | uint32 | uint64 | float32 | float64
}

// ParsePair splits s on the first sep and parses both halves as T.
// Any failure yields ok=false; there is no partial result.
func ParsePair[T Number](s string, sep rune) (l, r T, ok bool) {
	i := strings.IndexRune(s, sep)
	if i < 0 {
		return l, r, false
	}
	l, err1 := parseNumber[T](s[:i])
	r, err2 := parseNumber[T](s[i+len(string(sep)):])
	if err1 != nil || err2 != nil {
		var zero T
		return zero, zero, false
	}
	return l, r, true
}

func parseNumber[T Number](s string) (T, error) {
	var v T
	switch any(v).(type) {
	case int:
		n, err := strconv.ParseInt(s, 10, strconv.IntSize)
		return T(n), err
	case int32:
		n, err := strconv.ParseInt(s, 10, 32)
		return T(n), err
	case int64:
		n, err := strconv.ParseInt(s, 10, 64)
		return T(n), err
	case uint:
		n, err := strconv.ParseUint(s, 10, strconv.IntSize)
		return T(n), err
	case uint32:
		n, err := strconv.ParseUint(s, 10, 32)
		return T(n), err
	case uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		return T(n), err
	case float32:
		f, err := strconv.ParseFloat(s, 32)
		return T(f), err
	default:
		f, err := strconv.ParseFloat(s, 64)
		return T(f), err
	}
}

// ParseComplex reads "RE,IM".
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair[float64](s, ',')
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}

// ParseDims reads "WIDTHxHEIGHT". Both sides must be positive and their
// product must fit in an int.
func ParseDims(s string) (Dims, bool) {
	w, h, ok := ParsePair[int](s, 'x')
	d := Dims{W: w, H: h}
	if !ok || !d.Valid() {
		return Dims{}, false
	}
	return d, true
}

// ParseBounds reads two complex points separated by whitespace, e.g. "-1.20,0.35 -1,0.20".
func ParseBounds(s string) (Bounds, bool) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return Bounds{}, false
	}
	ul, ok1 := ParseComplex(f[0])
	lr, ok2 := ParseComplex(f[1])
	if !ok1 || !ok2 {
		return Bounds{}, false
	}
	return Bounds{UpperLeft: ul, LowerRight: lr}, true
}
