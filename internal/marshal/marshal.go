package marshal

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"libprime/internal/domain"
)

var jsonNumberType = reflect.TypeOf(json.Number(""))

// Int32 decodes v into an int32.
//
// Accepted: every Go integer kind, whole-valued floats, json.Number, and
// pointers to any of these. Everything else is a type mismatch.
func Int32(v any) (int32, error) {
	if num, ok := v.(json.Number); ok {
		return fromJSONNumber(num)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, mismatch(v)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return 0, mismatch(v)
	}
	if rv.Type() == jsonNumberType {
		return fromJSONNumber(json.Number(rv.String()))
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt64(v, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt32 {
			return 0, outOfRange(v)
		}
		return int32(u), nil
	case reflect.Float32, reflect.Float64:
		return fromFloat64(v, rv.Float())
	default:
		return 0, mismatch(v)
	}
}

// ParseInt32 decodes a base-10 textual integer with an optional sign.
// Surrounding whitespace is ignored.
func ParseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, outOfRange(s)
		}
		return 0, mismatch(s)
	}
	return int32(n), nil
}

// ParseUint decodes a base-10 unsigned integer that fits in bits (32 or 64).
// A negative number is out of range rather than a type mismatch.
func ParseUint(s string, bits int) (uint64, error) {
	if bits != 32 && bits != 64 {
		return 0, fmt.Errorf("marshal uint%d: %w", bits, domain.ErrUnsupportedWidth)
	}
	t := strings.TrimSpace(s)
	n, err := strconv.ParseUint(strings.TrimPrefix(t, "+"), 10, bits)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, rangeErr(bits, s)
	}
	if rest, ok := strings.CutPrefix(t, "-"); ok {
		if _, perr := strconv.ParseUint(rest, 10, 64); perr == nil || errors.Is(perr, strconv.ErrRange) {
			return 0, rangeErr(bits, s)
		}
	}
	return 0, fmt.Errorf("marshal uint%d: %s: %w", bits, describe(s), domain.ErrTypeMismatch)
}

func rangeErr(bits int, s string) error {
	return fmt.Errorf("marshal uint%d: %s: %w", bits, describe(s), domain.ErrOutOfRange)
}

func fromJSONNumber(num json.Number) (int32, error) {
	if n, err := num.Int64(); err == nil {
		return fromInt64(num, n)
	}
	f, err := num.Float64()
	if err != nil {
		return 0, mismatch(num)
	}
	return fromFloat64(num, f)
}

func fromInt64(v any, n int64) (int32, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, outOfRange(v)
	}
	return int32(n), nil
}

func fromFloat64(v any, f float64) (int32, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, mismatch(v)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, outOfRange(v)
	}
	return int32(f), nil
}

func mismatch(v any) error {
	return fmt.Errorf("marshal int32: %s: %w", describe(v), domain.ErrTypeMismatch)
}

func outOfRange(v any) error {
	return fmt.Errorf("marshal int32: %s: %w", describe(v), domain.ErrOutOfRange)
}

func describe(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(string); ok {
		return strconv.Quote(s) + " (string)"
	}
	return fmt.Sprintf("%v (%T)", v, v)
}
