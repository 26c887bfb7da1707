package jsonutils

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"sync"

	"github.com/cybergodev/jsonutils/internal"
)

// Number represents a JSON number literal kept as text
type Number string

// String returns the literal text of the number.
func (n Number) String() string { return string(n) }

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Int64 returns the number as an int64.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// NumberForm is the normalized representation a numeric value maps to
type NumberForm int

const (
	FormNone    NumberForm = iota
	FormInt                // int64
	FormUint               // uint64
	FormFloat              // float64
	FormDecimal            // literal text, arbitrary precision
)

// String returns the string representation of the form
func (f NumberForm) String() string {
	switch f {
	case FormInt:
		return "int"
	case FormUint:
		return "uint"
	case FormFloat:
		return "float"
	case FormDecimal:
		return "decimal"
	default:
		return "none"
	}
}

type numberEntry struct {
	form      NumberForm
	normalize func(v any) any
	text      func(v any) (string, error)
}

// NumberRegistry maps the standard numeric representations to their
// normalized forms and default text. The process-wide instance returned by
// Numbers is built once and never modified, so it is safe for concurrent use.
type NumberRegistry struct {
	entries map[reflect.Type]numberEntry
}

var standardNumbers = sync.OnceValue(newStandardNumberRegistry)

// Numbers returns the process-wide numeric registry
func Numbers() *NumberRegistry {
	return standardNumbers()
}

func newStandardNumberRegistry() *NumberRegistry {
	r := &NumberRegistry{entries: make(map[reflect.Type]numberEntry, 16)}

	registerInt[int](r)
	registerInt[int8](r)
	registerInt[int16](r)
	registerInt[int32](r)
	registerInt[int64](r)
	registerUint[uint](r)
	registerUint[uint8](r)
	registerUint[uint16](r)
	registerUint[uint32](r)
	registerUint[uint64](r)

	register(r, FormFloat,
		func(v float32) any { return float64(v) },
		func(v float32) (string, error) { return internal.FormatFloat(float64(v), 32), nil })
	register(r, FormFloat,
		func(v float64) any { return v },
		func(v float64) (string, error) { return internal.FormatFloat(v, 64), nil })

	register(r, FormDecimal,
		func(v json.Number) any { return string(v) },
		func(v json.Number) (string, error) { return decimalText(string(v)) })
	register(r, FormDecimal,
		func(v Number) any { return string(v) },
		func(v Number) (string, error) { return decimalText(string(v)) })
	register(r, FormDecimal,
		func(v *big.Int) any {
			if v == nil {
				return nil
			}
			return v.String()
		},
		func(v *big.Int) (string, error) {
			if v == nil {
				return "", newInvalidNumberError("number_to_string", "nil *big.Int")
			}
			return v.String(), nil
		})
	register(r, FormDecimal,
		func(v *big.Float) any {
			if v == nil {
				return nil
			}
			return v.Text('g', -1)
		},
		func(v *big.Float) (string, error) {
			if v == nil {
				return "", newInvalidNumberError("number_to_string", "nil *big.Float")
			}
			if v.IsInf() {
				return "", newInvalidNumberError("number_to_string", "JSON does not allow non-finite numbers")
			}
			return v.Text('g', -1), nil
		})

	return r
}

func register[T any](r *NumberRegistry, form NumberForm, normalize func(T) any, text func(T) (string, error)) {
	r.entries[reflect.TypeFor[T]()] = numberEntry{
		form:      form,
		normalize: func(v any) any { return normalize(v.(T)) },
		text:      func(v any) (string, error) { return text(v.(T)) },
	}
}

func registerInt[T int | int8 | int16 | int32 | int64](r *NumberRegistry) {
	register(r, FormInt,
		func(v T) any { return int64(v) },
		func(v T) (string, error) { return strconv.FormatInt(int64(v), 10), nil })
}

func registerUint[T uint | uint8 | uint16 | uint32 | uint64](r *NumberRegistry) {
	register(r, FormUint,
		func(v T) any { return uint64(v) },
		func(v T) (string, error) { return strconv.FormatUint(uint64(v), 10), nil })
}

func decimalText(s string) (string, error) {
	if !internal.IsValidNumberString(s) {
		return "", newInvalidNumberError("number_to_string", fmt.Sprintf("%q is not a JSON number literal", s))
	}
	return s, nil
}

// Lookup returns the normalized form registered for the dynamic type of v
func (r *NumberRegistry) Lookup(v any) (NumberForm, bool) {
	if v == nil {
		return FormNone, false
	}
	e, ok := r.entries[reflect.TypeOf(v)]
	if !ok {
		return FormNone, false
	}
	return e.form, true
}

// Normalize converts v to its normalized form: int64, uint64, float64 or
// literal text. It reports false for values that are not registered numbers.
func (r *NumberRegistry) Normalize(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	e, ok := r.entries[reflect.TypeOf(v)]
	if !ok {
		return nil, false
	}
	return e.normalize(v), true
}

// Len returns the number of registered representations
func (r *NumberRegistry) Len() int {
	return len(r.entries)
}

// text returns the default decimal text of a registered number
func (r *NumberRegistry) text(v any) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	e, ok := r.entries[reflect.TypeOf(v)]
	if !ok {
		return "", false, nil
	}
	s, err := e.text(v)
	return s, true, err
}
