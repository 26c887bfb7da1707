package jsonutils

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cybergodev/jsonutils/internal"
)

// NumberToString produces canonical JSON text for a number. Trailing zeros
// after a decimal point and a dangling point are removed unless the text is
// in exponent form. NaN, infinities, nil and non-numeric values fail with
// ErrInvalidNumber.
func NumberToString(n any) (string, error) {
	if n == nil {
		return "", newInvalidNumberError("number_to_string", "nil number")
	}
	if err := TestValidity(n); err != nil {
		return "", err
	}

	s, ok, err := Numbers().text(n)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", newInvalidNumberError("number_to_string", fmt.Sprintf("%T is not a number", n))
	}
	return internal.TrimFractionZeros(s), nil
}

// DoubleToString produces canonical JSON text for a float64. Unlike
// NumberToString it never fails: non-finite values become "null".
func DoubleToString(d float64) string {
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return "null"
	}
	return internal.TrimFractionZeros(internal.FormatFloat(d, 64))
}

// TestValidity returns ErrInvalidNumber if v is a NaN or infinite float.
// Every other value, numeric or not, is valid.
func TestValidity(v any) error {
	switch n := v.(type) {
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return newInvalidNumberError("test_validity", "JSON does not allow non-finite numbers")
		}
	case float32:
		if math.IsInf(float64(n), 0) || math.IsNaN(float64(n)) {
			return newInvalidNumberError("test_validity", "JSON does not allow non-finite numbers")
		}
	case *big.Float:
		if n != nil && n.IsInf() {
			return newInvalidNumberError("test_validity", "JSON does not allow non-finite numbers")
		}
	}
	return nil
}

// IsNumeric reports whether v renders through the number path. This is wider
// than IsNumber: arbitrary-precision values such as json.Number and *big.Int
// are numeric without classifying as KindNumber.
func IsNumeric(v any) bool {
	_, ok := Numbers().Lookup(v)
	return ok
}

// TransformNumber narrows a number toward JSON's single number kind:
// float32 becomes float64, 8- and 16-bit integers become int32, and int64
// or int become int32 when the value is at most math.MaxInt32. There is no
// lower-bound check, so large negative values narrow with truncation.
// Everything else is returned unchanged.
func TransformNumber(n any) any {
	switch v := n.(type) {
	case float32:
		return float64(v)
	case int8:
		return int32(v)
	case int16:
		return int32(v)
	case uint8:
		return int32(v)
	case uint16:
		return int32(v)
	case int64:
		if v <= math.MaxInt32 {
			return int32(v)
		}
	case int:
		if v <= math.MaxInt32 {
			return int32(v)
		}
	}
	return n
}
