package jsonutils

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleToString(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{3.0, "3"},
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{123.456, "123.456"},
		{100, "100"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-1.25e-10, "-1.25e-10"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.SmallestNonzeroFloat64, "5e-324"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, DoubleToString(tt.input))
		})
	}
}

func TestDoubleToStringNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, "null", DoubleToString(f))

		_, err := NumberToString(f)
		assert.ErrorIs(t, err, ErrInvalidNumber)
		assert.ErrorIs(t, TestValidity(f), ErrInvalidNumber)
	}
}

func TestDoubleToStringRoundTrip(t *testing.T) {
	values := []float64{
		0.1, 0.2, 0.3, 1.0 / 3, 2.0 / 3, 100, 1e-6, 9.999999e20, 1e21, 12345.678,
		-0.5, 5e-324, 1.7976931348623157e308, 4.35, 1234567890123456789,
	}

	for _, f := range values {
		s := DoubleToString(f)

		parsed, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, s)
		assert.Equal(t, f, parsed, s)

		if strings.Contains(s, ".") && !strings.ContainsAny(s, "eE") {
			assert.False(t, strings.HasSuffix(s, "0"), "redundant zero in %s", s)
		}
		assert.False(t, strings.HasSuffix(s, "."), "dangling point in %s", s)
	}
}

func TestNumberToString(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"int", 42, "42"},
		{"negative int64", int64(-9000000000), "-9000000000"},
		{"int8", int8(-128), "-128"},
		{"uint64", uint64(math.MaxUint64), "18446744073709551615"},
		{"float64 whole", 3.0, "3"},
		{"float64 fraction", 2.75, "2.75"},
		{"float32", float32(0.1), "0.1"},
		{"float32 whole", float32(16), "16"},
		{"json number trailing zeros", json.Number("3.50"), "3.5"},
		{"json number whole", json.Number("2.000"), "2"},
		{"json number exponent kept", json.Number("1.50E+3"), "1.50E+3"},
		{"text number", Number("-0.250"), "-0.25"},
		{"text number integer", Number("100"), "100"},
		{"big int", huge, "123456789012345678901234567890"},
		{"big float", big.NewFloat(1.5), "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NumberToString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNumberToStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"float32 infinity", float32(math.Inf(-1))},
		{"string", "12"},
		{"bool", true},
		{"malformed json number", json.Number("1.")},
		{"word number", Number("NaN")},
		{"leading zero", Number("012")},
		{"nil big int", (*big.Int)(nil)},
		{"infinite big float", new(big.Float).SetInf(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NumberToString(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidNumber)
			assert.True(t, IsInvalidNumber(err))
		})
	}
}

func TestTestValidity(t *testing.T) {
	assert.NoError(t, TestValidity(1.5))
	assert.NoError(t, TestValidity(float32(2)))
	assert.NoError(t, TestValidity("NaN"))
	assert.NoError(t, TestValidity(nil))
	assert.NoError(t, TestValidity(big.NewFloat(3)))

	assert.ErrorIs(t, TestValidity(math.NaN()), ErrInvalidNumber)
	assert.ErrorIs(t, TestValidity(float32(math.NaN())), ErrInvalidNumber)
	assert.ErrorIs(t, TestValidity(new(big.Float).SetInf(true)), ErrInvalidNumber)
}

func TestTransformNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{"float32 promoted", float32(1.5), float64(1.5)},
		{"int8 promoted", int8(-3), int32(-3)},
		{"int16 promoted", int16(1000), int32(1000)},
		{"uint8 promoted", uint8(200), int32(200)},
		{"uint16 promoted", uint16(60000), int32(60000)},
		{"int64 at max int32", int64(2147483647), int32(2147483647)},
		{"int64 above max int32", int64(2147483648), int64(2147483648)},
		{"int64 small", int64(5), int32(5)},
		{"int64 below min int32 truncates", int64(-5000000000), int32(-705032704)},
		{"int at max int32", 2147483647, int32(2147483647)},
		{"int above max int32", 2147483648, 2147483648},
		{"int32 unchanged", int32(7), int32(7)},
		{"uint64 unchanged", uint64(1), uint64(1)},
		{"float64 unchanged", 2.5, 2.5},
		{"json number unchanged", json.Number("1"), json.Number("1")},
		{"string unchanged", "x", "x"},
		{"nil unchanged", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransformNumber(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.IsType(t, tt.expected, got)
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric(1))
	assert.True(t, IsNumeric(float32(1)))
	assert.True(t, IsNumeric(json.Number("1")))
	assert.True(t, IsNumeric(Number("1")))
	assert.True(t, IsNumeric(big.NewInt(1)))
	assert.False(t, IsNumeric("1"))
	assert.False(t, IsNumeric(nil))
	assert.False(t, IsNumeric(namedInt(1)))

	// wider than the classifier's number test
	assert.False(t, IsNumber(json.Number("1")))
}
