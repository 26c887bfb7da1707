package internal

import (
	"math"
	"strconv"
	"strings"
)

// AppendFloat appends the ECMAScript text form of a finite float.
// Plain decimal notation is used for 1e-6 <= |f| < 1e21, exponent
// notation otherwise. bits selects float32 or float64 shortest digits.
func AppendFloat(dst []byte, f float64, bits int) []byte {
	if bits == 32 {
		f = float64(float32(f))
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	dst = strconv.AppendFloat(dst, f, format, -1, bits)
	if format == 'e' {
		// e-09 becomes e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

// FormatFloat returns the text AppendFloat would append
func FormatFloat(f float64, bits int) string {
	var buf [32]byte
	return string(AppendFloat(buf[:0], f, bits))
}

// TrimFractionZeros removes trailing zeros after a decimal point and then a
// dangling point. Text with an exponent marker is returned unchanged.
func TrimFractionZeros(s string) string {
	if strings.IndexByte(s, '.') <= 0 || strings.ContainsAny(s, "eE") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// IsValidNumberString reports whether s is a JSON number literal:
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func IsValidNumberString(s string) bool {
	i := 0
	n := len(s)
	if i < n && s[i] == '-' {
		i++
	}
	switch {
	case i < n && s[i] == '0':
		i++
	case i < n && '1' <= s[i] && s[i] <= '9':
		for i < n && IsDigit(s[i]) {
			i++
		}
	default:
		return false
	}

	if i < n && s[i] == '.' {
		i++
		start := i
		for i < n && IsDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < n && IsDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}

	return i == n
}
