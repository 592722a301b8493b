// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package numconv implements conversions between JSON number text and Go
// numeric values.
//
// The integer parsers accept only a pre-validated run of decimal digits with
// an optional leading minus sign, and detect overflow before it happens rather
// than after wrapping. Callers that receive ErrOverflow are expected to keep
// the original text instead, for example as a "bigint" string.
package numconv

import (
	"errors"
	"math"
	"strconv"

	"github.com/x448/float16"
	"go4.org/mem"
)

var (
	// ErrOverflow is reported when a value does not fit the target type.
	ErrOverflow = errors.New("numeric overflow")

	// ErrSyntax is reported when the input is not a well-formed number.
	ErrSyntax = errors.New("invalid number syntax")
)

// ParseInt parses digits as a signed 64-bit decimal integer. The input may
// begin with a single "-". It reports ErrOverflow if the value is outside the
// range of int64.
func ParseInt(digits []byte) (int64, error) {
	neg := len(digits) != 0 && digits[0] == '-'
	if neg {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return 0, ErrSyntax
	}

	// Accumulate as a negative value, since the magnitude of math.MinInt64
	// exceeds that of math.MaxInt64.
	const lim = math.MinInt64 / 10
	var v int64
	for _, b := range digits {
		if b < '0' || b > '9' {
			return 0, ErrSyntax
		}
		d := int64(b - '0')
		if v < lim || v*10 < math.MinInt64+d {
			return 0, ErrOverflow
		}
		v = v*10 - d
	}
	if !neg {
		if v == math.MinInt64 {
			return 0, ErrOverflow
		}
		v = -v
	}
	return v, nil
}

// ParseUint parses digits as an unsigned 64-bit decimal integer.
// It reports ErrOverflow if the value exceeds math.MaxUint64.
func ParseUint(digits []byte) (uint64, error) {
	if len(digits) == 0 {
		return 0, ErrSyntax
	}
	const lim = math.MaxUint64 / 10
	var v uint64
	for _, b := range digits {
		if b < '0' || b > '9' {
			return 0, ErrSyntax
		}
		d := uint64(b - '0')
		if v > lim || v*10 > math.MaxUint64-d {
			return 0, ErrOverflow
		}
		v = v*10 + d
	}
	return v, nil
}

// ParseFloat converts the decimal text of a JSON number to the nearest
// float64. The conversion does not depend on locale. If the magnitude is too
// large to represent, ParseFloat reports ErrOverflow along with an infinity of
// the appropriate sign.
func ParseFloat(text []byte) (float64, error) {
	v, err := mem.ParseFloat(mem.B(text), 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
			if math.IsInf(v, 0) {
				return v, ErrOverflow
			}
			return v, nil // underflow to zero or a subnormal is not an error
		}
		return 0, ErrSyntax
	}
	return v, nil
}

// FormatFloat returns the shortest decimal text for v that parses back to
// exactly v. See AppendFloat.
func FormatFloat(v float64) string { return string(AppendFloat(nil, v)) }

// AppendFloat appends the shortest round-tripping decimal text for v to dst.
//
// Finite values always include a fraction or exponent, so that the text is
// read back as a floating-point number rather than an integer. Exponent form
// is used for magnitudes below 1e-6 or at least 1e21. NaN and infinities are
// written as NaN, Infinity and -Infinity, which are not valid JSON; callers
// emitting strict JSON must handle them first.
func AppendFloat(dst []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...)
	case math.IsInf(v, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(v, -1):
		return append(dst, "-Infinity"...)
	}

	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, format, -1, 64)
	if format == 'e' {
		// Trim a redundant leading zero from a two-digit exponent: e-07 → e-7.
		n := len(dst)
		if n-start >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
		return dst
	}
	for _, b := range dst[start:] {
		if b == '.' {
			return dst
		}
	}
	return append(dst, ".0"...)
}

// HalfToFloat converts IEEE 754 binary16 bits to a float64.
func HalfToFloat(h uint16) float64 { return float64(float16.Frombits(h).Float32()) }

// FloatToHalf converts v to the nearest IEEE 754 binary16 value and returns
// its bits. Values too large in magnitude become infinities.
func FloatToHalf(v float64) uint16 { return float16.Fromfloat32(float32(v)).Bits() }

// IsDigits reports whether text is a nonempty run of decimal digits with an
// optional leading minus sign.
func IsDigits(text []byte) bool {
	if len(text) != 0 && text[0] == '-' {
		text = text[1:]
	}
	if len(text) == 0 {
		return false
	}
	for _, b := range text {
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}
