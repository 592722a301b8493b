// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/creachadair/jcell"
	"github.com/creachadair/jcell/numconv"
	"github.com/shopspring/decimal"
)

// convError wraps a numconv error with the corresponding error kind.
func convError(v *Value, err error) error {
	if errors.Is(err, numconv.ErrOverflow) {
		return fmt.Errorf("%w: %q", jcell.Overflow, v.text())
	}
	return fmt.Errorf("%w: %q is not a number", jcell.WrongKind, v.text())
}

func overflow(what string, x any) error {
	return fmt.Errorf("%w: %v does not fit %s", jcell.Overflow, x, what)
}

// AsBool returns the value of a Boolean.
func (v Value) AsBool() (bool, error) {
	if v.kind != BoolKind {
		return false, kindError(&v, "a bool")
	}
	return v.bits() != 0, nil
}

// AsInt64 converts a number to int64. Floating-point values are truncated
// toward zero. A string holding the text of an integer is also converted. It
// reports an error wrapping jcell.Overflow if the value is out of range.
func (v Value) AsInt64() (int64, error) {
	switch v.kind {
	case Int64Kind:
		return int64(v.bits()), nil
	case Uint64Kind:
		if v.bits() > math.MaxInt64 {
			return 0, overflow("int64", v.bits())
		}
		return int64(v.bits()), nil
	case HalfKind, DoubleKind:
		f := v.float()
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, overflow("int64", f)
		}
		return int64(f), nil
	case ShortStringKind, LongStringKind:
		z, err := numconv.ParseInt(v.text())
		if err != nil {
			return 0, convError(&v, err)
		}
		return z, nil
	}
	return 0, kindError(&v, "a number")
}

// AsUint64 converts a number to uint64. Floating-point values are truncated
// toward zero. A string holding the text of an integer is also converted. It
// reports an error wrapping jcell.Overflow if the value is out of range.
func (v Value) AsUint64() (uint64, error) {
	switch v.kind {
	case Int64Kind:
		if int64(v.bits()) < 0 {
			return 0, overflow("uint64", int64(v.bits()))
		}
		return v.bits(), nil
	case Uint64Kind:
		return v.bits(), nil
	case HalfKind, DoubleKind:
		f := v.float()
		if math.IsNaN(f) || f <= -1 || f >= math.MaxUint64 {
			return 0, overflow("uint64", f)
		}
		return uint64(f), nil
	case ShortStringKind, LongStringKind:
		text := v.text()
		if len(text) != 0 && text[0] == '-' {
			if !numconv.IsDigits(text) {
				return 0, convError(&v, numconv.ErrSyntax)
			} else if isZero(text[1:]) {
				return 0, nil
			}
			return 0, overflow("uint64", string(text))
		}
		z, err := numconv.ParseUint(text)
		if err != nil {
			return 0, convError(&v, err)
		}
		return z, nil
	}
	return 0, kindError(&v, "a number")
}

// isZero reports whether digits consists only of zeroes.
func isZero(digits []byte) bool {
	for _, d := range digits {
		if d != '0' {
			return false
		}
	}
	return true
}

// AsFloat64 converts a number to float64. Integers outside the range in
// which float64 is exact are rounded. A string holding the text of a number
// is also converted.
func (v Value) AsFloat64() (float64, error) {
	switch v.kind {
	case Int64Kind:
		return float64(int64(v.bits())), nil
	case Uint64Kind:
		return float64(v.bits()), nil
	case HalfKind, DoubleKind:
		return v.float(), nil
	case ShortStringKind, LongStringKind:
		f, err := numconv.ParseFloat(v.text())
		if err != nil {
			return f, convError(&v, err)
		}
		return f, nil
	}
	return 0, kindError(&v, "a number")
}

// AsString returns the text of a string. Other scalar values are converted
// to their JSON text, except that byte strings are encoded according to
// their tag (base64url by default). Arrays and objects are rendered as
// compact JSON.
func (v Value) AsString() (string, error) {
	switch v.kind {
	case ShortStringKind, LongStringKind:
		return string(v.text()), nil
	case NullKind:
		return "null", nil
	case BoolKind:
		return strconv.FormatBool(v.bits() != 0), nil
	case Int64Kind:
		return strconv.FormatInt(int64(v.bits()), 10), nil
	case Uint64Kind:
		return strconv.FormatUint(v.bits(), 10), nil
	case HalfKind, DoubleKind:
		return numconv.FormatFloat(v.float()), nil
	case ByteStringKind:
		return encodeBytes(v.ref.data, v.tag), nil
	}
	return v.JSON(), nil
}

func encodeBytes(data []byte, tag jcell.Tag) string {
	switch tag {
	case jcell.TagBase64:
		return base64.StdEncoding.EncodeToString(data)
	case jcell.TagBase16:
		return hex.EncodeToString(data)
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// AsBytes returns a copy of the data of a byte string. A string tagged with
// TagBase16 or TagBase64 is decoded in that encoding; other strings are
// decoded as unpadded base64url.
func (v Value) AsBytes() ([]byte, error) {
	switch v.kind {
	case ByteStringKind:
		return append([]byte{}, v.ref.data...), nil
	case ShortStringKind, LongStringKind:
		var out []byte
		var err error
		text := string(v.text())
		switch v.tag {
		case jcell.TagBase16:
			out, err = hex.DecodeString(text)
		case jcell.TagBase64:
			out, err = base64.StdEncoding.DecodeString(text)
		default:
			out, err = base64.RawURLEncoding.DecodeString(text)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: invalid %v data: %v", jcell.WrongKind, v.tag, err)
		}
		return out, nil
	}
	return nil, kindError(&v, "a byte string")
}

// AsDecimal converts a number, or a string holding the text of a number, to
// an arbitrary-precision decimal.
func (v Value) AsDecimal() (decimal.Decimal, error) {
	switch v.kind {
	case Int64Kind:
		return decimal.NewFromInt(int64(v.bits())), nil
	case Uint64Kind:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v.bits()), 0), nil
	case HalfKind, DoubleKind:
		f := v.float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, overflow("a decimal", f)
		}
		return decimal.NewFromFloat(f), nil
	case ShortStringKind, LongStringKind:
		d, err := decimal.NewFromString(string(v.text()))
		if err != nil {
			return decimal.Decimal{}, convError(&v, numconv.ErrSyntax)
		}
		return d, nil
	}
	return decimal.Decimal{}, kindError(&v, "a number")
}

// As converts v to a value of type T. The supported types are bool, int,
// int64, uint64, float64, string, []byte, decimal.Decimal and Value. For any
// other T, As reports an error wrapping jcell.WrongKind.
func As[T any](v Value) (T, error) {
	var zero T
	var out any
	var err error
	switch any(zero).(type) {
	case bool:
		out, err = v.AsBool()
	case int:
		var z int64
		z, err = v.AsInt64()
		if err == nil && int64(int(z)) != z {
			err = overflow("int", z)
		}
		out = int(z)
	case int64:
		out, err = v.AsInt64()
	case uint64:
		out, err = v.AsUint64()
	case float64:
		out, err = v.AsFloat64()
	case string:
		out, err = v.AsString()
	case []byte:
		out, err = v.AsBytes()
	case decimal.Decimal:
		out, err = v.AsDecimal()
	case Value:
		out = v.Clone()
	default:
		return zero, fmt.Errorf("%w: cannot convert %v to %T", jcell.WrongKind, v.kind, zero)
	}
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}
