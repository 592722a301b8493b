// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package numconv_test

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/jcell/numconv"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		err   error
	}{
		{"0", 0, nil},
		{"-0", 0, nil},
		{"15", 15, nil},
		{"-15", -15, nil},
		{"9223372036854775807", math.MaxInt64, nil},
		{"-9223372036854775808", math.MinInt64, nil},
		{"9223372036854775808", 0, numconv.ErrOverflow},
		{"-9223372036854775809", 0, numconv.ErrOverflow},
		{"92233720368547758070", 0, numconv.ErrOverflow},
		{"", 0, numconv.ErrSyntax},
		{"-", 0, numconv.ErrSyntax},
		{"1x", 0, numconv.ErrSyntax},
	}
	for _, tc := range tests {
		got, err := numconv.ParseInt([]byte(tc.input))
		if !errors.Is(err, tc.err) {
			t.Errorf("ParseInt(%q): got error %v, want %v", tc.input, err, tc.err)
		} else if got != tc.want {
			t.Errorf("ParseInt(%q): got %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseUint(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
		err   error
	}{
		{"0", 0, nil},
		{"12345", 12345, nil},
		{"18446744073709551615", math.MaxUint64, nil},
		{"18446744073709551616", 0, numconv.ErrOverflow},
		{"184467440737095516150", 0, numconv.ErrOverflow},
		{"", 0, numconv.ErrSyntax},
		{"-1", 0, numconv.ErrSyntax},
	}
	for _, tc := range tests {
		got, err := numconv.ParseUint([]byte(tc.input))
		if !errors.Is(err, tc.err) {
			t.Errorf("ParseUint(%q): got error %v, want %v", tc.input, err, tc.err)
		} else if got != tc.want {
			t.Errorf("ParseUint(%q): got %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		err   error
	}{
		{"0", 0, nil},
		{"3.5", 3.5, nil},
		{"-0.001E-100", -0.001e-100, nil},
		{"5e+9", 5e9, nil},
		{"1e400", math.Inf(1), numconv.ErrOverflow},
		{"-1e400", math.Inf(-1), numconv.ErrOverflow},
		{"1e-400", 0, nil},
		{"1.2.3", 0, numconv.ErrSyntax},
	}
	for _, tc := range tests {
		got, err := numconv.ParseFloat([]byte(tc.input))
		if !errors.Is(err, tc.err) {
			t.Errorf("ParseFloat(%q): got error %v, want %v", tc.input, err, tc.err)
		} else if got != tc.want {
			t.Errorf("ParseFloat(%q): got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{5, "5.0"},
		{3.5, "3.5"},
		{0.1, "0.1"},
		{-6.32, "-6.32"},
		{1e20, "100000000000000000000.0"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{0.000001, "0.000001"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range tests {
		if got := numconv.FormatFloat(tc.input); got != tc.want {
			t.Errorf("FormatFloat(%v): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, v := range []float64{
		0.1, 1.0 / 3, math.Pi, 2.5e-8, 123456789.125, math.SmallestNonzeroFloat64,
		-98765.4321, 1 << 53, 7e22,
	} {
		text := numconv.FormatFloat(v)
		got, err := numconv.ParseFloat([]byte(text))
		if err != nil {
			t.Errorf("ParseFloat(%q): unexpected error: %v", text, err)
		} else if got != v {
			t.Errorf("Round trip %v: got %v via %q", v, got, text)
		}
	}
}

func TestHalf(t *testing.T) {
	tests := []struct {
		bits uint16
		want float64
	}{
		{0x0000, 0},
		{0x3c00, 1},
		{0xc000, -2},
		{0x3800, 0.5},
		{0x7bff, 65504},
		{0x7c00, math.Inf(1)},
	}
	for _, tc := range tests {
		if got := numconv.HalfToFloat(tc.bits); got != tc.want {
			t.Errorf("HalfToFloat(%#04x): got %v, want %v", tc.bits, got, tc.want)
		}
		if got := numconv.FloatToHalf(tc.want); got != tc.bits {
			t.Errorf("FloatToHalf(%v): got %#04x, want %#04x", tc.want, got, tc.bits)
		}
	}
}

func TestIsDigits(t *testing.T) {
	for in, want := range map[string]bool{
		"": false, "-": false, "0": true, "-12": true, "1.5": false, "1e3": false, "--1": false,
	} {
		if got := numconv.IsDigits([]byte(in)); got != want {
			t.Errorf("IsDigits(%q): got %v, want %v", in, got, want)
		}
	}
}
