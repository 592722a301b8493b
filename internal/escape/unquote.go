// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, and a
// surrogate pair written as two \u escapes is combined into one rune. Invalid
// escapes and unpaired surrogates are replaced by the Unicode replacement
// rune. Unquote reports an error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the next rune after the escape to figure out what to
		// substitute. There should not be errors here, but if there are, insert
		// replacement runes (utf8.RuneError == '\ufffd').
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		c, simple := Simple(byte(r))
		if simple && r < utf8.RuneSelf {
			dec = append(dec, c)
		} else if r == 'u' {
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, ok := parseHex(src.SliceTo(4))
			src = src.SliceFrom(4)
			if ok && IsHighSurrogate(v) && src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
				if lo, ok := parseHex(src.SliceFrom(2).SliceTo(4)); ok && IsLowSurrogate(lo) {
					v = CombineSurrogates(v, lo)
					src = src.SliceFrom(6)
				}
			}
			if !ok || IsSurrogate(v) {
				v = utf8.RuneError
			}
			dec = utf8.AppendRune(dec, v)
		} else {
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// Simple reports the byte denoted by the single-character escape \c, and
// whether c is a valid single-character escape.
func Simple(c byte) (byte, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// HexValue reports the value of the hexadecimal digit b, or -1.
func HexValue(b byte) rune {
	switch {
	case '0' <= b && b <= '9':
		return rune(b - '0')
	case 'a' <= b && b <= 'f':
		return rune(b - 'a' + 10)
	case 'A' <= b && b <= 'F':
		return rune(b - 'A' + 10)
	}
	return -1
}

func parseHex(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		d := HexValue(data.At(i))
		if d < 0 {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}
