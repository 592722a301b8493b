// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON string.
// The enclosing quotation marks are not added.
func Quote(src mem.RO) []byte { return AppendQuote(make([]byte, 0, src.Len()), src) }

// AppendQuote appends the escaped form of src to dst and returns the extended
// slice. Bytes that are not valid UTF-8 are written as \ufffd.
func AppendQuote(dst []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		b := src.At(0)
		if b < utf8.RuneSelf {
			if b < ' ' {
				if c := controlEsc[b]; c != 0 {
					dst = append(dst, '\\', c)
				} else {
					dst = append(dst, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
				}
			} else if b == '\\' || b == '"' {
				dst = append(dst, '\\', b)
			} else {
				dst = append(dst, b)
			}
			src = src.SliceFrom(1)
			continue
		}

		r, n := mem.DecodeRune(src)
		switch {
		case r == utf8.RuneError && n <= 1:
			dst = append(dst, `\ufffd`...)
			n = 1
		case r == '\u2028': // line separator
			dst = append(dst, `\u2028`...)
		case r == '\u2029': // paragraph separator
			dst = append(dst, `\u2029`...)
		default:
			dst = mem.Append(dst, src.SliceTo(n))
		}
		src = src.SliceFrom(n)
	}
	return dst
}
