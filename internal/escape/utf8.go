// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

// IsHighSurrogate reports whether r is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(r rune) bool { return 0xD800 <= r && r < 0xDC00 }

// IsLowSurrogate reports whether r is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(r rune) bool { return 0xDC00 <= r && r < 0xE000 }

// IsSurrogate reports whether r is in the UTF-16 surrogate range.
func IsSurrogate(r rune) bool { return 0xD800 <= r && r < 0xE000 }

// CombineSurrogates returns the rune encoded by the surrogate pair hi, lo.
func CombineSurrogates(hi, lo rune) rune {
	return 0x10000 + (hi-0xD800)<<10 + (lo - 0xDC00)
}

// A UTF8State validates a UTF-8 byte sequence one byte at a time, so that a
// multi-byte encoding may be split across separate inputs.
//
// The zero value is ready for use and expects the first byte of a sequence.
type UTF8State struct {
	need   uint8 // continuation bytes still required
	lo, hi byte  // permitted range for the next continuation byte
}

// Pending reports whether s is in the middle of a multi-byte sequence.
func (s UTF8State) Pending() bool { return s.need != 0 }

// Next advances s by one byte. It reports whether b is acceptable at this
// point. Overlong encodings, surrogate code points, and values above
// U+10FFFF are rejected. After a rejection s is reset to expect a new
// sequence.
func (s *UTF8State) Next(b byte) bool {
	if s.need != 0 {
		if b < s.lo || b > s.hi {
			*s = UTF8State{}
			return false
		}
		s.need--
		s.lo, s.hi = 0x80, 0xBF
		return true
	}
	switch {
	case b < 0x80:
		return true
	case 0xC2 <= b && b <= 0xDF:
		s.need, s.lo, s.hi = 1, 0x80, 0xBF
	case b == 0xE0:
		s.need, s.lo, s.hi = 2, 0xA0, 0xBF
	case b == 0xED:
		s.need, s.lo, s.hi = 2, 0x80, 0x9F
	case 0xE1 <= b && b <= 0xEF:
		s.need, s.lo, s.hi = 2, 0x80, 0xBF
	case b == 0xF0:
		s.need, s.lo, s.hi = 3, 0x90, 0xBF
	case 0xF1 <= b && b <= 0xF3:
		s.need, s.lo, s.hi = 3, 0x80, 0xBF
	case b == 0xF4:
		s.need, s.lo, s.hi = 3, 0x80, 0x8F
	default:
		return false
	}
	return true
}
