// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcell

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"math"
	"strconv"

	"github.com/creachadair/jcell/internal/escape"
	"github.com/creachadair/jcell/numconv"
	"go4.org/mem"
)

// An Encoder is a Visitor that writes compact JSON text to an io.Writer.
// Successive top-level values are separated by newlines.
//
// Strings tagged TagBigInt or TagBigDec whose text is a valid JSON number are
// written as bare numbers. Byte strings are written as strings in base64url
// encoding, or as base64 or base16 if so tagged. NaN and infinite doubles are
// written as null.
//
// Output is buffered; it is written through when a top-level value is
// complete, or when Flush is called.
type Encoder struct {
	w    io.Writer
	buf  []byte
	stk  []encFrame
	docs int
	err  error
}

type encFrame struct {
	object bool
	n      int // number of values (arrays) or members (objects) written
}

// NewEncoder constructs an Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Flush writes any buffered output to the underlying writer.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if len(e.buf) != 0 {
		_, e.err = e.w.Write(e.buf)
		e.buf = e.buf[:0]
	}
	return e.err
}

// value prepares to write a value, adding a separator if needed.
func (e *Encoder) value() {
	if len(e.stk) == 0 {
		if e.docs > 0 {
			e.buf = append(e.buf, '\n')
		}
		return
	}
	f := &e.stk[len(e.stk)-1]
	if !f.object {
		if f.n > 0 {
			e.buf = append(e.buf, ',')
		}
		f.n++
	}
}

// done finishes a value, flushing if it completed a top-level value.
func (e *Encoder) done() error {
	if len(e.stk) == 0 {
		e.docs++
		return e.Flush()
	} else if len(e.buf) >= 1<<14 {
		return e.Flush()
	}
	return e.err
}

// BeginObject implements part of the Visitor interface.
func (e *Encoder) BeginObject(_ Tag, _ Pos) error {
	e.value()
	e.buf = append(e.buf, '{')
	e.stk = append(e.stk, encFrame{object: true})
	return e.err
}

// EndObject implements part of the Visitor interface.
func (e *Encoder) EndObject(_ Pos) error {
	e.buf = append(e.buf, '}')
	e.stk = e.stk[:len(e.stk)-1]
	return e.done()
}

// BeginArray implements part of the Visitor interface.
func (e *Encoder) BeginArray(_ Tag, _ Pos) error {
	e.value()
	e.buf = append(e.buf, '[')
	e.stk = append(e.stk, encFrame{})
	return e.err
}

// EndArray implements part of the Visitor interface.
func (e *Encoder) EndArray(_ Pos) error {
	e.buf = append(e.buf, ']')
	e.stk = e.stk[:len(e.stk)-1]
	return e.done()
}

// Key implements part of the Visitor interface.
func (e *Encoder) Key(name []byte, _ Pos) error {
	f := &e.stk[len(e.stk)-1]
	if f.n > 0 {
		e.buf = append(e.buf, ',')
	}
	f.n++
	e.buf = e.appendString(name)
	e.buf = append(e.buf, ':')
	return e.err
}

// String implements part of the Visitor interface.
func (e *Encoder) String(text []byte, tag Tag, _ Pos) error {
	e.value()
	if (tag == TagBigInt || tag == TagBigDec) && isNumberText(text) {
		e.buf = append(e.buf, text...)
	} else {
		e.buf = e.appendString(text)
	}
	return e.done()
}

// ByteString implements part of the Visitor interface.
func (e *Encoder) ByteString(data []byte, tag Tag, _ Pos) error {
	e.value()
	var text string
	switch tag {
	case TagBase64:
		text = base64.StdEncoding.EncodeToString(data)
	case TagBase16:
		text = hex.EncodeToString(data)
	default:
		text = base64.RawURLEncoding.EncodeToString(data)
	}
	e.buf = append(e.buf, '"')
	e.buf = append(e.buf, text...)
	e.buf = append(e.buf, '"')
	return e.done()
}

// Int64 implements part of the Visitor interface.
func (e *Encoder) Int64(v int64, _ Tag, _ Pos) error {
	e.value()
	e.buf = strconv.AppendInt(e.buf, v, 10)
	return e.done()
}

// Uint64 implements part of the Visitor interface.
func (e *Encoder) Uint64(v uint64, _ Tag, _ Pos) error {
	e.value()
	e.buf = strconv.AppendUint(e.buf, v, 10)
	return e.done()
}

// Half implements the HalfVisitor interface.
func (e *Encoder) Half(bits uint16, tag Tag, loc Pos) error {
	return e.Double(numconv.HalfToFloat(bits), tag, loc)
}

// Double implements part of the Visitor interface.
func (e *Encoder) Double(v float64, _ Tag, _ Pos) error {
	e.value()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.buf = append(e.buf, "null"...)
	} else {
		e.buf = numconv.AppendFloat(e.buf, v)
	}
	return e.done()
}

// Bool implements part of the Visitor interface.
func (e *Encoder) Bool(v bool, _ Pos) error {
	e.value()
	e.buf = strconv.AppendBool(e.buf, v)
	return e.done()
}

// Null implements part of the Visitor interface.
func (e *Encoder) Null(_ Tag, _ Pos) error {
	e.value()
	e.buf = append(e.buf, "null"...)
	return e.done()
}

func (e *Encoder) appendString(text []byte) []byte {
	buf := append(e.buf, '"')
	buf = escape.AppendQuote(buf, mem.B(text))
	return append(buf, '"')
}

// isNumberText reports whether text is a complete JSON number.
func isNumberText(text []byte) bool {
	i, n := 0, len(text)
	digits := func() int {
		s := i
		for i < n && '0' <= text[i] && text[i] <= '9' {
			i++
		}
		return i - s
	}
	if i < n && text[i] == '-' {
		i++
	}
	if i < n && text[i] == '0' {
		i++
	} else if digits() == 0 {
		return false
	}
	if i < n && text[i] == '.' {
		i++
		if digits() == 0 {
			return false
		}
	}
	if i < n && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < n && (text[i] == '+' || text[i] == '-') {
			i++
		}
		if digits() == 0 {
			return false
		}
	}
	return i == n
}
