// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcell

import (
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/creachadair/jcell/numconv"
)

// Token is the type of a parse event reported by a Cursor.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid     Token = iota // no current event
	BeginObject              // start of an object "{"
	EndObject                // end of an object "}"
	BeginArray               // start of an array "["
	EndArray                 // end of an array "]"
	Key                      // object member name
	String                   // string value
	ByteString               // byte string value
	Int64                    // signed integer value
	Uint64                   // unsigned integer value
	Double                   // floating-point value
	Bool                     // true or false
	Null                     // null
	Comment                  // comment (when enabled)
)

var tokenStr = [...]string{
	Invalid:     "invalid token",
	BeginObject: "begin object",
	EndObject:   "end object",
	BeginArray:  "begin array",
	EndArray:    "end array",
	Key:         "key",
	String:      "string",
	ByteString:  "byte string",
	Int64:       "int64",
	Uint64:      "uint64",
	Double:      "double",
	Bool:        "bool",
	Null:        "null",
	Comment:     "comment",
}

func (t Token) String() string {
	if int(t) >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[t]
}

// A Cursor reads a JSON document as a sequence of parse events. Each call to
// Next advances the cursor to the next event, which is described by the
// Token, Text, Tag and Location methods and the typed accessors. Input is
// read in chunks as needed; no more of the document is parsed than is
// required to report the next event.
//
// If the options select StopAtDocument, the cursor reports the events of each
// of a sequence of concatenated documents in turn. Otherwise the input must
// hold exactly one document.
type Cursor struct {
	s     *Stream
	multi bool
	err   error

	tok  Token
	tag  Tag
	loc  Pos
	text []byte
	bits uint64 // Int64, Uint64, Double (as float bits), Bool
}

// NewCursor constructs a cursor that reads input from r. If opts == nil,
// strict JSON is accepted.
func NewCursor(r io.Reader, opts *Options) *Cursor {
	c := &Cursor{s: NewStream(r, opts)}
	c.multi = c.s.p.opts.Trailing == StopAtDocument
	return c
}

// SetChunkSize sets the size of the reads from the underlying reader.
func (c *Cursor) SetChunkSize(n int) { c.s.SetChunkSize(n) }

// Next advances c to the next event of the input, or reports an error. At
// the end of the input, Next returns io.EOF. Syntax errors have concrete type
// *SyntaxError; once Next reports an error, it reports the same error on
// every later call.
func (c *Cursor) Next() error {
	if c.err != nil {
		return c.err
	}
	c.tok, c.tag, c.text, c.bits = Invalid, TagNone, c.text[:0], 0
	for {
		var err error
		if c.multi {
			err = c.s.ParseOne(cursorVisitor{c})
		} else {
			err = c.s.Parse(cursorVisitor{c})
		}
		switch {
		case errors.Is(err, ErrStop):
			return nil
		case err == nil && c.multi:
			continue // the document ended without a further event
		case err == nil:
			err = io.EOF
		}
		c.tok = Invalid
		c.err = err
		return err
	}
}

// Token returns the type of the current event.
func (c *Cursor) Token() Token { return c.tok }

// Err returns the last error reported by Next, or nil.
func (c *Cursor) Err() error { return c.err }

// Tag returns the semantic tag of the current event.
func (c *Cursor) Tag() Tag { return c.tag }

// Location returns the position in the input of the token that produced the
// current event.
func (c *Cursor) Location() Pos { return c.loc }

// Depth reports the number of objects and arrays open after the current
// event.
func (c *Cursor) Depth() int { return c.s.p.Depth() }

// Text returns the text of the current event: the unescaped text of a key,
// string or comment, the data of a byte string, and the JSON text of other
// values and of structural events. The return value is only valid until the
// next call of Next.
func (c *Cursor) Text() []byte {
	switch c.tok {
	case BeginObject:
		return []byte("{")
	case EndObject:
		return []byte("}")
	case BeginArray:
		return []byte("[")
	case EndArray:
		return []byte("]")
	case Int64:
		return strconv.AppendInt(nil, int64(c.bits), 10)
	case Uint64:
		return strconv.AppendUint(nil, c.bits, 10)
	case Double:
		return numconv.AppendFloat(nil, math.Float64frombits(c.bits))
	case Bool:
		return strconv.AppendBool(nil, c.bits != 0)
	case Null:
		return []byte("null")
	}
	return c.text
}

// Copy returns a copy of the text of the current event.
func (c *Cursor) Copy() []byte { return append([]byte(nil), c.Text()...) }

// Int64 returns the value of the current event as a signed integer. Doubles
// are truncated toward zero. It returns 0 for events that are not numbers.
func (c *Cursor) Int64() int64 {
	switch c.tok {
	case Int64, Uint64:
		return int64(c.bits)
	case Double:
		return int64(math.Float64frombits(c.bits))
	}
	return 0
}

// Uint64 returns the value of the current event as an unsigned integer.
// It returns 0 for events that are not numbers.
func (c *Cursor) Uint64() uint64 {
	switch c.tok {
	case Int64, Uint64:
		return c.bits
	case Double:
		return uint64(math.Float64frombits(c.bits))
	}
	return 0
}

// Float64 returns the value of the current event as a float64. It returns 0
// for events that are not numbers.
func (c *Cursor) Float64() float64 {
	switch c.tok {
	case Int64:
		return float64(int64(c.bits))
	case Uint64:
		return float64(c.bits)
	case Double:
		return math.Float64frombits(c.bits)
	}
	return 0
}

// Bool reports whether the current event is the value true.
func (c *Cursor) Bool() bool { return c.tok == Bool && c.bits != 0 }

// ReadTo delivers the current event to v. If the current event begins an
// object or array, ReadTo also delivers every event through the end of that
// container, and the cursor is left at the matching end event.
func (c *Cursor) ReadTo(v Visitor) error {
	if c.tok == Invalid {
		if c.err != nil {
			return c.err
		}
		return errors.New("no current event")
	}
	for depth := 0; ; {
		if err := c.send(v); err != nil {
			return err
		}
		switch c.tok {
		case BeginObject, BeginArray:
			depth++
		case EndObject, EndArray:
			depth--
		}
		if depth <= 0 {
			return nil
		}
		if err := c.Next(); err == io.EOF {
			return &SyntaxError{Kind: UnexpectedEOF, Pos: c.s.Pos(), Message: "incomplete value"}
		} else if err != nil {
			return err
		}
	}
}

// send delivers the current event to v.
func (c *Cursor) send(v Visitor) error {
	switch c.tok {
	case BeginObject:
		return v.BeginObject(c.tag, c.loc)
	case EndObject:
		return v.EndObject(c.loc)
	case BeginArray:
		return v.BeginArray(c.tag, c.loc)
	case EndArray:
		return v.EndArray(c.loc)
	case Key:
		return v.Key(c.text, c.loc)
	case String:
		return v.String(c.text, c.tag, c.loc)
	case ByteString:
		return v.ByteString(c.text, c.tag, c.loc)
	case Int64:
		return v.Int64(int64(c.bits), c.tag, c.loc)
	case Uint64:
		return v.Uint64(c.bits, c.tag, c.loc)
	case Double:
		return v.Double(math.Float64frombits(c.bits), c.tag, c.loc)
	case Bool:
		return v.Bool(c.bits != 0, c.loc)
	case Null:
		return v.Null(c.tag, c.loc)
	case Comment:
		if cv, ok := v.(CommentVisitor); ok {
			return cv.Comment(c.text, c.loc)
		}
		return nil
	}
	return nil
}

// cursorVisitor records a single event in its cursor and stops the parser.
type cursorVisitor struct{ c *Cursor }

func (v cursorVisitor) set(tok Token, tag Tag, loc Pos, text []byte, bits uint64) error {
	c := v.c
	c.tok, c.tag, c.loc, c.bits = tok, tag, loc, bits
	c.text = append(c.text[:0], text...)
	return ErrStop
}

func (v cursorVisitor) BeginObject(tag Tag, loc Pos) error {
	return v.set(BeginObject, tag, loc, nil, 0)
}
func (v cursorVisitor) EndObject(loc Pos) error { return v.set(EndObject, TagNone, loc, nil, 0) }
func (v cursorVisitor) BeginArray(tag Tag, loc Pos) error {
	return v.set(BeginArray, tag, loc, nil, 0)
}
func (v cursorVisitor) EndArray(loc Pos) error         { return v.set(EndArray, TagNone, loc, nil, 0) }
func (v cursorVisitor) Key(name []byte, loc Pos) error { return v.set(Key, TagNone, loc, name, 0) }
func (v cursorVisitor) String(text []byte, tag Tag, loc Pos) error {
	return v.set(String, tag, loc, text, 0)
}
func (v cursorVisitor) ByteString(data []byte, tag Tag, loc Pos) error {
	return v.set(ByteString, tag, loc, data, 0)
}
func (v cursorVisitor) Int64(z int64, tag Tag, loc Pos) error {
	return v.set(Int64, tag, loc, nil, uint64(z))
}
func (v cursorVisitor) Uint64(z uint64, tag Tag, loc Pos) error {
	return v.set(Uint64, tag, loc, nil, z)
}
func (v cursorVisitor) Double(f float64, tag Tag, loc Pos) error {
	return v.set(Double, tag, loc, nil, math.Float64bits(f))
}
func (v cursorVisitor) Bool(b bool, loc Pos) error {
	if b {
		return v.set(Bool, TagNone, loc, nil, 1)
	}
	return v.set(Bool, TagNone, loc, nil, 0)
}
func (v cursorVisitor) Null(tag Tag, loc Pos) error { return v.set(Null, tag, loc, nil, 0) }
func (v cursorVisitor) Comment(text []byte, loc Pos) error {
	return v.set(Comment, TagNone, loc, text, 0)
}
