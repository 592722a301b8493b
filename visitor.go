// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcell

// A Visitor receives events describing the structure of a JSON value, from a
// Parser or from a traversal of a tree. If a method reports an error the
// traversal stops and that error is returned to the caller. A method may
// return ErrStop to halt the traversal without error.
//
// Slice arguments are only valid for the duration of the method call; the
// visitor must copy any data it needs to retain beyond the lifetime of the
// call. The Pos argument gives the location of the first byte of the token
// that produced the event, or the zero Pos if the event did not come from
// source text.
//
// Producers ensure that corresponding Begin and End calls are correctly
// paired, and that within an object each value is preceded by a Key.
type Visitor interface {
	// Begin a new object, whose open brace is at loc.
	BeginObject(tag Tag, loc Pos) error

	// End the most-recently-opened object, whose close brace is at loc.
	EndObject(loc Pos) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(tag Tag, loc Pos) error

	// End the most-recently-opened array, whose close bracket is at loc.
	EndArray(loc Pos) error

	// Report the name of the next object member. The name is unescaped.
	Key(name []byte, loc Pos) error

	// Report a string value. The text is unescaped.
	String(text []byte, tag Tag, loc Pos) error

	// Report a byte string value.
	ByteString(data []byte, tag Tag, loc Pos) error

	// Report a signed integer value.
	Int64(v int64, tag Tag, loc Pos) error

	// Report an unsigned integer value.
	Uint64(v uint64, tag Tag, loc Pos) error

	// Report a floating-point value.
	Double(v float64, tag Tag, loc Pos) error

	// Report a Boolean value.
	Bool(v bool, loc Pos) error

	// Report a null value.
	Null(tag Tag, loc Pos) error
}

// HalfVisitor is an optional interface that a Visitor may implement to
// receive half-precision values. Producers deliver half values to visitors
// that do not implement it by calling Double.
type HalfVisitor interface {
	// Report a half-precision value given as IEEE 754 binary16 bits.
	Half(bits uint16, tag Tag, loc Pos) error
}

// CommentVisitor is an optional interface that a Visitor may implement to
// handle comments. If a visitor implements this method and comments are
// enabled in the parser, Comment is called for each comment in the input.
// Otherwise comments are silently discarded.
type CommentVisitor interface {
	// Process the line or block comment at the specified location.
	// Line comments include their leading "//" and trailing line break (if
	// present). Block comments include their leading "/*" and trailing "*/".
	Comment(text []byte, loc Pos) error
}

// Flusher is an optional interface that a Visitor may implement to be
// notified when a complete top-level document has been delivered.
type Flusher interface {
	Flush() error
}

// flush calls v.Flush if v implements Flusher.
func flush(v Visitor) error {
	if f, ok := v.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
