// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcell implements an incremental, event-driven JSON parser.
//
// # Parsing
//
// The Parser type consumes JSON text supplied in chunks of any size, and
// reports the structure of the input by calling methods on a Visitor. A token
// may be split across chunk boundaries at any byte; the parser suspends in
// the middle of the token and resumes when more input arrives:
//
//	p := jcell.NewParser(nil)
//	p.Update([]byte(`[fal`))
//	p.ParseSome(v)          // reports BeginArray
//	p.Update([]byte(`se]`))
//	p.ParseSome(v)          // reports Bool(false), EndArray
//	err := p.FinishParse(v) // the document is complete
//
// In case of a syntax error, parsing stops and an error of concrete type
// *jcell.SyntaxError is returned. The Kind of the error can be tested with
// errors.Is, for example errors.Is(err, jcell.DepthExceeded).
//
// Options select extensions to strict JSON: comments, trailing commas, the
// literals NaN and Infinity, lossless numbers, and replacement of invalid
// string data. By default an input must hold exactly one document; with the
// StopAtDocument option the parser stops after each document so that a
// sequence of documents can be read from one input.
//
// # Numbers
//
// Integers are reported as Uint64 if nonnegative and Int64 if negative. An
// integer too large for either is reported as a String tagged TagBigInt.
// Numbers with a fraction or exponent are reported as Double, or as a String
// tagged TagBigDec if they are out of range or LosslessNumbers is set.
//
// # Streams
//
// The Stream type reads input from an io.Reader in fixed-size chunks and
// drives a Parser. Parse consumes a single document:
//
//	s := jcell.NewStream(input, nil)
//	if err := s.Parse(visitor); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// To parse a single value from the front of the input, call ParseOne. This
// method returns io.EOF if no further values are available:
//
//	if err := s.ParseOne(visitor); err == io.EOF {
//	   log.Print("No more input")
//	} else if err != nil {
//	   log.Printf("ParseOne failed: %v", err)
//	}
//
// # Cursors
//
// The Cursor type reads the same events in pull style. Each call to Next
// advances to the next event, and ReadTo delivers the rest of an object or
// array to a Visitor:
//
//	c := jcell.NewCursor(input, nil)
//	for c.Next() == nil {
//	   if c.Token() == jcell.Key && string(c.Text()) == "items" {
//	      c.Next()
//	      c.ReadTo(visitor)
//	   }
//	}
//	if err := c.Err(); err != io.EOF {
//	   log.Fatalf("Read failed: %v", err)
//	}
//
// # Visitors
//
// The Visitor interface accepts events from a Parser, or from a traversal of
// a value in package tree:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	member     | Key                       | "key": value
//	array      | BeginArray, EndArray      | [ ... ]
//	string     | String                    | "..."
//	number     | Int64, Uint64, Double     | 1, -2, 3.5
//	bytes      | ByteString                | (not produced by the parser)
//	literal    | Bool, Null                | true, false, null
//
// Each event carries a Tag giving semantic hints about the value, and the
// Pos of the token in the source. A visitor may also implement HalfVisitor,
// CommentVisitor and Flusher to receive optional events.
//
// The Encoder type is a Visitor that writes compact JSON text. A Filter wraps
// another Visitor and may be embedded to alter selected events.
package jcell
