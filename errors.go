// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcell

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors reported by this module. An ErrorKind is
// itself an error, so that callers can use errors.Is to test for a kind:
//
//	if errors.Is(err, jcell.DepthExceeded) { ... }
type ErrorKind int

// Constants defining the valid ErrorKind values.
const (
	InvalidSyntax   ErrorKind = iota + 1 // unexpected character for the grammar state
	InvalidNumber                        // malformed number literal
	InvalidEscape                        // malformed string escape sequence
	InvalidUTF8                          // malformed UTF-8 in a string
	UnexpectedEOF                        // input ended inside a value
	ExtraCharacters                      // non-whitespace after a complete document
	DepthExceeded                        // nesting depth limit exceeded
	WrongKind                            // value has the wrong kind for the operation
	IndexOutOfRange                      // array index out of bounds
	KeyNotFound                          // object has no member with the key
	Overflow                             // numeric value does not fit the target type
)

var kindStr = [...]string{
	InvalidSyntax:   "invalid syntax",
	InvalidNumber:   "invalid number",
	InvalidEscape:   "invalid escape",
	InvalidUTF8:     "invalid UTF-8",
	UnexpectedEOF:   "unexpected end of input",
	ExtraCharacters: "extra characters after document",
	DepthExceeded:   "maximum nesting depth exceeded",
	WrongKind:       "wrong kind",
	IndexOutOfRange: "index out of range",
	KeyNotFound:     "key not found",
	Overflow:        "numeric overflow",
}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(kindStr) {
		return fmt.Sprintf("error kind %d", int(k))
	}
	return kindStr[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// ErrStop may be returned by a Visitor method to halt a traversal without
// reporting an error. A Parser that receives ErrStop returns it from
// ParseSome, and resumes where it left off on the next call.
var ErrStop = errors.New("stop traversal")

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind    ErrorKind
	Pos     Pos
	Message string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	if s.Message == "" {
		return fmt.Sprintf("at %s: %v", s.Pos, s.Kind)
	}
	return fmt.Sprintf("at %s: %v: %s", s.Pos, s.Kind, s.Message)
}

// Unwrap supports error wrapping. It reports the kind of s.
func (s *SyntaxError) Unwrap() error { return s.Kind }
