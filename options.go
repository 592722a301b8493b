// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcell

// DefaultMaxDepth is the nesting depth limit used when Options.MaxDepth is 0.
const DefaultMaxDepth = 1024

// Trailing selects how the parser treats input following a complete document.
type Trailing byte

// Constants defining the valid Trailing values.
const (
	// RejectTrailing reports ExtraCharacters for anything but whitespace
	// after the document.
	RejectTrailing Trailing = iota

	// StopAtDocument stops the parser at the end of the first document and
	// leaves any remaining input buffered, so that the caller may Reset the
	// parser and continue with the next document.
	StopAtDocument
)

// Options control the grammar accepted by a Parser. The zero value accepts
// strict JSON as defined by RFC 8259.
type Options struct {
	// AllowComments enables C++ style block comments (/* ... */) and line
	// comments (// ...) wherever whitespace is permitted.
	AllowComments bool

	// AllowTrailingCommas permits a comma before the closing bracket of an
	// object or array.
	AllowTrailingCommas bool

	// AllowNaNInf enables the literals NaN, Infinity and -Infinity, which are
	// reported as double values.
	AllowNaNInf bool

	// MaxDepth bounds the nesting of objects and arrays. If zero,
	// DefaultMaxDepth is used.
	MaxDepth int

	// Trailing selects the treatment of data after the first document.
	Trailing Trailing

	// LosslessNumbers reports numbers with a fraction or exponent as strings
	// tagged TagBigDec instead of converting them to float64.
	LosslessNumbers bool

	// ReplaceInvalid replaces invalid escape sequences and invalid UTF-8 in
	// strings with U+FFFD instead of reporting an error.
	ReplaceInvalid bool
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
