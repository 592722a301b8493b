// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcell

import "fmt"

// A Pos describes a position in source text, relative to the start of the
// input stream.
type Pos struct {
	Offset int64 // byte offset, 0-based
	Line   int   // line number, 1-based
	Column int   // byte offset of column in line, 1-based
}

// String renders p as "line:column".
func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// IsValid reports whether p denotes a location in source text. The zero Pos
// is not valid; it is reported for events that do not come from a parser.
func (p Pos) IsValid() bool { return p.Line > 0 }

var startPos = Pos{Line: 1, Column: 1}
