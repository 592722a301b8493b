// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcell

import "github.com/creachadair/jcell/numconv"

// A Filter is a Visitor that forwards every event to the Visitor it wraps.
// It is meant to be embedded in a type that overrides the events it wants to
// change. The optional Half, Comment and Flush methods are forwarded too.
type Filter struct{ Visitor }

// Half implements the HalfVisitor interface.
func (f Filter) Half(bits uint16, tag Tag, loc Pos) error {
	if h, ok := f.Visitor.(HalfVisitor); ok {
		return h.Half(bits, tag, loc)
	}
	return f.Visitor.Double(numconv.HalfToFloat(bits), tag, loc)
}

// Comment implements the CommentVisitor interface.
func (f Filter) Comment(text []byte, loc Pos) error {
	if c, ok := f.Visitor.(CommentVisitor); ok {
		return c.Comment(text, loc)
	}
	return nil
}

// Flush implements the Flusher interface.
func (f Filter) Flush() error { return flush(f.Visitor) }

// RenameKeys returns a Visitor that forwards events to next, replacing each
// object key that appears in names by its mapped value.
func RenameKeys(next Visitor, names map[string]string) Visitor {
	return renameFilter{Filter: Filter{next}, names: names}
}

type renameFilter struct {
	Filter
	names map[string]string
}

func (r renameFilter) Key(name []byte, loc Pos) error {
	if alt, ok := r.names[string(name)]; ok {
		return r.Visitor.Key([]byte(alt), loc)
	}
	return r.Visitor.Key(name, loc)
}
