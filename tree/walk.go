// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"errors"

	"github.com/creachadair/jcell"
)

// Walk delivers the events describing v to vis, in the order a parser would
// report them for the JSON text of v. Object members are visited in the
// order given by the object's policy. Half values are delivered to
// vis.Half if vis implements jcell.HalfVisitor, otherwise to vis.Double.
// If vis implements jcell.Flusher, it is flushed when the walk completes.
//
// If a method of vis reports an error, the walk stops and Walk returns that
// error, except that jcell.ErrStop ends the walk and Walk returns nil.
func Walk(v Value, vis jcell.Visitor) error {
	err := walk(&v, vis)
	if err == nil {
		if f, ok := vis.(jcell.Flusher); ok {
			err = f.Flush()
		}
	}
	if errors.Is(err, jcell.ErrStop) {
		return nil
	}
	return err
}

func walk(v *Value, vis jcell.Visitor) error {
	var none jcell.Pos
	switch v.kind {
	case NullKind:
		return vis.Null(v.tag, none)
	case BoolKind:
		return vis.Bool(v.bits() != 0, none)
	case Int64Kind:
		return vis.Int64(int64(v.bits()), v.tag, none)
	case Uint64Kind:
		return vis.Uint64(v.bits(), v.tag, none)
	case HalfKind:
		if h, ok := vis.(jcell.HalfVisitor); ok {
			return h.Half(uint16(v.bits()), v.tag, none)
		}
		return vis.Double(v.float(), v.tag, none)
	case DoubleKind:
		return vis.Double(v.float(), v.tag, none)
	case ShortStringKind, LongStringKind:
		return vis.String(v.text(), v.tag, none)
	case ByteStringKind:
		return vis.ByteString(v.ref.data, v.tag, none)
	case ArrayKind:
		if err := vis.BeginArray(v.tag, none); err != nil {
			return err
		}
		for i := range v.ref.elts {
			if err := walk(&v.ref.elts[i], vis); err != nil {
				return err
			}
		}
		return vis.EndArray(none)
	case EmptyObjectKind, ObjectKind:
		if err := vis.BeginObject(v.tag, none); err != nil {
			return err
		}
		if v.kind == ObjectKind {
			for i := range v.ref.obj.members {
				m := &v.ref.obj.members[i]
				if err := vis.Key([]byte(m.Key), none); err != nil {
					return err
				}
				if err := walk(&m.Value, vis); err != nil {
					return err
				}
			}
		}
		return vis.EndObject(none)
	}
	panic("tree: invalid kind " + v.kind.String())
}
