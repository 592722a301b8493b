// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"errors"
	"io"
	"strings"

	"github.com/creachadair/jcell"
)

// DecodeOptions control the construction of values from JSON text.
type DecodeOptions struct {
	jcell.Options

	// Order is the member order policy for decoded objects.
	Order Order
}

// A Decoder is a jcell.Visitor that constructs a Value from the events it
// receives. When a complete value has been delivered, IsValid reports true and
// Value returns the result.
type Decoder struct {
	order Order
	stk   []frame
	root  Value
	valid bool
}

// A frame is an array or object under construction. For an object, key is
// the name of the member whose value is expected next.
type frame struct {
	v   Value
	key string
}

// NewDecoder constructs a Decoder that builds objects with the given member
// order policy.
func NewDecoder(order Order) *Decoder { return &Decoder{order: order} }

// IsValid reports whether a complete value has been decoded.
func (d *Decoder) IsValid() bool { return d.valid }

// Value returns the decoded value and resets d to decode another. It returns
// null if no complete value has been decoded.
func (d *Decoder) Value() Value {
	if !d.valid {
		return Null()
	}
	d.valid = false
	return d.root.Take()
}

// Reset discards any partially-decoded value.
func (d *Decoder) Reset() {
	clear(d.stk)
	d.stk = d.stk[:0]
	d.root = Value{}
	d.valid = false
}

func (d *Decoder) push(v Value) {
	d.stk = append(d.stk, frame{v: v})
}

// add attaches a complete value v to the container atop the stack, or makes
// it the result if the stack is empty.
func (d *Decoder) add(v Value) error {
	if len(d.stk) == 0 {
		d.root, d.valid = v, true
		return nil
	}
	top := &d.stk[len(d.stk)-1]
	if top.v.kind == ArrayKind {
		top.v.ref.elts = append(top.v.ref.elts, v)
		return nil
	}
	return top.v.InsertOrAssign(top.key, v)
}

func (d *Decoder) pop() error {
	if len(d.stk) == 0 {
		return errors.New("unbalanced end of container")
	}
	v := d.stk[len(d.stk)-1].v
	d.stk[len(d.stk)-1] = frame{}
	d.stk = d.stk[:len(d.stk)-1]
	return d.add(v)
}

// BeginObject implements part of the jcell.Visitor interface.
func (d *Decoder) BeginObject(tag jcell.Tag, _ jcell.Pos) error {
	d.push(EmptyObject(d.order).WithTag(tag))
	return nil
}

// EndObject implements part of the jcell.Visitor interface.
func (d *Decoder) EndObject(jcell.Pos) error { return d.pop() }

// BeginArray implements part of the jcell.Visitor interface.
func (d *Decoder) BeginArray(tag jcell.Tag, _ jcell.Pos) error {
	d.push(Array().WithTag(tag))
	return nil
}

// EndArray implements part of the jcell.Visitor interface.
func (d *Decoder) EndArray(jcell.Pos) error { return d.pop() }

// Key implements part of the jcell.Visitor interface.
func (d *Decoder) Key(name []byte, _ jcell.Pos) error {
	if len(d.stk) == 0 || !d.stk[len(d.stk)-1].v.IsObject() {
		return errors.New("key outside an object")
	}
	d.stk[len(d.stk)-1].key = string(name)
	return nil
}

// String implements part of the jcell.Visitor interface.
func (d *Decoder) String(text []byte, tag jcell.Tag, _ jcell.Pos) error {
	return d.add(stringBytes(text).WithTag(tag))
}

// ByteString implements part of the jcell.Visitor interface.
func (d *Decoder) ByteString(data []byte, tag jcell.Tag, _ jcell.Pos) error {
	return d.add(Bytes(data).WithTag(tag))
}

// Int64 implements part of the jcell.Visitor interface.
func (d *Decoder) Int64(z int64, tag jcell.Tag, _ jcell.Pos) error {
	return d.add(Int(z).WithTag(tag))
}

// Uint64 implements part of the jcell.Visitor interface.
func (d *Decoder) Uint64(z uint64, tag jcell.Tag, _ jcell.Pos) error {
	return d.add(Uint(z).WithTag(tag))
}

// Half implements the jcell.HalfVisitor interface.
func (d *Decoder) Half(bits uint16, tag jcell.Tag, _ jcell.Pos) error {
	return d.add(Half(bits).WithTag(tag))
}

// Double implements part of the jcell.Visitor interface.
func (d *Decoder) Double(f float64, tag jcell.Tag, _ jcell.Pos) error {
	return d.add(Float(f).WithTag(tag))
}

// Bool implements part of the jcell.Visitor interface.
func (d *Decoder) Bool(b bool, _ jcell.Pos) error { return d.add(Bool(b)) }

// Null implements part of the jcell.Visitor interface.
func (d *Decoder) Null(tag jcell.Tag, _ jcell.Pos) error { return d.add(Null().WithTag(tag)) }

// Parse parses a single JSON document from r. If opts == nil, strict JSON is
// accepted and objects keep their members in insertion order.
func Parse(r io.Reader, opts *DecodeOptions) (Value, error) {
	po, order := options(opts)
	d := NewDecoder(order)
	if err := jcell.NewStream(r, po).Parse(d); err != nil {
		return Null(), err
	}
	return d.Value(), nil
}

// ParseString parses a single JSON document from s.
func ParseString(s string, opts *DecodeOptions) (Value, error) {
	return Parse(strings.NewReader(s), opts)
}

// ParseAll parses a sequence of concatenated JSON documents from r. In case
// of error, any complete values already parsed are returned along with the
// error.
func ParseAll(r io.Reader, opts *DecodeOptions) ([]Value, error) {
	po, order := options(opts)
	d := NewDecoder(order)
	st := jcell.NewStream(r, po)
	var vs []Value
	for {
		if err := st.ParseOne(d); err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		vs = append(vs, d.Value())
	}
}

func options(opts *DecodeOptions) (*jcell.Options, Order) {
	if opts == nil {
		return nil, Insertion
	}
	po := opts.Options
	return &po, opts.Order
}
