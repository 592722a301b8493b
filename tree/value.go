// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tree implements an in-memory representation of JSON values.
//
// A Value holds exactly one JSON value: null, a Boolean, a number, a string,
// a byte string, an array or an object. Short strings are stored inline in
// the Value without a separate allocation, and an empty object has its own
// storage kind that allocates nothing; neither choice is visible through
// comparison or conversion.
//
// Scalars, short strings and empty objects are stored entirely within the
// Value and are copied by assignment. Long strings, byte strings, arrays and
// non-empty objects are kept behind a single pointer, so assigning one Value
// variable to another makes both refer to the same payload, and a change made
// through either is visible through both. Use Clone to copy a value that will
// be modified independently, and Take to move a value out of a tree.
package tree

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/creachadair/jcell"
	"github.com/creachadair/jcell/numconv"
	"github.com/shopspring/decimal"
)

// InlineLimit is the bound on inline string storage: strings shorter than
// InlineLimit bytes are stored inside the Value.
const InlineLimit = 16

// A Kind identifies the storage kind of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind        Kind = iota // null
	BoolKind                    // true or false
	Int64Kind                   // signed 64-bit integer
	Uint64Kind                  // unsigned 64-bit integer
	HalfKind                    // IEEE 754 binary16
	DoubleKind                  // IEEE 754 binary64
	ShortStringKind             // string stored inline
	LongStringKind              // string stored on the heap
	ByteStringKind              // binary data
	ArrayKind                   // ordered sequence of values
	EmptyObjectKind             // object with no members and no storage
	ObjectKind                  // ordered sequence of members
)

var kindStr = [...]string{
	NullKind:        "null",
	BoolKind:        "bool",
	Int64Kind:       "int64",
	Uint64Kind:      "uint64",
	HalfKind:        "half",
	DoubleKind:      "double",
	ShortStringKind: "short string",
	LongStringKind:  "long string",
	ByteStringKind:  "byte string",
	ArrayKind:       "array",
	EmptyObjectKind: "empty object",
	ObjectKind:      "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("kind %d", int(k))
	}
	return kindStr[k]
}

// Order is the policy that orders the members of an object.
type Order byte

// Constants defining the valid Order values.
const (
	Insertion Order = iota // members are kept in the order inserted
	Sorted                 // members are kept sorted by key
)

// A Value is a JSON value. The zero Value is null.
type Value struct {
	kind Kind
	tag  jcell.Tag
	n    uint8 // length of an inline string

	// Inline storage: the text of a short string, or the little-endian bits
	// of a scalar (the member order for EmptyObjectKind).
	short [InlineLimit - 1]byte

	ref *payload // storage for the kinds not kept inline
}

// A payload is the out-of-line storage of a Value. Only the field matching
// the kind of the Value that refers to it is used.
type payload struct {
	data []byte  // long string or byte string
	elts []Value // array elements
	obj  object  // object members
}

// scalar returns a value of kind k whose inline storage holds bits.
func scalar(k Kind, bits uint64) Value {
	v := Value{kind: k}
	binary.LittleEndian.PutUint64(v.short[:8], bits)
	return v
}

// bits returns the scalar payload of v.
func (v Value) bits() uint64 { return binary.LittleEndian.Uint64(v.short[:8]) }

// A Member is a key-value pair in an object.
type Member struct {
	Key   string
	Value Value
}

// Field is a convenience constructor for a Member.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

// Null returns a null value.
func Null() Value { return Value{} }

// Bool returns a Boolean value.
func Bool(b bool) Value {
	if b {
		return scalar(BoolKind, 1)
	}
	return scalar(BoolKind, 0)
}

// Int returns a signed integer value.
func Int(z int64) Value { return scalar(Int64Kind, uint64(z)) }

// Uint returns an unsigned integer value.
func Uint(z uint64) Value { return scalar(Uint64Kind, z) }

// Float returns a double-precision value.
func Float(f float64) Value { return scalar(DoubleKind, math.Float64bits(f)) }

// Half returns a half-precision value from its IEEE 754 binary16 bits.
func Half(bits uint16) Value { return scalar(HalfKind, uint64(bits)) }

// String returns a string value. The storage kind is chosen by length.
func String(s string) Value {
	var v Value
	v.setText(s)
	return v
}

func stringBytes(b []byte) Value {
	var v Value
	v.setText(string(b))
	return v
}

func (v *Value) setText(s string) {
	if len(s) < InlineLimit {
		v.kind = ShortStringKind
		v.n = uint8(copy(v.short[:], s))
	} else {
		v.kind = LongStringKind
		v.ref = &payload{data: []byte(s)}
	}
}

// Bytes returns a byte string value holding a copy of data.
func Bytes(data []byte) Value {
	return Value{kind: ByteStringKind, ref: &payload{data: append([]byte{}, data...)}}
}

// Array returns an array value with the given elements. The array takes
// ownership of the elements.
func Array(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: ArrayKind, ref: &payload{elts: vs}}
}

// Object returns an object value with the given members, kept in the given
// order. If a key occurs more than once, the last value for it is kept. The
// object takes ownership of the member values.
func Object(order Order, ms ...Member) Value {
	v := EmptyObject(order)
	for _, m := range ms {
		v.InsertOrAssign(m.Key, m.Value)
	}
	return v
}

// EmptyObject returns an object with no members, whose members will be kept
// in the given order when inserted.
func EmptyObject(order Order) Value { return scalar(EmptyObjectKind, uint64(order)) }

// Decimal returns a string value holding the text of d, tagged as a big
// integer if d has no fractional digits, or as a big decimal otherwise.
func Decimal(d decimal.Decimal) Value {
	tag := jcell.TagBigDec
	if d.Exponent() >= 0 {
		tag = jcell.TagBigInt
	}
	return String(d.String()).WithTag(tag)
}

// WithTag returns a copy of v with its semantic tag set to t.
func (v Value) WithTag(t jcell.Tag) Value { v.tag = t; return v }

// ToValue converts a Go value to a Value. It panics if x does not have one
// of the following types:
//
//   - nil, Value, *Value, bool, string, []byte, decimal.Decimal
//   - signed and unsigned integer types, float32, float64
//   - []any or []Value, whose elements are converted
//   - map[string]any or map[string]Value, whose members are converted in
//     order of their keys
//
// Values are cloned, so that the result does not share storage with x.
func ToValue(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t.Clone()
	case *Value:
		return t.Clone()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case []byte:
		return Bytes(t)
	case decimal.Decimal:
		return Decimal(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Uint(uint64(t))
	case uint8:
		return Uint(uint64(t))
	case uint16:
		return Uint(uint64(t))
	case uint32:
		return Uint(uint64(t))
	case uint64:
		return Uint(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case []any:
		vs := make([]Value, len(t))
		for i, e := range t {
			vs[i] = ToValue(e)
		}
		return Array(vs...)
	case []Value:
		vs := make([]Value, len(t))
		for i, e := range t {
			vs[i] = e.Clone()
		}
		return Array(vs...)
	case map[string]any:
		return mapToValue(t)
	case map[string]Value:
		return mapToValue(t)
	default:
		panic(fmt.Sprintf("unsupported value type %T", x))
	}
}

func mapToValue[T any](m map[string]T) Value {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	v := EmptyObject(Insertion)
	for _, key := range keys {
		v.InsertOrAssign(key, ToValue(m[key]))
	}
	return v
}

// Kind reports the storage kind of v.
func (v Value) Kind() Kind { return v.kind }

// Tag reports the semantic tag of v.
func (v Value) Tag() jcell.Tag { return v.tag }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == NullKind }

// IsBool reports whether v is true or false.
func (v Value) IsBool() bool { return v.kind == BoolKind }

// IsNumber reports whether v has a numeric storage kind.
func (v Value) IsNumber() bool {
	switch v.kind {
	case Int64Kind, Uint64Kind, HalfKind, DoubleKind:
		return true
	}
	return false
}

// IsString reports whether v is a string, regardless of its storage.
func (v Value) IsString() bool { return v.kind == ShortStringKind || v.kind == LongStringKind }

// IsBytes reports whether v is a byte string.
func (v Value) IsBytes() bool { return v.kind == ByteStringKind }

// IsArray reports whether v is an array.
func (v Value) IsArray() bool { return v.kind == ArrayKind }

// IsObject reports whether v is an object, empty or not.
func (v Value) IsObject() bool { return v.kind == ObjectKind || v.kind == EmptyObjectKind }

// text returns the text of a string value without copying. The caller must
// not modify or retain the result.
func (v *Value) text() []byte {
	if v.kind == ShortStringKind {
		return v.short[:v.n]
	}
	return v.ref.data
}

func (v Value) float() float64 {
	if v.kind == HalfKind {
		return numconv.HalfToFloat(uint16(v.bits()))
	}
	return math.Float64frombits(v.bits())
}

// Clone returns a deep copy of v that shares no storage with v.
func (v Value) Clone() Value {
	switch v.kind {
	case LongStringKind, ByteStringKind:
		v.ref = &payload{data: append([]byte{}, v.ref.data...)}
	case ArrayKind:
		elts := make([]Value, len(v.ref.elts), cap(v.ref.elts))
		for i, e := range v.ref.elts {
			elts[i] = e.Clone()
		}
		v.ref = &payload{elts: elts}
	case ObjectKind:
		v.ref = &payload{obj: v.ref.obj.clone()}
	}
	return v
}

// Take moves the contents of v into the result, leaving v null.
func (v *Value) Take() Value {
	out := *v
	*v = Value{}
	return out
}

// Swap exchanges the contents of v and w.
func (v *Value) Swap(w *Value) { *v, *w = *w, *v }

// Set replaces the contents of v with w. The caller must not use w afterward
// except to discard it.
func (v *Value) Set(w Value) { *v = w }

// Clear removes all the elements of an array or members of an object. It
// has no effect on other values.
func (v *Value) Clear() {
	switch v.kind {
	case ArrayKind:
		clear(v.ref.elts)
		v.ref.elts = v.ref.elts[:0]
	case ObjectKind:
		v.ref.obj.clear()
	}
}

// Len reports the number of elements in an array or members in an object.
// It returns 0 for all other values.
func (v Value) Len() int {
	switch v.kind {
	case ArrayKind:
		return len(v.ref.elts)
	case ObjectKind:
		return len(v.ref.obj.members)
	}
	return 0
}

// String renders v as compact JSON text. It implements fmt.Stringer.
func (v Value) String() string { return v.JSON() }

func kindError(v *Value, want string) error {
	return fmt.Errorf("%w: %v is not %s", jcell.WrongKind, v.kind, want)
}
