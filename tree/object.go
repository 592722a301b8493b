// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/creachadair/jcell"
)

// Objects in insertion order with more than this many members keep an index
// from key to position.
const indexThreshold = 16

type object struct {
	order   Order
	members []Member
	index   map[string]int // Insertion order only; nil if not built
}

func (o *object) clone() object {
	ms := make([]Member, len(o.members), cap(o.members))
	for i, m := range o.members {
		ms[i] = Member{Key: m.Key, Value: m.Value.Clone()}
	}
	return object{order: o.order, members: ms}
}

func (o *object) clear() {
	clear(o.members)
	o.members = o.members[:0]
	o.index = nil
}

// find reports the position of key in o and whether it is present. If key is
// not present, the position is where it should be inserted.
func (o *object) find(key string) (int, bool) {
	n := len(o.members)
	if o.order == Sorted {
		i := sort.Search(n, func(i int) bool { return o.members[i].Key >= key })
		return i, i < n && o.members[i].Key == key
	}
	if n > indexThreshold {
		if o.index == nil {
			o.index = make(map[string]int, n)
			for i, m := range o.members {
				o.index[m.Key] = i
			}
		}
		if i, ok := o.index[key]; ok {
			return i, true
		}
		return n, false
	}
	for i, m := range o.members {
		if m.Key == key {
			return i, true
		}
	}
	return n, false
}

func (o *object) insert(i int, key string, v Value) {
	o.members = slices.Insert(o.members, i, Member{Key: key, Value: v})
	if o.index != nil {
		if i == len(o.members)-1 {
			o.index[key] = i
		} else {
			o.index = nil
		}
	}
}

func (o *object) remove(i int) {
	o.members = slices.Delete(o.members, i, i+1)
	o.index = nil
}

// Order reports the member order policy of an object. It returns Insertion
// for values that are not objects.
func (v Value) Order() Order {
	switch v.kind {
	case EmptyObjectKind:
		return Order(v.bits())
	case ObjectKind:
		return v.ref.obj.order
	}
	return Insertion
}

// object returns the storage of an object, allocating it if v is an empty
// object, or reports an error if v is not an object.
func (v *Value) object() (*object, error) {
	switch v.kind {
	case ObjectKind:
		return &v.ref.obj, nil
	case EmptyObjectKind:
		*v = Value{kind: ObjectKind, tag: v.tag, ref: &payload{obj: object{order: Order(v.bits())}}}
		return &v.ref.obj, nil
	}
	return nil, kindError(v, "an object")
}

// Find returns a pointer to the value of the member of v with the given key,
// and reports whether it was found. Find returns nil, false if v is not an
// object.
func (v *Value) Find(key string) (*Value, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	if i, ok := v.ref.obj.find(key); ok {
		return &v.ref.obj.members[i].Value, true
	}
	return nil, false
}

// Contains reports whether v is an object with a member for key.
func (v *Value) Contains(key string) bool {
	_, ok := v.Find(key)
	return ok
}

// Get returns a pointer to the value of the member of v with the given key.
// It reports an error if v is not an object or has no such member.
func (v *Value) Get(key string) (*Value, error) {
	if !v.IsObject() {
		return nil, kindError(v, "an object")
	}
	if p, ok := v.Find(key); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", jcell.KeyNotFound, key)
}

// InsertOrAssign sets the member of v for key to val, replacing any existing
// value. It reports an error if v is not an object.
func (v *Value) InsertOrAssign(key string, val Value) error {
	o, err := v.object()
	if err != nil {
		return err
	}
	if i, ok := o.find(key); ok {
		o.members[i].Value = val
	} else {
		o.insert(i, key, val)
	}
	return nil
}

// TryEmplace adds a member for key with value val if v has no member for
// key, and reports whether it did so. An existing member is not modified. It
// reports an error if v is not an object.
func (v *Value) TryEmplace(key string, val Value) (bool, error) {
	o, err := v.object()
	if err != nil {
		return false, err
	}
	i, ok := o.find(key)
	if ok {
		return false, nil
	}
	o.insert(i, key, val)
	return true, nil
}

// Erase removes the member of v for key, and reports whether it was present.
// It reports an error if v is not an object.
func (v *Value) Erase(key string) (bool, error) {
	if !v.IsObject() {
		return false, kindError(v, "an object")
	} else if v.kind == EmptyObjectKind {
		return false, nil
	}
	i, ok := v.ref.obj.find(key)
	if ok {
		v.ref.obj.remove(i)
	}
	return ok, nil
}

// Merge copies into v each member of other whose key is not already present
// in v. Existing members of v are kept.
func (v *Value) Merge(other Value) error { return v.merge(other, false) }

// MergeOrUpdate copies each member of other into v, replacing the values of
// members of v that have the same key.
func (v *Value) MergeOrUpdate(other Value) error { return v.merge(other, true) }

func (v *Value) merge(other Value, update bool) error {
	if !other.IsObject() {
		return kindError(&other, "an object")
	}
	o, err := v.object()
	if err != nil {
		return err
	}
	if other.kind == EmptyObjectKind {
		return nil
	}
	for _, m := range other.ref.obj.members {
		i, ok := o.find(m.Key)
		if !ok {
			o.insert(i, m.Key, m.Value.Clone())
		} else if update {
			o.members[i].Value = m.Value.Clone()
		}
	}
	return nil
}

// Members returns an iterator over the keys and values of the members of an
// object, in the order given by its policy. The sequence is empty if v is not
// an object. The object must not be modified during iteration.
func (v *Value) Members() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.kind != ObjectKind {
			return
		}
		for i := range v.ref.obj.members {
			m := &v.ref.obj.members[i]
			if !yield(m.Key, &m.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of an object, in the order given by
// its policy. The sequence is empty if v is not an object.
func (v *Value) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range v.Members() {
			if !yield(key) {
				return
			}
		}
	}
}
