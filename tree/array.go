// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"
	"iter"
	"slices"

	"github.com/creachadair/jcell"
)

func rangeError(i, n int) error {
	return fmt.Errorf("%w: index %d (n=%d)", jcell.IndexOutOfRange, i, n)
}

// At returns a pointer to the element of an array at offset i. It reports an
// error if v is not an array or i is out of range.
func (v *Value) At(i int) (*Value, error) {
	if v.kind != ArrayKind {
		return nil, kindError(v, "an array")
	} else if i < 0 || i >= len(v.ref.elts) {
		return nil, rangeError(i, len(v.ref.elts))
	}
	return &v.ref.elts[i], nil
}

// Elem returns a pointer to the element of an array at offset i, or nil if v
// is not an array or i is out of range.
func (v *Value) Elem(i int) *Value {
	p, _ := v.At(i)
	return p
}

// Append adds vs to the end of an array. It reports an error if v is not an
// array.
func (v *Value) Append(vs ...Value) error {
	if v.kind != ArrayKind {
		return kindError(v, "an array")
	}
	v.ref.elts = append(v.ref.elts, vs...)
	return nil
}

// Insert inserts vs into an array before the element at offset i. If i ==
// v.Len(), the values are appended.
func (v *Value) Insert(i int, vs ...Value) error {
	if v.kind != ArrayKind {
		return kindError(v, "an array")
	} else if i < 0 || i > len(v.ref.elts) {
		return rangeError(i, len(v.ref.elts))
	}
	v.ref.elts = slices.Insert(v.ref.elts, i, vs...)
	return nil
}

// EraseRange removes the elements of an array at offsets i <= k < j.
func (v *Value) EraseRange(i, j int) error {
	if v.kind != ArrayKind {
		return kindError(v, "an array")
	} else if i < 0 || j > len(v.ref.elts) || i > j {
		return fmt.Errorf("%w: range [%d:%d] (n=%d)", jcell.IndexOutOfRange, i, j, len(v.ref.elts))
	}
	v.ref.elts = slices.Delete(v.ref.elts, i, j)
	return nil
}

// Resize changes the length of an array to n. Elements past n are discarded,
// and new elements are set to copies of fill.
func (v *Value) Resize(n int, fill Value) error {
	if v.kind != ArrayKind {
		return kindError(v, "an array")
	} else if n < 0 {
		return rangeError(n, len(v.ref.elts))
	}
	if n <= len(v.ref.elts) {
		v.ref.elts = slices.Delete(v.ref.elts, n, len(v.ref.elts))
		return nil
	}
	v.ref.elts = slices.Grow(v.ref.elts, n-len(v.ref.elts))
	for len(v.ref.elts) < n {
		v.ref.elts = append(v.ref.elts, fill.Clone())
	}
	return nil
}

// Reserve ensures that an array or object has space for at least n elements
// or members without further allocation. It is a hint; it reports an error
// only if v is neither an array nor an object.
func (v *Value) Reserve(n int) error {
	if v.kind == ArrayKind {
		if n > len(v.ref.elts) {
			v.ref.elts = slices.Grow(v.ref.elts, n-len(v.ref.elts))
		}
		return nil
	}
	o, err := v.object()
	if err != nil {
		return kindError(v, "an array or object")
	}
	if n > len(o.members) {
		o.members = slices.Grow(o.members, n-len(o.members))
	}
	return nil
}

// Capacity reports the number of elements or members v has space for.
func (v Value) Capacity() int {
	switch v.kind {
	case ArrayKind:
		return cap(v.ref.elts)
	case ObjectKind:
		return cap(v.ref.obj.members)
	}
	return 0
}

// Values returns an iterator over the offsets and elements of an array. The
// sequence is empty if v is not an array. The array must not be modified
// during iteration.
func (v *Value) Values() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if v.kind != ArrayKind {
			return
		}
		for i := range v.ref.elts {
			if !yield(i, &v.ref.elts[i]) {
				return
			}
		}
	}
}
