// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"bytes"
	"cmp"
	"math"
	"slices"
	"strings"
)

// category ranks the kinds of value that cannot be compared with each other.
func (v Value) category() int {
	switch v.kind {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case Int64Kind, Uint64Kind, HalfKind, DoubleKind:
		return 2
	case ShortStringKind, LongStringKind:
		return 3
	case ByteStringKind:
		return 4
	case ArrayKind:
		return 5
	default:
		return 6
	}
}

// Equal reports whether v and w are equal. Numbers are equal if they have the
// same numeric value, regardless of kind. Strings are equal if they have the
// same text, regardless of storage. Arrays are equal if they have equal
// elements in the same order. Objects are equal if they have the same keys
// with equal values, in any order. Semantic tags are not compared.
func (v Value) Equal(w Value) bool { return Compare(v, w) == 0 }

// Compare defines a total order on values. It returns -1 if a < b, 0 if a ==
// b, and +1 if a > b. Values of different categories are ordered null, bool,
// number, string, byte string, array, object. Within a category, numbers are
// ordered by numeric value (NaN before all other numbers), strings and byte
// strings byte-wise, and arrays lexicographically. Objects are compared by
// their members in key order.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.category(), b.category()); c != 0 {
		return c
	}
	switch a.category() {
	case 0:
		return 0
	case 1:
		return cmp.Compare(a.bits(), b.bits())
	case 2:
		return compareNumbers(a, b)
	case 3:
		return bytes.Compare(a.text(), b.text())
	case 4:
		return bytes.Compare(a.ref.data, b.ref.data)
	case 5:
		return slices.CompareFunc(a.ref.elts, b.ref.elts, Compare)
	default:
		return slices.CompareFunc(a.sortedMembers(), b.sortedMembers(), compareMembers)
	}
}

func compareMembers(a, b Member) int {
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return Compare(a.Value, b.Value)
}

// sortedMembers returns the members of an object sorted by key. The result
// may share storage with v and must not be modified.
func (v Value) sortedMembers() []Member {
	if v.kind != ObjectKind {
		return nil
	} else if v.ref.obj.order == Sorted {
		return v.ref.obj.members
	}
	ms := slices.Clone(v.ref.obj.members)
	slices.SortFunc(ms, func(a, b Member) int { return strings.Compare(a.Key, b.Key) })
	return ms
}

func compareNumbers(a, b Value) int {
	switch {
	case a.kind == Int64Kind && b.kind == Int64Kind:
		return cmp.Compare(int64(a.bits()), int64(b.bits()))
	case a.kind == Uint64Kind && b.kind == Uint64Kind:
		return cmp.Compare(a.bits(), b.bits())
	case a.kind == Int64Kind && b.kind == Uint64Kind:
		return compareIntUint(int64(a.bits()), b.bits())
	case a.kind == Uint64Kind && b.kind == Int64Kind:
		return -compareIntUint(int64(b.bits()), a.bits())
	case a.kind == Int64Kind:
		return compareIntFloat(int64(a.bits()), b.float())
	case a.kind == Uint64Kind:
		return compareUintFloat(a.bits(), b.float())
	case b.kind == Int64Kind:
		return -compareIntFloat(int64(b.bits()), a.float())
	case b.kind == Uint64Kind:
		return -compareUintFloat(b.bits(), a.float())
	}
	// Both floating-point; cmp.Compare orders NaN first.
	return cmp.Compare(a.float(), b.float())
}

func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

// compareIntFloat compares i and f exactly, without rounding i to float64.
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f < math.MinInt64:
		return 1
	case f >= math.MaxInt64: // 2^63
		return -1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(i, int64(t)); c != 0 {
		return c
	}
	return cmp.Compare(0, f-t)
}

// compareUintFloat compares u and f exactly, without rounding u to float64.
func compareUintFloat(u uint64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f < 0:
		return 1
	case f >= math.MaxUint64: // 2^64
		return -1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(u, uint64(t)); c != 0 {
		return c
	}
	return cmp.Compare(0, f-t)
}
