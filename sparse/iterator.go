// SPDX-License-Identifier: MIT

// Package sparse: forward cursors over the ordered chain.
//
// Two variants exist: ConstIterator (read-only) and Iterator (mutable,
// embedding ConstIterator). Both are forward-only and restartable via
// the container's Begin accessors. Cursors borrow from the container
// without owning anything: they are invalidated when the container they
// came from is reassigned via Assign, and must not outlive it.
package sparse

import "iter"

// ConstIterator is a read-only forward cursor over stored cells in
// ascending (row, column) order. The zero value is the end marker.
//
// Cursors compare by node identity with ==: two cursors of the same
// variant are equal exactly when they reference the same stored cell,
// or are both end markers.
type ConstIterator[T comparable] struct {
	cur *node[T] // current node, nil for the end marker
}

// Iterator is the mutable variant of ConstIterator: same traversal and
// comparison semantics, plus SetValue. Use Const to compare against a
// read-only cursor.
type Iterator[T comparable] struct {
	ConstIterator[T]
}

// Begin returns a mutable cursor at the first stored cell, equal to
// End() when the matrix stores nothing. Calling Begin again yields a
// fresh cursor at the head.
// Complexity: O(1).
func (m *Matrix[T]) Begin() Iterator[T] {
	return Iterator[T]{ConstIterator[T]{cur: m.head}}
}

// End returns the mutable past-the-end marker (a null cursor).
// Complexity: O(1).
func (m *Matrix[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// ConstBegin returns a read-only cursor at the first stored cell, equal
// to ConstEnd() when the matrix stores nothing.
// Complexity: O(1).
func (m *Matrix[T]) ConstBegin() ConstIterator[T] {
	return ConstIterator[T]{cur: m.head}
}

// ConstEnd returns the read-only past-the-end marker.
// Complexity: O(1).
func (m *Matrix[T]) ConstEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// Valid reports whether the cursor references a stored cell, i.e.
// differs from the end marker.
func (it ConstIterator[T]) Valid() bool { return it.cur != nil }

// Next advances to the successor stored cell; advancing from the last
// cell yields the end marker. Panics on the end marker itself.
func (it *ConstIterator[T]) Next() {
	assert(it.cur != nil, panicIterEnd)
	it.cur = it.cur.next
}

// Row returns the 1-based row of the current cell. Panics on the end
// marker.
func (it ConstIterator[T]) Row() int {
	assert(it.cur != nil, panicIterDeref)

	return it.cur.cell.Row
}

// Col returns the 1-based column of the current cell. Panics on the end
// marker.
func (it ConstIterator[T]) Col() int {
	assert(it.cur != nil, panicIterDeref)

	return it.cur.cell.Col
}

// Value returns the current cell's stored value. Panics on the end
// marker.
func (it ConstIterator[T]) Value() T {
	assert(it.cur != nil, panicIterDeref)

	return it.cur.cell.Value
}

// Cell returns a snapshot copy of the current cell. Panics on the end
// marker.
func (it ConstIterator[T]) Cell() Cell[T] {
	assert(it.cur != nil, panicIterDeref)

	return it.cur.cell
}

// Const reprojects the mutable cursor as a read-only one at the same
// position. Handy for equality across variants:
//
//	m.Begin().Const() == m.ConstBegin()
func (it Iterator[T]) Const() ConstIterator[T] { return it.ConstIterator }

// SetValue rewrites the current cell's stored value in place, directly
// in the container (no copy-on-write). The write is not checked against
// the container's default; use Add for checked insertion. Panics on the
// end marker.
func (it Iterator[T]) SetValue(v T) {
	assert(it.cur != nil, panicIterDeref)
	it.cur.cell.Value = v
}

// All returns a range-over-func view of the stored cells in ascending
// (row, column) order:
//
//	for c := range m.All() {
//	  fmt.Println(c.Row, c.Col, c.Value)
//	}
//
// Yielded Cell values are snapshots; rewrite stored state through Add or
// a mutable cursor instead.
// Complexity: O(n) for a full pass.
func (m *Matrix[T]) All() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for cur := m.head; cur != nil; cur = cur.next {
			if !yield(cur.cell) {
				return
			}
		}
	}
}

// Cells returns the stored cells as a fresh, ordered slice snapshot.
// Complexity: O(n) time and space.
func (m *Matrix[T]) Cells() []Cell[T] {
	out := make([]Cell[T], 0, m.n)
	for cur := m.head; cur != nil; cur = cur.next {
		out = append(out, cur.cell)
	}

	return out
}
