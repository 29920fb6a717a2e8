// SPDX-License-Identifier: MIT

// Package sparse: mutation and lookup over the ordered node chain.
//
// Every operation here walks the chain from head: the container trades
// indexed access for a memory footprint proportional to stored cells.
// The chain invariants maintained by this file:
//   - strictly ascending (row, column) lexicographic order,
//   - no two nodes share a position,
//   - n equals the number of nodes reachable from head,
//   - every node's prev references its true predecessor.
package sparse

// lessPos reports whether position (ar, ac) precedes (br, bc) in the
// ascending (row, column) lexicographic chain order.
// Complexity: O(1).
func lessPos(ar, ac, br, bc int) bool {
	if ar != br {
		return ar < br
	}

	return ac < bc
}

// Add stores v at the 1-based position (row, col), or rewrites the value
// in place when that position is already stored. Len grows only on first
// insertion; updates leave it unchanged.
//
// Contract (violations panic): 1 ≤ row ≤ Rows(), 1 ≤ col ≤ Cols(), and
// v must differ from the current default. A default cell is represented
// by absence and is never stored; callers wanting to "reset" a cell to
// the default must restructure, because removal does not exist.
// Complexity: O(n) in stored cells.
func (m *Matrix[T]) Add(row, col int, v T) {
	// Fatal contracts first: position inside the grid, value distinct
	// from the default.
	m.validateIndex(row, col)
	assert(v != m.def, panicDefaultValue)

	m.insert(row, col, v)
}

// At returns the value at the 1-based position (row, col): the stored
// value when the position was materialized by Add, otherwise the current
// default. Reading an unstored cell is not an error.
//
// Contract (violations panic): 1 ≤ row ≤ Rows(), 1 ≤ col ≤ Cols().
// Complexity: O(n) in stored cells; the ordered walk stops at the first
// node past (row, col).
func (m *Matrix[T]) At(row, col int) T {
	m.validateIndex(row, col)

	for cur := m.head; cur != nil && !lessPos(row, col, cur.cell.Row, cur.cell.Col); cur = cur.next {
		if cur.cell.Row == row && cur.cell.Col == col {
			return cur.cell.Value
		}
	}

	return m.def
}

// Has reports whether the 1-based position (row, col) holds a stored
// cell. Same bounds contract as At.
// Complexity: O(n) in stored cells.
func (m *Matrix[T]) Has(row, col int) bool {
	m.validateIndex(row, col)

	for cur := m.head; cur != nil && !lessPos(row, col, cur.cell.Row, cur.cell.Col); cur = cur.next {
		if cur.cell.Row == row && cur.cell.Col == col {
			return true
		}
	}

	return false
}

// Clone returns a deep, independent copy: identical shape, default, and
// stored cells. Mutating either side never affects the other.
//
// The copy walks the source in order and re-splices every stored cell
// through the same ordered-insert path as Add, so the ordering and
// no-duplicates invariants hold in the copy by construction. The walk
// bypasses Add's equal-to-default contract: a stored value
// that a later SetDefault happens to alias still belongs in the copy.
// Complexity: O(n²) worst case (n ordered re-inserts).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, def: m.def}
	for cur := m.head; cur != nil; cur = cur.next {
		out.insert(cur.cell.Row, cur.cell.Col, cur.cell.Value)
	}

	return out
}

// Assign replaces the receiver's entire state (shape, default, stored
// cells) with a deep copy of src and releases the receiver's old chain.
// Self-assignment is a no-op.
//
// Copy-and-swap: the independent copy is built in full before the
// receiver is touched, so an abort mid-copy leaves the receiver exactly
// as it was; only after the swap is the old chain released.
//
// Contract (violations panic): src must be non-nil.
// Complexity: O(src.Len()²) worst case for the copy, plus O(old n)
// for the release.
func (m *Matrix[T]) Assign(src *Matrix[T]) {
	assert(src != nil, panicNilMatrix)
	if m == src {
		return // self-assignment keeps the receiver as is
	}

	// Stage 1 (Copy): full independent duplicate of src.
	dup := src.Clone()

	// Stage 2 (Swap): adopt the duplicate's state wholesale.
	old := m.head
	m.head, m.rows, m.cols, m.def, m.n = dup.head, dup.rows, dup.cols, dup.def, dup.n

	// Stage 3 (Release): drop the superseded chain.
	release(old)
}

// insert splices (row, col, v) into the ordered chain, or rewrites the
// value of the node already at that position. Bounds and default-value
// contracts are the caller's duty; insert maintains the chain order,
// the no-duplicates invariant, and the stored count.
//
// The fresh node is fully built before any link is touched, so no
// half-spliced chain is ever observable.
// Complexity: O(n) walk to the splice point, O(1) splice.
func (m *Matrix[T]) insert(row, col int, v T) {
	// Stage 1 (Locate): walk to the first node at or after (row, col).
	var prev *node[T]
	cur := m.head
	for cur != nil && lessPos(cur.cell.Row, cur.cell.Col, row, col) {
		prev = cur
		cur = cur.next
	}

	// Stage 2 (Update): an exact hit rewrites the value in place.
	if cur != nil && cur.cell.Row == row && cur.cell.Col == col {
		tracer().Debugf("update (%d,%d)", row, col)
		cur.cell.Value = v

		return
	}

	// Stage 3 (Splice): link a fresh node between prev and cur.
	nn := &node[T]{cell: Cell[T]{Row: row, Col: col, Value: v}, next: cur, prev: prev}
	if cur != nil {
		cur.prev = nn
	}
	if prev != nil {
		tracer().Debugf("insert (%d,%d) after (%d,%d)", row, col, prev.cell.Row, prev.cell.Col)
		prev.next = nn
	} else {
		tracer().Debugf("insert (%d,%d) at head", row, col)
		m.head = nn
	}
	m.n++
}

// release walks a detached chain and severs every link. The loop stays
// iterative: a recursive teardown would grow the call stack with the
// stored-cell count. Severing also means a stale iterator still holding
// one dropped node cannot keep the rest of the chain reachable.
// Complexity: O(n).
func release[T comparable](head *node[T]) {
	for cur := head; cur != nil; {
		next := cur.next
		cur.next, cur.prev = nil, nil
		cur = next
	}
}
