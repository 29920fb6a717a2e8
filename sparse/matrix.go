// SPDX-License-Identifier: MIT

// Package sparse: Matrix construction, scalar accessors, and rendering.
package sparse

import (
	"fmt"
	"strings"
)

// New constructs an empty rows×cols sparse matrix whose every cell reads
// as def until explicitly set via Add.
//
// Panics when rows <= 0 or cols <= 0: the shape is a fatal contract, not
// a recoverable error. Dimensions are fixed for the life of the matrix.
// Complexity: O(1).
func New[T comparable](rows, cols int, def T) *Matrix[T] {
	// Admit only positive dimensions (fatal contract).
	validateShape(rows, cols)

	tracer().Debugf("new %dx%d matrix, empty chain", rows, cols)

	return &Matrix[T]{rows: rows, cols: cols, def: def}
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Len returns the number of stored (non-default) cells.
// Complexity: O(1).
func (m *Matrix[T]) Len() int { return m.n }

// Default returns the value reported for positions with no stored cell.
// Complexity: O(1).
func (m *Matrix[T]) Default() T { return m.def }

// SetDefault replaces the default value used by subsequent reads.
// Stored cells keep their explicit values; nothing is rewritten
// retroactively, so a cell stored before the change still reads as its
// stored value even if that now equals the new default.
// Complexity: O(1).
func (m *Matrix[T]) SetDefault(v T) { m.def = v }

// String renders a compact diagnostic view: shape, default, stored count
// and the ordered stored cells. A read-only observer; nothing in the
// container depends on it.
// Complexity: O(n).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix(%dx%d default=%v len=%d)", m.rows, m.cols, m.def, m.n)

	sep := " {"
	for cur := m.head; cur != nil; cur = cur.next {
		fmt.Fprintf(&b, "%s(%d,%d)=%v", sep, cur.cell.Row, cur.cell.Col, cur.cell.Value)
		sep = " "
	}
	if m.head != nil {
		b.WriteByte('}')
	}

	return b.String()
}
