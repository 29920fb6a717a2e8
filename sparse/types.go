// SPDX-License-Identifier: MIT

// Package sparse: core domain types for the sparse matrix container.
// This file declares Cell (the public view of one stored entry), the
// internal chain node, the Matrix container itself, and the Predicate /
// Numeric helper contracts. Panic message constants and input guards
// live in validators.go per the repository conventions.
package sparse

// Cell is one explicitly stored matrix entry: a 1-based position plus
// the value recorded there. The position is immutable once stored; the
// value may be rewritten in place via Add or a mutable iterator.
type Cell[T comparable] struct {
	Row   int // 1-based row index, 1 ≤ Row ≤ Matrix.Rows()
	Col   int // 1-based column index, 1 ≤ Col ≤ Matrix.Cols()
	Value T   // stored element; differs from the default at insertion time
}

// node owns exactly one Cell and the forward link of the ordered chain.
// prev is a navigational back-reference used only to splice before the
// current node during insertion; the chain is reachable (and therefore
// alive) exclusively through next.
type node[T comparable] struct {
	cell Cell[T]  // the stored entry
	next *node[T] // owning link to the successor in (row, col) order
	prev *node[T] // non-owning back-reference, traversal only
}

// Matrix is a fixed-size rows×columns sparse matrix over element type T.
// Only cells explicitly set via Add consume memory; every other position
// reads as the current default value. Stored cells are kept in strictly
// ascending (row, column) lexicographic order with no duplicates.
//
// T must be comparable: Add's value-differs-from-default precondition
// and exact-position lookups both rely on equality.
//
// The zero value is not usable; construct with New, Clone or Convert.
// A Matrix is not safe for concurrent use.
type Matrix[T comparable] struct {
	head *node[T] // first node of the ordered chain, nil when empty
	rows int      // immutable row count, > 0
	cols int      // immutable column count, > 0
	def  T        // default value returned for unstored positions
	n    int      // number of stored nodes reachable from head
}

// Predicate reports whether a single element satisfies a caller-defined
// condition. Consumed by Evaluate.
type Predicate[T any] func(T) bool

// Numeric enumerates the built-in numeric kinds that convert to each
// other with Go's ordinary conversion rules. ConvertNumeric is bound by
// it on both ends, so a non-numeric instantiation fails to compile.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
