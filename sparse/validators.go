// SPDX-License-Identifier: MIT

// Package sparse: precondition guards and panic contracts.
//
// Purpose:
//   - Single, canonical source of truth for every precondition message
//     (no magic strings at call sites or in tests).
//   - Keep container methods minimal by delegating guard logic here.
//
// Note:
//   - Violations abort via panic. The public contract defines them as
//     programmer errors, so this package carries no recoverable error
//     values at all: reading an unstored cell is not an error, it is
//     the default value.
package sparse

// ---------- Panic messages (no magic strings) ----------

const (
	// panicBadShape rejects construction with a non-positive dimension.
	panicBadShape = "sparse: rows and cols must be positive"

	// panicRowRange rejects a 1-based row index outside [1, rows].
	panicRowRange = "sparse: row index out of range"

	// panicColRange rejects a 1-based column index outside [1, cols].
	panicColRange = "sparse: column index out of range"

	// panicDefaultValue rejects storing a value equal to the current default.
	panicDefaultValue = "sparse: value must differ from the current default"

	// panicNilMatrix rejects a nil *Matrix argument.
	panicNilMatrix = "sparse: matrix must be non-nil"

	// panicNilPredicate rejects a nil Predicate argument.
	panicNilPredicate = "sparse: predicate must be non-nil"

	// panicNilConvert rejects a nil conversion function.
	panicNilConvert = "sparse: conversion func must be non-nil"

	// panicIterEnd rejects advancing the end marker.
	panicIterEnd = "sparse: cannot advance past the end iterator"

	// panicIterDeref rejects reading a cell through the end marker.
	panicIterDeref = "sparse: cannot dereference the end iterator"
)

// ---------- Guards ----------

// assert aborts with msg when the condition does not hold.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// validateShape admits only positive dimensions.
// Complexity: O(1).
func validateShape(rows, cols int) {
	assert(rows > 0, panicBadShape)
	assert(cols > 0, panicBadShape)
}

// validateIndex admits only 1-based positions inside the matrix.
// Complexity: O(1).
func (m *Matrix[T]) validateIndex(row, col int) {
	assert(row >= 1 && row <= m.rows, panicRowRange)
	assert(col >= 1 && col <= m.cols, panicColRange)
}
