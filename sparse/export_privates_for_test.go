// SPDX-License-Identifier: MIT

package sparse

// Test-Bridge (White-Box) for panic contracts and chain internals.
//
// Purpose:
//   - Expose panic message constants so tests avoid magic strings.
//   - Expose minimal chain introspection for invariant checks
//     (link order, back-references) without widening the prod API.
//
// Behavior & Determinism:
//   - Pure read-only helpers; no side effects, no allocations beyond
//     the returned snapshots.
//
// Risks & Maintenance:
//   - Keep the constant mirror in sync with validators.go; tests using
//     these names will catch drift.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicBadShape_TestOnly     = panicBadShape
	PanicRowRange_TestOnly     = panicRowRange
	PanicColRange_TestOnly     = panicColRange
	PanicDefaultValue_TestOnly = panicDefaultValue
	PanicNilMatrix_TestOnly    = panicNilMatrix
	PanicNilPredicate_TestOnly = panicNilPredicate
	PanicNilConvert_TestOnly   = panicNilConvert
	PanicIterEnd_TestOnly      = panicIterEnd
	PanicIterDeref_TestOnly    = panicIterDeref
)

// ChainPositions_TestOnly returns the (row, col) pairs of the chain in
// link order, for ordering-invariant assertions.
func ChainPositions_TestOnly[T comparable](m *Matrix[T]) [][2]int {
	var out [][2]int
	for cur := m.head; cur != nil; cur = cur.next {
		out = append(out, [2]int{cur.cell.Row, cur.cell.Col})
	}

	return out
}

// ChainBacklinksSound_TestOnly reports whether the head's prev is nil
// and every other node's prev references its true predecessor.
func ChainBacklinksSound_TestOnly[T comparable](m *Matrix[T]) bool {
	var prev *node[T]
	for cur := m.head; cur != nil; prev, cur = cur, cur.next {
		if cur.prev != prev {
			return false
		}
	}

	return true
}
