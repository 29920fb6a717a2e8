// Package sparse implements a generic two-dimensional sparse matrix:
// a fixed-size rows×columns grid over an element type T where only
// explicitly inserted cells consume memory, and every other position
// implicitly reads as a caller-supplied default value.
//
// 🚀 What is a sparse matrix?
//
//	A matrix whose cells are almost all equal to one "background" value.
//	Storing that background once and materializing only the exceptions
//	keeps memory proportional to the interesting cells.  Typical uses:
//	  • Occupancy grids & game boards (mostly empty)
//	  • Score / rating tables (mostly unrated)
//	  • Term-document counts (mostly zero)
//	  • Any table too irregular to justify a dense layout
//
// ✨ Key features:
//   - Matrix[T] over any comparable element type
//   - stored cells kept in strictly ascending (row, column) order
//   - zero memory for default cells, one chain node per stored cell
//   - forward iteration: mutable and read-only cursors, plus a
//     range-over-func view (All) for modern for-range loops
//   - cross-type conversion: rebuild a Matrix[U] from a Matrix[T]
//   - Evaluate: dense predicate count over every logical cell
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sparsemat/sparse"
//
//	m := sparse.New[int](3, 2, 999) // 3×2, every cell starts as 999
//	m.Add(1, 2, 2)                  // materialize (1,2)
//	m.Add(2, 2, 5)                  // materialize (2,2)
//
//	v := m.At(1, 1)                 // 999, never stored
//	n := m.Len()                    // 2 stored cells
//
//	for it := m.Begin(); it.Valid(); it.Next() {
//	  fmt.Println(it.Row(), it.Col(), it.Value())
//	}
//
// Contracts:
//
//	Indices are 1-based. New panics on non-positive dimensions; Add and
//	At panic on out-of-range indices; Add panics when the value equals
//	the current default (a default cell is represented by absence and is
//	never stored). Violations are programmer errors, not runtime errors,
//	so there is no error return to check on the hot path.
//
// Performance:
//
//   - Add / At / Has: O(n) in stored cells (ordered chain walk)
//   - iteration: O(n) total, O(1) per step
//   - Clone / Assign / Convert: O(n²) worst case (n ordered re-inserts)
//   - Evaluate: O(rows·cols·n), dense over every logical cell
//
// See examples in example_test.go and runnable demos under examples/.
package sparse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sparse'.
func tracer() tracing.Trace {
	return tracing.Select("sparse")
}
