// SPDX-License-Identifier: MIT

// Package sparse: dense predicate evaluation.
package sparse

// Evaluate counts the logical cells of m whose value satisfies pred.
//
// The scan is dense: every rows×cols position is read through At in
// row-major order (row 1..Rows outer, column 1..Cols inner), so
// positions that were never stored are evaluated against the current
// default too. The answer is "how many logical cells satisfy pred", not
// "how many stored cells satisfy pred". With a predicate that accepts
// the default, the count includes every unstored position.
//
// Contract (violations panic): m and pred must be non-nil.
// Complexity: O(rows·cols·n), a dense scan paying the ordered-chain
// lookup per cell. Walking only stored cells would be cheaper and answer
// a different question.
func Evaluate[T comparable](m *Matrix[T], pred Predicate[T]) int {
	assert(m != nil, panicNilMatrix)
	assert(pred != nil, panicNilPredicate)

	count := 0
	for r := 1; r <= m.rows; r++ {
		for c := 1; c <= m.cols; c++ {
			if pred(m.At(r, c)) {
				count++
			}
		}
	}

	return count
}
