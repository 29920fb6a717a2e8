// SPDX-License-Identifier: MIT

// Package sparse: cross-type conversion constructors.
package sparse

// Convert builds a Matrix[U] from src, transforming the default value
// and every stored value through conv while preserving the sparsity
// pattern (the set of stored positions) exactly. The conv parameter is
// the convertibility proof: code that cannot supply a func(T) U does
// not compile, so no run-time convertibility check exists.
//
// Stored cells are re-added in ascending order through the same checked
// Add path as ordinary insertion, so the ordering and no-duplicates
// invariants hold in the target by construction. In particular, a
// converted value that collides with the converted default is the same
// fatal contract violation as any other equal-to-default insert; pick a
// conv (or a source default) that keeps stored values distinct from the
// default after conversion.
//
// Contract (violations panic): src and conv must be non-nil.
// Complexity: O(n²) worst case over src.Len().
func Convert[T, U comparable](src *Matrix[T], conv func(T) U) *Matrix[U] {
	assert(src != nil, panicNilMatrix)
	assert(conv != nil, panicNilConvert)

	out := New[U](src.rows, src.cols, conv(src.def))
	for cur := src.head; cur != nil; cur = cur.next {
		out.Add(cur.cell.Row, cur.cell.Col, conv(cur.cell.Value))
	}

	return out
}

// ConvertNumeric is Convert for the built-in numeric kinds: the element
// types carry their own conversion, so no func is needed. The target
// type comes first so the source stays inferred:
//
//	f := sparse.ConvertNumeric[float64](m) // m is *Matrix[int]
//
// Float to integer conversions truncate toward zero, exactly as the
// ordinary Go conversion does.
// Complexity: O(n²) worst case over src.Len().
func ConvertNumeric[U, T Numeric](src *Matrix[T]) *Matrix[U] {
	return Convert(src, func(v T) U { return U(v) })
}
