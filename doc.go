// Package sparsemat is an in-memory playground for working with sparse
// two-dimensional data: a generic R×C matrix that stores only the cells you
// actually set and answers every other position with a default value.
//
// 🚀 What is sparsemat?
//
//	A small, focused library that brings together:
//		• Generic container: Matrix[T] over any comparable element type
//		• Ordered storage: stored cells kept in ascending (row, column) order
//		• Forward iteration: mutable and read-only cursors plus range-over-func
//		• Cross-type conversion: rebuild a Matrix[U] from a Matrix[T]
//		• Dense evaluation: count predicate matches over every logical cell
//
// ✨ Why choose sparsemat?
//
//   - Beginner-friendly - minimal API, clear, intuitive naming
//   - Predictable costs - every operation documents its complexity
//   - Pure Go - no cgo, tiny dependency surface
//   - Honest contracts - preconditions are documented and enforced
//
// Everything lives in one subpackage:
//
//	sparse/ - the Matrix container, iterators, conversion and Evaluate
//
// Quick ASCII example, a 3×2 matrix with default 0 and two stored cells:
//
//	    col→   1    2
//	  row 1 [  0 ][ 7 ]
//	  row 2 [  0 ][ 0 ]
//	  row 3 [ 42 ][ 0 ]
//
//	only (1,2)=7 and (3,1)=42 consume memory.
//
// Dive into examples/ for runnable walkthroughs of every feature.
//
//	go get github.com/katalvlaran/sparsemat/sparse
package sparsemat
