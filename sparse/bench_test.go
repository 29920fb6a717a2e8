// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
)

// benchSink keeps benchmarked reads observable.
var benchSink int

// buildDiagonal returns an n×n matrix with the main diagonal stored,
// inserted in ascending order (every insert is a tail append).
func buildDiagonal(n int) *sparse.Matrix[int] {
	m := sparse.New[int](n, n, 0)
	for i := 1; i <= n; i++ {
		m.Add(i, i, i)
	}

	return m
}

// BenchmarkAdd_Ascending measures tail appends: each insert walks the
// whole chain before splicing.
func BenchmarkAdd_Ascending(b *testing.B) {
	const n = 512
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buildDiagonal(n)
	}
}

// BenchmarkAdd_Descending measures head inserts: each insert splices
// immediately without walking.
func BenchmarkAdd_Descending(b *testing.B) {
	const n = 512
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := sparse.New[int](n, n, 0)
		for j := n; j >= 1; j-- {
			m.Add(j, j, j)
		}
	}
}

// BenchmarkAdd_UpdateInPlace measures rewriting one existing head cell.
func BenchmarkAdd_UpdateInPlace(b *testing.B) {
	m := buildDiagonal(512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Add(1, 1, i+2) // stays distinct from the zero default
	}
}

// BenchmarkAt_HeadHit measures the best-case lookup (first node).
func BenchmarkAt_HeadHit(b *testing.B) {
	m := buildDiagonal(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = m.At(1, 1)
	}
}

// BenchmarkAt_TailHit measures the worst-case stored lookup (last node).
func BenchmarkAt_TailHit(b *testing.B) {
	m := buildDiagonal(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = m.At(1024, 1024)
	}
}

// BenchmarkAt_DefaultMiss measures a full-walk miss resolved as default.
func BenchmarkAt_DefaultMiss(b *testing.B) {
	m := buildDiagonal(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = m.At(1024, 1)
	}
}

// BenchmarkIterate measures a full cursor walk with value reads.
func BenchmarkIterate(b *testing.B) {
	m := buildDiagonal(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for it := m.ConstBegin(); it.Valid(); it.Next() {
			sum += it.Value()
		}
		benchSink = sum
	}
}

// BenchmarkClone measures the ordered deep copy.
func BenchmarkClone(b *testing.B) {
	m := buildDiagonal(512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = m.Clone().Len()
	}
}

// BenchmarkEvaluate measures the dense scan on a diagonal 64×64 matrix.
func BenchmarkEvaluate(b *testing.B) {
	m := buildDiagonal(64)
	even := func(v int) bool { return v%2 == 0 }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = sparse.Evaluate(m, even)
	}
}
