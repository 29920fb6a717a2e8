// SPDX-License-Identifier: MIT
// Package sparse_test: shared fixtures for the container tests.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// newSixCell builds the canonical 3×2 fixture with every position stored:
//
//	(1,1)=3 (1,2)=2
//	(2,1)=3 (2,2)=5
//	(3,1)=5 (3,2)=6
//
// default 999, inserted in an order that exercises head, middle, and tail
// splices plus in-place updates.
func newSixCell(t *testing.T) *sparse.Matrix[int] {
	t.Helper()

	m := sparse.New[int](3, 2, 999)
	m.Add(2, 2, 4)  // first node
	m.Add(2, 2, 14) // in-place update
	m.Add(1, 2, 2)  // head insert
	m.Add(2, 2, 5)  // in-place update again
	m.Add(1, 1, 3)  // new head
	m.Add(3, 2, 6)  // tail append
	m.Add(3, 1, 5)  // middle insert
	m.Add(2, 1, 3)  // middle insert
	require.Equal(t, 6, m.Len(), "fixture must store all six cells")

	return m
}

// sixCellOrder is the expected chain order of the newSixCell fixture.
var sixCellOrder = [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 1}, {3, 2}}
