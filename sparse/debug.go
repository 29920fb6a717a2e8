// SPDX-License-Identifier: MIT

// Package sparse: debug-level diagnostics. Observers only: nothing in
// this file may influence container behavior, and nothing in the
// container depends on it.
package sparse

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Dump writes the full container state (shape, default, count, and the
// ordered chain) to the "sparse" trace channel at debug level. Values
// are rendered with spew so arbitrary element types stay readable
// without per-type format verbs. A no-op unless a tracing adapter
// routes the channel somewhere.
// Complexity: O(n).
func (m *Matrix[T]) Dump() {
	tracer().Debugf("matrix %dx%d default=%s len=%d",
		m.rows, m.cols, sdump(m.def), m.n)

	idx := 0
	for cur := m.head; cur != nil; cur = cur.next {
		tracer().Debugf("  node[%d] (%d,%d) = %s",
			idx, cur.cell.Row, cur.cell.Col, sdump(cur.cell.Value))
		idx++
	}
}

// sdump renders one value on one line for trace output.
func sdump(v any) string {
	return strings.TrimSpace(spew.Sdump(v))
}
