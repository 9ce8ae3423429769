package rbtree

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwoerister/pmap/compare"
	"github.com/mwoerister/pmap/container/rbtree/diag"
)

// TestStructuralSharingBound asserts the central promise of the package:
// one mutation against a tree of n entries allocates O(log n) nodes, never
// O(n). If Insert ever started copying the whole tree instead of sharing
// untouched subtrees, this is the test that would catch it.
func TestStructuralSharingBound(t *testing.T) {
	const n = 4096

	m := New[int, int](compare.Function[int])
	for i := 0; i < n; i++ {
		var inserted bool
		m, inserted = m.Insert(i, i)
		require.True(t, inserted)
	}
	require.NoError(t, m.CheckInvariants())

	// A generous bound: a few times the tree's own depth, to leave room
	// for the rebalancing cases (balance/bubble can allocate a constant
	// number of extra nodes per level visited).
	maxAllocations := int64(8 * (bits.Len(uint(n)) + 1))

	before := diag.Take()
	var inserted bool
	m, inserted = m.Insert(n, n)
	require.True(t, inserted)
	insertDelta := before.Since()

	if insertDelta.Nodes > maxAllocations {
		t.Errorf("Insert into a %d-entry map allocated %d nodes, want <= %d (O(log n), not O(n))",
			n, insertDelta.Nodes, maxAllocations)
	}

	before = diag.Take()
	m, removed := m.Remove(n / 2)
	require.True(t, removed)
	removeDelta := before.Since()

	if removeDelta.Nodes > maxAllocations {
		t.Errorf("Remove from a %d-entry map allocated %d nodes, want <= %d (O(log n), not O(n))",
			n, removeDelta.Nodes, maxAllocations)
	}

	require.NoError(t, m.CheckInvariants())
}
