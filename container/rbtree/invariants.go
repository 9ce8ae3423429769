package rbtree

import "fmt"

// blackHeight computes a node's black-height, using combine to reconcile
// the left and right subtree heights. Passing max detects the tallest
// black-height in the tree; passing min detects the shortest. The two
// agreeing is exactly the black-balance invariant.
//
// Only meaningful on a tree with no NegativeBlack/DoubleBlack node — i.e.
// outside of a balance/bubble call in progress.
func blackHeight[K, V any](n *node[K, V], combine func(a, b int) int) int {
	if n.leaf {
		return 1
	}
	height := combine(blackHeight(n.left, combine), blackHeight(n.right, combine))
	if n.color == Black {
		return height + 1
	}
	return height
}

// blackBalanced reports whether every root-to-leaf path carries the same
// number of Black nodes.
func blackBalanced[K, V any](n *node[K, V]) bool {
	tallest := func(a, b int) int { return max(a, b) }
	shortest := func(a, b int) int { return min(a, b) }
	return blackHeight(n, tallest) == blackHeight(n, shortest)
}

// noRedRed reports whether the tree is free of red-red violations: every
// node's children must carry a persisted color (Red or Black, never a
// transient NegativeBlack/DoubleBlack left over from an unfinished
// rebalance), and a Red node's children must both be Black.
func noRedRed[K, V any](n *node[K, V]) bool {
	if n.leaf {
		return true
	}
	if !n.left.color.persisted() || !n.right.color.persisted() {
		return false
	}
	if n.color == Red && (n.left.color != Black || n.right.color != Black) {
		return false
	}
	return noRedRed(n.left) && noRedRed(n.right)
}

// orderedWalk reports whether n's keys appear in strictly ascending order
// under cmp, and accumulates the count of keys visited into size.
func orderedWalk[K, V any](n *node[K, V], cmp func(K, K) int, prev *K, havePrev *bool, size *int) bool {
	if n.leaf {
		return true
	}
	if !orderedWalk(n.left, cmp, prev, havePrev, size) {
		return false
	}
	if *havePrev && cmp(*prev, n.key) >= 0 {
		return false
	}
	*prev, *havePrev = n.key, true
	*size++
	if !orderedWalk(n.right, cmp, prev, havePrev, size) {
		return false
	}
	return true
}

// BlackBalanced reports whether every root-to-leaf path in m carries the
// same number of Black nodes. Exported, in the spirit of the original
// algorithm's own balanced() method, for callers writing their own
// invariant-fuzzing tests; CheckInvariants is the more convenient entry
// point for most callers.
func (m Map[K, V]) BlackBalanced() bool {
	return blackBalanced(m.root)
}

// NoRedRed reports whether m is free of red-red violations. Exported for the
// same reason as BlackBalanced.
func (m Map[K, V]) NoRedRed() bool {
	return noRedRed(m.root)
}

// CheckInvariants walks m's tree once and reports the first violation found
// among: no red-red violation, black-balance, strictly ascending BST order,
// and an accurate size count. It is not required for the correctness of
// Insert/Remove/Find/Len — it exists so tests (and callers writing their own
// fuzz-style checks) have one call that asserts the whole structure is
// sound.
func (m Map[K, V]) CheckInvariants() error {
	if !noRedRed(m.root) {
		return fmt.Errorf("rbtree: red-red violation")
	}
	if !blackBalanced(m.root) {
		return fmt.Errorf("rbtree: black-height imbalance")
	}

	var prev K
	havePrev := false
	size := 0
	if !orderedWalk(m.root, m.cmp, &prev, &havePrev, &size) {
		return fmt.Errorf("rbtree: keys out of order")
	}
	if size != m.size {
		return fmt.Errorf("rbtree: size mismatch: tree holds %d keys, Len reports %d", size, m.size)
	}
	return nil
}
