package rbtree

import (
	"fmt"

	"github.com/mwoerister/pmap/container/rbtree/diag"
)

// node is either an internal node (leaf == false), holding a key, a value,
// and two children, or a leaf sentinel (leaf == true) terminating every
// branch of the tree. Nodes are immutable once constructed: every operation
// that would "change" a node instead constructs a new one and lets the old
// one be shared by whichever map versions already reference it.
type node[K, V any] struct {
	color Color
	leaf  bool
	left  *node[K, V]
	key   K
	value V
	right *node[K, V]
}

// newLeaf constructs a leaf sentinel. Only Black and DoubleBlack are legal
// leaf colors; DoubleBlack leaves exist only transiently during deletion.
func newLeaf[K, V any](color Color) *node[K, V] {
	if color != Black && color != DoubleBlack {
		panic(fmt.Errorf("rbtree: leaf color must be Black or DoubleBlack, got %s", color))
	}
	diag.LeafReturned()
	return &node[K, V]{color: color, leaf: true}
}

// newNode constructs an internal node.
func newNode[K, V any](color Color, left *node[K, V], key K, value V, right *node[K, V]) *node[K, V] {
	diag.NodeAllocated()
	return &node[K, V]{color: color, left: left, key: key, value: value, right: right}
}

// redden recolors an internal node to Red. Panics on a leaf.
func redden[K, V any](n *node[K, V]) *node[K, V] {
	if n.leaf {
		panic(fmt.Errorf("rbtree: cannot redden a leaf"))
	}
	diag.NodeAllocated()
	return &node[K, V]{color: Red, left: n.left, key: n.key, value: n.value, right: n.right}
}

// blacken recolors any node to Black. A DoubleBlack leaf becomes a Black
// leaf; an already-Black node is still reconstructed (cheap: it is an
// immutable pointer swap at the allocation site, not a tree walk).
func blacken[K, V any](n *node[K, V]) *node[K, V] {
	if n.leaf {
		diag.LeafReturned()
		return &node[K, V]{color: Black, leaf: true}
	}
	diag.NodeAllocated()
	return &node[K, V]{color: Black, left: n.left, key: n.key, value: n.value, right: n.right}
}

// withInc applies Color.inc to n's color without touching its children.
func withInc[K, V any](n *node[K, V]) *node[K, V] {
	color := n.color.inc()
	if n.leaf {
		diag.LeafReturned()
		return &node[K, V]{color: color, leaf: true}
	}
	diag.NodeAllocated()
	return &node[K, V]{color: color, left: n.left, key: n.key, value: n.value, right: n.right}
}

// withDec applies Color.dec to n's color without touching its children.
func withDec[K, V any](n *node[K, V]) *node[K, V] {
	color := n.color.dec()
	if n.leaf {
		diag.LeafReturned()
		return &node[K, V]{color: color, leaf: true}
	}
	diag.NodeAllocated()
	return &node[K, V]{color: color, left: n.left, key: n.key, value: n.value, right: n.right}
}

// findMaxKVP returns the key/value pair with the largest key in n's subtree.
// n must not be a leaf.
func findMaxKVP[K, V any](n *node[K, V]) (K, V) {
	if n.leaf {
		panic(fmt.Errorf("rbtree: findMaxKVP called on a leaf"))
	}
	if n.right.leaf {
		return n.key, n.value
	}
	return findMaxKVP(n.right)
}
