package rbtree

import "fmt"

// removeKey deletes key from n if present, sets *count to 1 if it was
// present or 0 otherwise, and returns the blackened new root.
func removeKey[K, V any](n *node[K, V], key K, cmp func(K, K) int, count *int) *node[K, V] {
	return blacken(del(n, key, cmp, count))
}

// del finds the node holding key and hands it to removeNode, bubbling any
// resulting double-black back up through every ancestor on the path.
func del[K, V any](n *node[K, V], key K, cmp func(K, K) int, count *int) *node[K, V] {
	if n.leaf {
		*count = 0
		return n
	}

	switch c := cmp(key, n.key); {
	case c < 0:
		return bubble(n.color, del(n.left, key, cmp, count), n.key, n.value, n.right)
	case c > 0:
		return bubble(n.color, n.left, n.key, n.value, del(n.right, key, cmp, count))
	default:
		*count = 1
		return removeNode(n)
	}
}

// removeNode deletes n itself, given that n is the target of the deletion.
// It must preserve black-height: removing a node can leave behind a
// DoubleBlack sentinel that the caller (del, via bubble) is responsible for
// propagating upward.
func removeNode[K, V any](n *node[K, V]) *node[K, V] {
	left, right := n.left, n.right

	if left.leaf && right.leaf {
		if n.color == Red {
			return newLeaf[K, V](Black)
		}
		if n.color != Black {
			panic(fmt.Errorf("rbtree: node with two leaf children must be Red or Black, got %s", n.color))
		}
		return newLeaf[K, V](DoubleBlack)
	}

	if n.color == Red {
		// A Red node with exactly one leaf child: black-balance forces
		// the non-leaf sibling to be Red too, so it can be returned
		// directly without recoloring. A Black non-leaf sibling here
		// would mean the tree was already black-unbalanced before this
		// call; that can't happen in a well-formed tree, so it's an
		// assertion rather than a case this function handles.
		if right.leaf {
			if left.color != Red {
				panic(fmt.Errorf("rbtree: Red node with a leaf child has a non-Red sibling (%s)", left.color))
			}
			return left
		}
		if left.leaf {
			if right.color != Red {
				panic(fmt.Errorf("rbtree: Red node with a leaf child has a non-Red sibling (%s)", right.color))
			}
			return right
		}
	}

	if n.color == Black {
		if left.color == Red && right.leaf {
			return newNode(Black, left.left, left.key, left.value, left.right)
		}
		if left.leaf && right.color == Red {
			return newNode(Black, right.left, right.key, right.value, right.right)
		}
		if left.leaf && right.color == Black {
			return withInc(right)
		}
		if left.color == Black && right.leaf {
			return withInc(left)
		}
	}

	if !left.leaf && !right.leaf {
		maxKey, maxValue := findMaxKVP(left)
		newLeft := removeMax(left)
		return bubble(n.color, newLeft, maxKey, maxValue, right)
	}

	panic(fmt.Errorf("rbtree: removeNode reached an unreachable node shape"))
}

// removeMax deletes the maximum-keyed node of n's subtree.
func removeMax[K, V any](n *node[K, V]) *node[K, V] {
	if n.right.leaf {
		return removeNode(n)
	}
	return bubble(n.color, n.left, n.key, n.value, removeMax(n.right))
}

// bubble reassembles a node from its (possibly just-mutated) children,
// pushing any DoubleBlack it finds up one level by shifting black-height
// into the node itself and letting balance absorb the fallout.
func bubble[K, V any](color Color, left *node[K, V], key K, value V, right *node[K, V]) *node[K, V] {
	if left.color == DoubleBlack || right.color == DoubleBlack {
		return balance(newNode(color.inc(), withDec(left), key, value, withDec(right)))
	}
	return newNode(color, left, key, value, right)
}
