// Package diag keeps process-wide counters of node allocations performed by
// the rbtree package. The counters exist to make structural sharing, which
// is otherwise just an internal implementation property, into something
// tests can assert on directly: a mutation against a tree of depth d should
// allocate O(d) nodes, never O(n).
//
// The counters are incremented from possibly-concurrent goroutines (readers
// of independently derived, immutable map values never race, but goroutines
// each mutating their own derived map do race on these shared counters), so
// they are backed by go.uber.org/atomic rather than plain integers.
package diag

import "go.uber.org/atomic"

var (
	nodesAllocated atomic.Int64
	leavesReturned atomic.Int64
)

// NodeAllocated records that one new internal node was constructed.
func NodeAllocated() {
	nodesAllocated.Inc()
}

// LeafReturned records that a leaf sentinel was constructed. Leaves carry no
// key or value, so they are cheap, but they are still freshly allocated on
// every call rather than shared; this counter is kept separate from
// NodeAllocated so tests can tell "built a zero-payload leaf" apart from
// "built a real node" when reasoning about how much a mutation allocated.
func LeafReturned() {
	leavesReturned.Inc()
}

// NodesAllocated returns the number of internal nodes allocated so far by
// this process.
func NodesAllocated() int64 {
	return nodesAllocated.Load()
}

// LeavesReturned returns the number of leaf sentinels constructed so far by
// this process.
func LeavesReturned() int64 {
	return leavesReturned.Load()
}

// Snapshot holds both counter values as read by Take. Each counter is loaded
// atomically on its own, but the pair is not read as one atomic unit, so a
// concurrent mutator can advance one counter between the two loads. Callers
// use Snapshot to compute a before/after delta across a single mutation they
// control.
type Snapshot struct {
	Nodes  int64
	Leaves int64
}

// Take returns the current counter values.
func Take() Snapshot {
	return Snapshot{
		Nodes:  nodesAllocated.Load(),
		Leaves: leavesReturned.Load(),
	}
}

// Since returns the number of nodes and leaves accounted for between the
// given snapshot and now.
func (s Snapshot) Since() Snapshot {
	now := Take()
	return Snapshot{
		Nodes:  now.Nodes - s.Nodes,
		Leaves: now.Leaves - s.Leaves,
	}
}
