// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: tree_global.go — static-tree barrier with global departure (C9)
//
// Arrival phase is identical to the local-departure tree (tree_local.go).
// Departure collapses to a single shared sense flag: the root writes it
// once it has collected every arrival, and every non-root node spins on
// that same cell instead of a private one. This trades the O(log N)
// departure stores of C8 for one broadcast store shared by all readers —
// a win on small N with uniform NUMA placement, a cache-line contention
// point if it isn't.
// ─────────────────────────────────────────────────────────────────────────────

package barrier

import (
	"sync/atomic"

	"barrierbench/internal/cacheline"
)

// GlobalSense is the single departure flag shared by every node in one
// static-tree-with-global-departure barrier instance.
type GlobalSense struct {
	sense atomic.Bool
	_     cacheline.Pad64
}

// NewGlobalSense returns a departure flag at its initial value.
func NewGlobalSense() *GlobalSense {
	g := &GlobalSense{}
	g.sense.Store(true)
	return g
}

// GlobalNode is one participant's position in the arrival tree of a
// static-tree-with-global-departure barrier.
type GlobalNode struct {
	arrivalParent   *Flag
	arrivalChildren []*Flag

	localSense bool
	_          cacheline.Pad64

	shared *GlobalSense
}

// NewGlobalNode returns an unwired node bound to shared's departure flag.
func NewGlobalNode(shared *GlobalSense) *GlobalNode {
	return &GlobalNode{shared: shared}
}

// SetArrivalParent wires n's arrival flag in its parent's node.
func (n *GlobalNode) SetArrivalParent(f *Flag) { n.arrivalParent = f }

// ArrivalParent reports the flag n publishes its arrival into, or nil if n
// is the tree's root.
func (n *GlobalNode) ArrivalParent() *Flag { return n.arrivalParent }

// SetArrivalChildren wires the flags n's children will publish arrival
// into, in a fixed, documented order.
func (n *GlobalNode) SetArrivalChildren(flags []*Flag) { n.arrivalChildren = flags }

// Await blocks until n's subtree has arrived, then either waits for the
// root's departure broadcast (non-root) or issues it (root).
func (n *GlobalNode) Await() {
	for _, f := range n.arrivalChildren {
		for f.sense.Load() != n.localSense {
		}
	}

	if n.arrivalParent != nil {
		n.arrivalParent.sense.Store(n.localSense)

		for n.shared.sense.Load() != n.localSense {
		}
	} else {
		n.shared.sense.Store(n.localSense)
	}

	n.localSense = !n.localSense
}
