// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: tree_local.go — static-tree barrier with local departure (C8)
//
// Algorithm, per node n:
//   1. For each arrival child flag: spin until it equals n's local sense
//      (the spin's last load is the synchronizing one). The flags are never reset —
//      successive episodes alternate which value counts as "arrived" by
//      flipping the local sense instead, saving a store per child per
//      episode.
//   2. If n has a parent: publish n's local sense into the parent's arrival
//      flag, then spin on n's own departure-sense cell until the parent
//      signals departure.
//   3. Release n's local sense into every departure child's sense cell.
//   4. Flip n's local sense.
//
// An N that doesn't match the number of participants actually wired into
// the tree deadlocks every participant — topology.BuildLocal is the only
// supported way to get a consistent tree, precisely to prevent that.
// ─────────────────────────────────────────────────────────────────────────────

package barrier

import (
	"sync/atomic"

	"barrierbench/internal/cacheline"
)

// LocalNode is one participant's position in a static arrival/departure
// tree. Allocate one per participant, never as an element of an array —
// sharing a cache line across nodes is exactly the false-sharing pattern
// the tree shape exists to avoid.
type LocalNode struct {
	departureSense atomic.Bool
	_              cacheline.Pad64

	arrivalParent     *Flag
	arrivalChildren   []*Flag
	departureChildren []*LocalNode

	localSense bool
	_          cacheline.Pad64
}

// NewLocalNode returns an unwired node with its departure-sense cell and
// local sense at their initial values. topology.BuildLocal wires the
// arrival/departure edges afterward.
func NewLocalNode() *LocalNode {
	n := &LocalNode{}
	n.departureSense.Store(true)
	return n
}

// SetArrivalParent wires n's arrival flag in its parent's node.
func (n *LocalNode) SetArrivalParent(f *Flag) { n.arrivalParent = f }

// SetArrivalChildren wires the flags n's children will publish arrival
// into, in a fixed, documented order.
func (n *LocalNode) SetArrivalChildren(flags []*Flag) { n.arrivalChildren = flags }

// SetDepartureChildren wires the nodes n notifies on departure. Per C8's
// construction rule, this mirrors the arrival-children order exactly.
func (n *LocalNode) SetDepartureChildren(children []*LocalNode) { n.departureChildren = children }

// ArrivalParent reports the flag n publishes its arrival into, or nil if n
// is the tree's root.
func (n *LocalNode) ArrivalParent() *Flag { return n.arrivalParent }

// Await blocks until n's entire subtree has arrived and n's parent (if any)
// has signaled departure, then propagates departure to n's children.
func (n *LocalNode) Await() {
	for _, f := range n.arrivalChildren {
		for f.sense.Load() != n.localSense {
		}
	}

	if n.arrivalParent != nil {
		n.arrivalParent.sense.Store(n.localSense)

		for n.departureSense.Load() != n.localSense {
		}
	}

	for _, c := range n.departureChildren {
		c.departureSense.Store(n.localSense)
	}

	n.localSense = !n.localSense
}
