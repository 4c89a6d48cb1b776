// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: topology.go — static arrival/departure tree builder (C10)
//
// Builds the fixed tree shapes the driver wires a barrier's nodes into for
// a given participant count N and locality mode. The edge tables below are
// transcribed directly from the reference benchmark's good/bad-locality
// switch statements: each entry names a parent participant index and the
// ordered list of its arrival children. Every edge list is wired twice —
// once into barrier.LocalNode trees (C8, mirrored departure), once into
// barrier.GlobalNode trees (C9, shared departure) — since the shape itself
// doesn't depend on which departure scheme rides on top of it.
//
// N outside [1,8] is a configuration error: nothing in this package can
// build a tree for it, so BuildLocal and BuildGlobal panic rather than
// returning a zero value a
// caller might wire a barrier onto by mistake.
// ─────────────────────────────────────────────────────────────────────────────

package topology

import (
	"fmt"

	"barrierbench/barrier"
)

// Locality selects which of the two fixed edge tables BuildLocal and
// BuildGlobal use.
type Locality int

const (
	// Good places a parent/child edge between participants whose pinned
	// cores are physically adjacent (siblings sharing an L1/L2).
	Good Locality = iota
	// Bad deliberately routes edges across physical package or
	// core-group boundaries, using the same edge counts as Good.
	Bad
)

// shape maps a parent participant index to its ordered arrival-children
// indices.
type shape map[int][]int

var goodShapes = map[int]shape{
	1: {},
	2: {0: {1}},
	3: {0: {1, 2}},
	4: {0: {1, 2}, 2: {3}},
	5: {0: {4, 2}, 4: {1}, 2: {3}},
	6: {0: {4, 2}, 4: {1, 5}, 2: {3}},
	7: {0: {4, 2}, 4: {1, 5}, 2: {3, 6}},
	8: {0: {4, 2}, 4: {1, 5}, 2: {3, 6}, 3: {7}},
}

var badShapes = map[int]shape{
	1: {},
	2: {0: {1}},
	3: {0: {1, 2}},
	4: {0: {3, 2}, 2: {1}},
	5: {0: {3, 2}, 2: {1}, 3: {4}},
	6: {0: {3, 2}, 2: {1, 5}, 3: {4}},
	7: {0: {3, 2}, 2: {1, 5}, 3: {4}, 4: {6}},
	8: {0: {3, 2}, 2: {1, 5}, 3: {4}, 4: {6, 7}},
}

func shapeFor(n int, loc Locality) (shape, error) {
	if n < 1 || n > 8 {
		return nil, fmt.Errorf("topology: N must be in [1,8], got %d", n)
	}
	tables := goodShapes
	if loc == Bad {
		tables = badShapes
	}
	sh, ok := tables[n]
	if !ok {
		return nil, fmt.Errorf("topology: no shape table entry for N=%d", n)
	}
	return sh, nil
}

// BuildLocal wires n barrier.LocalNode values into the arrival/departure
// tree for the given locality mode. nodes[i] is the node the participant
// pinned to logical slot i must use. Panics if n is outside [1,8].
func BuildLocal(n int, loc Locality) []*barrier.LocalNode {
	sh, err := shapeFor(n, loc)
	if err != nil {
		panic(err)
	}

	nodes := make([]*barrier.LocalNode, n)
	for i := range nodes {
		nodes[i] = barrier.NewLocalNode()
	}

	for parent, children := range sh {
		flags := make([]*barrier.Flag, len(children))
		for i := range flags {
			flags[i] = barrier.NewFlag()
		}
		nodes[parent].SetArrivalChildren(flags)

		departureChildren := make([]*barrier.LocalNode, len(children))
		for i, c := range children {
			nodes[c].SetArrivalParent(flags[i])
			departureChildren[i] = nodes[c]
		}
		nodes[parent].SetDepartureChildren(departureChildren)
	}

	return nodes
}

// BuildGlobal wires n barrier.GlobalNode values, sharing one
// barrier.GlobalSense, into the arrival tree for the given locality mode.
// Panics if n is outside [1,8].
func BuildGlobal(n int, loc Locality) []*barrier.GlobalNode {
	sh, err := shapeFor(n, loc)
	if err != nil {
		panic(err)
	}

	shared := barrier.NewGlobalSense()
	nodes := make([]*barrier.GlobalNode, n)
	for i := range nodes {
		nodes[i] = barrier.NewGlobalNode(shared)
	}

	for parent, children := range sh {
		flags := make([]*barrier.Flag, len(children))
		for i := range flags {
			flags[i] = barrier.NewFlag()
		}
		nodes[parent].SetArrivalChildren(flags)

		for i, c := range children {
			nodes[c].SetArrivalParent(flags[i])
		}
	}

	return nodes
}
