package barrier

import (
	"sync"
	"testing"
	"time"
)

// buildLocalChain wires a 3-node chain (0 <- 1 <- 2) directly, independent
// of the topology package, so this file can exercise LocalNode in
// isolation.
func buildLocalChain() []*LocalNode {
	root := NewLocalNode()
	mid := NewLocalNode()
	leaf := NewLocalNode()

	f01 := NewFlag()
	f12 := NewFlag()

	root.SetArrivalChildren([]*Flag{f01})
	root.SetDepartureChildren([]*LocalNode{mid})
	mid.SetArrivalParent(f01)

	mid.SetArrivalChildren([]*Flag{f12})
	mid.SetDepartureChildren([]*LocalNode{leaf})
	leaf.SetArrivalParent(f12)

	return []*LocalNode{root, mid, leaf}
}

func TestLocalTreeMutualProgress(t *testing.T) {
	nodes := buildLocalChain()

	var wg sync.WaitGroup
	for _, n := range nodes {
		wg.Add(1)
		go func(n *LocalNode) {
			defer wg.Done()
			for e := 0; e < 20; e++ {
				n.Await()
			}
		}(n)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("three-node chain never drained")
	}
}

func TestLocalTreeFlagsNeverShareLine(t *testing.T) {
	nodes := buildLocalChain()
	seen := map[*Flag]bool{}
	for _, n := range nodes {
		for _, f := range n.arrivalChildren {
			if seen[f] {
				t.Fatalf("flag %p reused across nodes", f)
			}
			seen[f] = true
		}
	}
}

func TestLocalTreeSingleNodeHasNoParent(t *testing.T) {
	n := NewLocalNode()
	done := make(chan struct{})
	go func() {
		n.Await()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("a node with no arrival parent and no children must never block")
	}
}
