package barrier

import (
	"sync"
	"testing"
	"time"
)

func buildGlobalChain() []*GlobalNode {
	shared := NewGlobalSense()
	root := NewGlobalNode(shared)
	mid := NewGlobalNode(shared)
	leaf := NewGlobalNode(shared)

	f01 := NewFlag()
	f12 := NewFlag()

	root.SetArrivalChildren([]*Flag{f01})
	mid.SetArrivalParent(f01)

	mid.SetArrivalChildren([]*Flag{f12})
	leaf.SetArrivalParent(f12)

	return []*GlobalNode{root, mid, leaf}
}

func TestGlobalTreeMutualProgress(t *testing.T) {
	nodes := buildGlobalChain()

	var wg sync.WaitGroup
	for _, n := range nodes {
		wg.Add(1)
		go func(n *GlobalNode) {
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

func TestGlobalTreeSharedSenseCell(t *testing.T) {
	nodes := buildGlobalChain()
	for _, n := range nodes[1:] {
		if n.shared != nodes[0].shared {
			t.Fatal("every node in one barrier instance must share the same GlobalSense cell")
		}
	}
}
