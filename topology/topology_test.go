package topology

import (
	"sync"
	"testing"
	"time"
)

func TestBuildLocalN4GoodLocalityShape(t *testing.T) {
	nodes := BuildLocal(4, Good)
	if len(nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(nodes))
	}
	if nodes[0].ArrivalParent() != nil {
		t.Fatal("node 0 must be root")
	}
	if nodes[1].ArrivalParent() == nil || nodes[2].ArrivalParent() == nil {
		t.Fatal("nodes 1 and 2 must have node 0 as parent")
	}
	if nodes[3].ArrivalParent() == nil {
		t.Fatal("node 3 must have node 2 as parent")
	}
}

func TestBuildPanicsOutsideRange(t *testing.T) {
	for _, n := range []int{0, 9, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("BuildLocal(%d) should have panicked", n)
				}
			}()
			BuildLocal(n, Good)
		}()
	}
}

func TestBuildLocalAllEightDrainTogether(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for _, loc := range []Locality{Good, Bad} {
			nodes := BuildLocal(n, loc)

			var wg sync.WaitGroup
			for _, node := range nodes {
				wg.Add(1)
				go func(node interface{ Await() }) {
					defer wg.Done()
					for e := 0; e < 5; e++ {
						node.Await()
					}
				}(node)
			}

			done := make(chan struct{})
			go func() { wg.Wait(); close(done) }()

			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatalf("N=%d locality=%v tree never drained", n, loc)
			}
		}
	}
}

func TestBuildGlobalAllEightDrainTogether(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for _, loc := range []Locality{Good, Bad} {
			nodes := BuildGlobal(n, loc)

			var wg sync.WaitGroup
			for _, node := range nodes {
				wg.Add(1)
				go func(node interface{ Await() }) {
					defer wg.Done()
					for e := 0; e < 5; e++ {
						node.Await()
					}
				}(node)
			}

			done := make(chan struct{})
			go func() { wg.Wait(); close(done) }()

			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatalf("N=%d locality=%v tree never drained", n, loc)
			}
		}
	}
}
