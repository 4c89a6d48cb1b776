// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: centralized.go — centralized sense-reversing barrier (C7)
//
// Algorithm:
//   1. post := c.Add(1) (release); Add returns the incremented count.
//   2. If post == N: the caller is the releaser — it has just observed every
//      other arrival, so it resets c to 0 and flips the shared sense to its
//      own local sense (release), waking every waiter in one store.
//   3. Otherwise: spin on sense until it equals the local sense. The spin's
//      last (sequentially consistent) load is the synchronizing one; no
//      separate load follows it.
//   4. Flip the local sense for next episode.
//
// Memory ordering:
//   - Go's atomic.Int32/atomic.Bool are sequentially consistent; every load
//     and store below is therefore stronger than the release/acquire/relaxed
//     split the algorithm calls for, never weaker.
// ─────────────────────────────────────────────────────────────────────────────

package barrier

import (
	"fmt"
	"sync/atomic"

	"barrierbench/internal/cacheline"
)

// centralizedGap is the padding inserted between the arrival counter and the
// sense flag: 64 cache lines, wide enough that a streaming prefetcher
// touching one can never pull in the other.
const centralizedGap = 64 * cacheline.Size

// Centralized is a centralized sense-reversing barrier shared by exactly N
// participants.
type Centralized struct {
	c atomic.Int32
	_ [centralizedGap]byte

	sense atomic.Bool
	_     cacheline.Pad64

	n int32
}

// NewCentralized allocates a barrier for n participants. n must be >= 1;
// n < 1 is a configuration error the caller made, not a recoverable runtime
// condition, so it panics.
func NewCentralized(n int) *Centralized {
	if n < 1 {
		panic(fmt.Sprintf("barrier: centralized barrier needs n >= 1, got %d", n))
	}
	b := &Centralized{n: int32(n)}
	b.sense.Store(true)
	return b
}

// N reports the participant count the barrier was built for.
func (b *Centralized) N() int { return int(b.n) }

// CentralizedParticipant is one participant's call-site handle into a
// Centralized barrier: it owns the thread-local sense bit the algorithm
// alternates every episode.
type CentralizedParticipant struct {
	b  *Centralized
	ls bool
}

// Participant returns a fresh call-site handle. Exactly one goroutine may
// use a given handle's Await at a time.
func (b *Centralized) Participant() *CentralizedParticipant {
	return &CentralizedParticipant{b: b, ls: false}
}

// Await blocks until N participants (across all handles sharing this
// barrier) have called Await since the last release.
func (p *CentralizedParticipant) Await() {
	b := p.b

	post := b.c.Add(1)
	if post == b.n {
		b.c.Store(0)
		b.sense.Store(p.ls)
	} else {
		for b.sense.Load() != p.ls {
		}
	}

	p.ls = !p.ls
}
