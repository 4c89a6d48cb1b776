// ─────────────────────────────────────────────────────────────────────────────
// Package barrier — thread-barrier synchronization primitives.
//
// Three interchangeable barrier classes, each exposing the same shape: a
// constructor that wires up shared state for N participants, and a
// per-participant handle whose Await method blocks until all N have called
// it. None retry, time out, or recover from a missing arrival — an
// unbalanced episode (a participant that never calls Await, or calls it
// twice) deadlocks every other participant, by design.
//
// Go's sync/atomic loads and stores are sequentially consistent, a strictly
// stronger guarantee than the relaxed/acquire/release orderings the
// reference algorithms specify. The spin loops therefore have no separate
// synchronizing load after the polling loop: the last load of the spin,
// the one that observes the awaited value, already provides that ordering.
// ─────────────────────────────────────────────────────────────────────────────

package barrier
