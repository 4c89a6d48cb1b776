package barrier

import (
	"sync/atomic"

	"barrierbench/internal/cacheline"
)

// Flag is a single cache-line-padded handoff cell: one child writes it to
// announce arrival, one parent polls it. Allocating these individually
// (never as a bare array) keeps a hardware prefetcher from pulling a
// sibling's flag into the same line as the one a participant is spinning
// on.
type Flag struct {
	sense atomic.Bool
	_     cacheline.Pad64
}

// NewFlag returns a Flag pre-set to the tree builder's initial sense value.
func NewFlag() *Flag {
	f := &Flag{}
	f.sense.Store(true)
	return f
}
