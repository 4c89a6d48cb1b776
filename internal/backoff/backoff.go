// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: backoff.go — spin-wait delay and backoff policies
//
// Purpose:
//   - Provides the CPU-hint pause primitive and the exponential/constant/
//     no-op backoff policies from the original atomic_backoff.hpp.
//
// Notes:
//   - None of the measured barrier variants in package barrier use these —
//     they spin continuously, since exactly one participant is pinned per
//     core. This package exists because the reference library ships it as
//     a reusable primitive, not because the hot paths need it.
// ─────────────────────────────────────────────────────────────────────────────

package backoff

import "runtime"

// Delay spins for amount iterations, issuing a CPU relax hint each time.
// Equivalent to the original delay.hpp's inline PAUSE loop.
func Delay(amount int) {
	for i := 0; i < amount; i++ {
		cpuRelax()
	}
}

const maxTries = 16

// Policy is a stateful backoff strategy: repeated calls to Backoff grow the
// delay until a cap is reached, after which the policy falls back to
// runtime.Gosched.
type Policy interface {
	Backoff()
	Reset()
}

// None never delays. Included because the C++ reference enumerates it as a
// valid (if useless) backoff policy.
type None struct{}

func (None) Backoff() {}
func (None) Reset()   {}

// Constant delays by a fixed number of pause iterations regardless of how
// many times Backoff has been called.
type Constant struct {
	amount int
}

// NewConstant returns a Constant policy with the reference implementation's
// default delay of 16 pause iterations.
func NewConstant() *Constant { return &Constant{amount: 16} }

func (c *Constant) Backoff() { Delay(c.amount) }
func (c *Constant) Reset()   {}

// Exponential doubles its delay on every call, starting at 1 pause
// iteration, while the delay is at most maxTries iterations (1, 2, 4, 8,
// 16); every later call yields the goroutine's processor via
// runtime.Gosched instead of spinning further. This is the reference library's default_atomic_backoff.
type Exponential struct {
	tries int
}

// NewExponential returns a fresh Exponential policy, ready for its first
// Backoff call.
func NewExponential() *Exponential { return &Exponential{tries: 1} }

func (e *Exponential) Backoff() {
	if e.tries <= maxTries {
		Delay(e.tries)
		e.tries *= 2
		return
	}
	runtime.Gosched()
}

func (e *Exponential) Reset() { e.tries = 1 }
