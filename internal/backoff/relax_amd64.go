// ════════════════════════════════════════════════════════════════════════════════════════════════
// CPU Relaxation - AMD64 Architecture
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: x86-64 Spin-Wait Optimization
//
// Description:
//   Platform-specific PAUSE-instruction hint for x86-64 processors, used by
//   this package's backoff policies. The measured barrier.Await paths spin
//   on a plain atomic Load and deliberately never call cpuRelax — see
//   DESIGN.md. Improves power efficiency and SMT sibling throughput during
//   busy-waiting wherever a policy does call it.
// ════════════════════════════════════════════════════════════════════════════════════════════════

//go:build amd64 && !noasm && !nocgo

package backoff

/*
#ifdef __x86_64__
static inline void cpu_pause() {
    __asm__ __volatile__("pause" ::: "memory");
}
#else
#error "This file requires x86-64 architecture"
#endif
*/
import "C"

// cpuRelax emits the x86-64 PAUSE instruction.
//
//go:nosplit
//go:inline
func cpuRelax() {
	C.cpu_pause()
}
