// ════════════════════════════════════════════════════════════════════════════════════════════════
// CPU Relaxation - ARM64 Architecture
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: ARM64 Spin-Wait Optimization
//
// Description:
//   Platform-specific YIELD-instruction hint for ARM64 processors, the
//   AArch64 analogue of relax_amd64.go's PAUSE.
// ════════════════════════════════════════════════════════════════════════════════════════════════

//go:build arm64 && !noasm && !nocgo

package backoff

/*
#ifdef __aarch64__
static inline void cpu_yield() {
    __asm__ __volatile__("yield" ::: "memory");
}
#else
#error "This file requires ARM64 architecture"
#endif
*/
import "C"

// cpuRelax emits the ARM64 YIELD instruction.
//
//go:nosplit
//go:inline
func cpuRelax() {
	C.cpu_yield()
}
