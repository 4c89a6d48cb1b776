// relax_stub.go — fallback no-op cpuRelax for architectures without a
// dedicated spin-wait hint, or when cgo/asm are disabled.
//
// Use-case:
//   - Safe to embed in any spin loop; does nothing by design on unsupported
//     hardware.

//go:build (!amd64 && !arm64) || noasm || nocgo

package backoff

//go:nosplit
//go:inline
func cpuRelax() {}
