// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: cacheline.go — compile-time cache-line constants and padding
//
// Purpose:
//   - Defines the target machine's cache-line size and a pad block so every
//     shared atomic cell used by the barrier package can be placed alone on
//     its own line.
//
// Notes:
//   - Size is fixed at compile time, matching the original C++ reference's
//     CACHE_LINE_SIZE macro (64 bytes on the Sandy Bridge target machine).
//   - Go array lengths must be constant expressions, so a per-field-size pad
//     (as the teacher's ring.go computes inline, e.g. `_ [64-8]byte` behind
//     a uint64) can't be produced by a helper function call. Pad64 is sized
//     generously instead and used after every shared cell regardless of the
//     cell's exact width.
// ─────────────────────────────────────────────────────────────────────────────

package cacheline

// Size is the assumed hardware cache-line size in bytes.
const Size = 64

// Pad64 is a cache-line-sized byte block for embedding after a shared
// atomic cell, leaving the rest of the line untouched by any other writer.
type Pad64 [Size]byte
