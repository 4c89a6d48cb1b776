// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — zero-allocation diagnostic logger
//
// Purpose:
//   - Logs cold-path diagnostics (configuration panics, affinity failures,
//     archive/report I/O errors) without introducing heap pressure.
//   - Used only in cold paths: setup failures, per-run summaries, recoverable
//     I/O errors. Never call from inside a trial's timed region.
//
// Notes:
//   - Avoids fmt.Sprintf: string concatenation plus a single raw write(2) to
//     stderr, bypassing os.Stderr's buffering layers entirely.
//
// ⚠️ Never invoke from within a barrier's timed episode — only at setup,
// teardown, or between trials.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "syscall"

// printWarning writes msg directly to stderr (fd 2) via a raw write syscall.
func printWarning(msg string) {
	syscall.Write(2, []byte(msg))
}

// DropError logs prefix alongside err's message, or just prefix if err is
// nil (used for GC-phase tags and other contextless markers).
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		printWarning(prefix + ": " + err.Error() + "\n")
	} else {
		printWarning(prefix + "\n")
	}
}

// DropMessage logs a prefix/message pair for cold-path diagnostics:
// configuration decisions, run summaries, connection-equivalent state
// changes.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	printWarning(prefix + ": " + message + "\n")
}
