// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: fingerprint.go — run-configuration content hash (A5)
//
// Hashes the serialized run configuration so two report files sharing a
// fingerprint are guaranteed to have been produced by byte-identical
// configurations — the basis for the driver's determinism property.
// ─────────────────────────────────────────────────────────────────────────────

package report

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Fingerprint hashes cfg to a hex-encoded SHA3-256 digest.
func Fingerprint(cfg Config) string {
	var b strings.Builder
	b.WriteString(cfg.BarrierClass)
	b.WriteByte('|')
	b.WriteString(cfg.Locality)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(cfg.MaxN))
	b.WriteByte('|')
	for i, w := range cfg.Workloads {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(w))
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(cfg.Trials))
	b.WriteByte('|')
	b.WriteString(fmt.Sprintf("%d", cfg.Seed))

	sum := sha3.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
