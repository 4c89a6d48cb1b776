// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: json.go — machine-readable report sibling (A4)
//
// Carries the same grid the TSV carries, plus the fingerprint and run
// config, for tooling that would rather parse JSON than a tab-separated
// table. Uses sonnet as a drop-in encoding/json replacement, the same
// library the teacher pulls in for its own hot-path JSON decoding.
// ─────────────────────────────────────────────────────────────────────────────

package report

import (
	"fmt"
	"os"

	"github.com/sugawarayuuta/sonnet"
)

type jsonDoc struct {
	Fingerprint string   `json:"fingerprint"`
	Config      Config   `json:"config"`
	Grid        [][]Cell `json:"grid"`
}

// WriteJSON renders run to path as the JSON sibling of the TSV report.
func WriteJSON(path string, run Summary) error {
	doc := jsonDoc{
		Fingerprint: run.Fingerprint,
		Config:      run.Config,
		Grid:        run.Grid,
	}

	out, err := sonnet.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshal json: %w", err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
