// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: archive.go — raw per-trial sample store (A3)
//
// Grounded on the teacher's own openDatabase/loadPoolsFromDatabase: same
// sql.Open("sqlite3", path) pattern, same "create the table if it isn't
// there yet" idiom. Unlike the report package's aggregated confidence
// intervals, this keeps every individual trial's elapsed time, for anyone
// who wants to recompute statistics with a different method later.
// ─────────────────────────────────────────────────────────────────────────────

package archive

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createTrialsTable = `
CREATE TABLE IF NOT EXISTS trials (
	barrier_class TEXT NOT NULL,
	n             INTEGER NOT NULL,
	workload      INTEGER NOT NULL,
	trial         INTEGER NOT NULL,
	elapsed_ns    REAL NOT NULL
)`

// Record is one trial's raw measurement.
type Record struct {
	BarrierClass string
	N            int
	Workload     int
	Trial        int
	ElapsedNs    float64
}

// Archive is an open handle to a trials database.
type Archive struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite database at path and ensures
// the trials table exists.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}

	if _, err := db.Exec(createTrialsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: create trials table: %w", err)
	}

	return &Archive{db: db}, nil
}

// Append inserts one trial's raw sample.
func (a *Archive) Append(rec Record) error {
	_, err := a.db.Exec(
		`INSERT INTO trials (barrier_class, n, workload, trial, elapsed_ns) VALUES (?, ?, ?, ?, ?)`,
		rec.BarrierClass, rec.N, rec.Workload, rec.Trial, rec.ElapsedNs,
	)
	if err != nil {
		return fmt.Errorf("archive: insert trial: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (a *Archive) Close() error {
	return a.db.Close()
}
