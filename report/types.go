// Package report turns a completed sweep into the two sibling artifacts a
// run produces: a human-oriented TSV table and an optional machine-oriented
// JSON document. Only the JSON document carries the run fingerprint.
package report

// Cell is one sweep point's confidence-interval triple.
type Cell struct {
	Lower float64
	Mean  float64
	Upper float64
}

// Config names the inputs that determine a run's outcome bit-for-bit. Two
// runs with identical Config produce identical Fingerprint values.
type Config struct {
	BarrierClass string
	Locality     string
	MaxN         int
	Workloads    []int
	Trials       int
	Seed         int64
}

// AdvertisedWorkloads is the full workload sweep the original report
// header names. Only a subset of these is actually exercised by a given
// run (see Config.Workloads) — the header still lists all seven, matching
// the source format's own header/data mismatch.
var AdvertisedWorkloads = []int{1, 10, 100, 1000, 10000, 100000, 1000000}

// Summary is everything one completed sweep produces: the run's
// configuration, its content fingerprint, and the (N, workload) grid of
// confidence intervals. Grid[n-1][i] is the cell for thread count n and
// Config.Workloads[i].
type Summary struct {
	Fingerprint string
	Config      Config
	Grid        [][]Cell
}
