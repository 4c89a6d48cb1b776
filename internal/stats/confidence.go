// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: confidence.go — 99.9% confidence-interval accumulator
//
// Purpose:
//   - Collects up to 30 trial-latency samples and reduces them to a
//     (lower, mean, upper) triple at 99.9% confidence via the Student-t
//     distribution, exactly as the original meanconf.cpp / meanconf.hpp
//     pair does.
//
// Notes:
//   - Mean and the unbiased (n-1) sample variance are delegated to
//     github.com/montanaflynn/stats (grounded on sigmaos/benchmarks/
//     results.go's identical use of the library for latency statistics);
//     the t-critical-value table itself has no library equivalent and
//     stays a local constant array, straight out of meanconf.cpp.
// ─────────────────────────────────────────────────────────────────────────────

package stats

import (
	"fmt"
	"math"

	libstats "github.com/montanaflynn/stats"
)

// tCriticalValue999 holds t_{0.999, v} for v = degrees of freedom = n-1,
// v in [1,30], copied verbatim from the reference implementation's
// meanconf.cpp table.
var tCriticalValue999 = [30]float64{
	636.6, 31.60, 12.92, 8.610, 6.869, 5.959, 5.408, 5.041,
	4.781, 4.587, 4.437, 4.318, 4.221, 4.140, 4.073, 4.015, 3.965, 3.922, 3.883, 3.850, 3.819,
	3.792, 3.768, 3.745, 3.725, 3.707, 3.690, 3.674, 3.659, 3.646,
}

// maxSamples is the largest sample count the t-table in this package
// supports (degrees of freedom up to 30), matching the driver's 30-trial
// default.
const maxSamples = 30

// Interval is an (lower, mean, upper) confidence-interval triple, the unit
// the driver emits into one (N, workload) cell of the report.
type Interval struct {
	Lower float64
	Mean  float64
	Upper float64
}

// Accumulator collects samples for one (N, workload) cell.
type Accumulator struct {
	samples []float64
}

// NewAccumulator returns an empty accumulator with capacity hint n.
func NewAccumulator(n int) *Accumulator {
	return &Accumulator{samples: make([]float64, 0, n)}
}

// Add records one trial's elapsed nanoseconds.
func (a *Accumulator) Add(elapsedNs float64) {
	a.samples = append(a.samples, elapsedNs)
}

// Len reports how many samples have been recorded so far.
func (a *Accumulator) Len() int { return len(a.samples) }

// Interval computes the 99.9% confidence interval over the recorded
// samples. Matches spec.md §4.6: for n=1 the variance is undefined and the
// result is unspecified — callers must not request it, so this returns an
// error instead of silently returning a degenerate triple.
func (a *Accumulator) Interval() (Interval, error) {
	n := len(a.samples)
	if n < 2 {
		return Interval{}, fmt.Errorf("stats: confidence interval needs at least 2 samples, got %d", n)
	}
	if n > maxSamples {
		return Interval{}, fmt.Errorf("stats: t-table only covers up to %d samples, got %d", maxSamples, n)
	}

	data := libstats.LoadRawData(a.samples)

	mean, err := libstats.Mean(data)
	if err != nil {
		return Interval{}, fmt.Errorf("stats: mean: %w", err)
	}

	sd, err := libstats.StandardDeviationSample(data)
	if err != nil {
		return Interval{}, fmt.Errorf("stats: sample standard deviation: %w", err)
	}

	v := n - 1 // degrees of freedom
	tcrit := tCriticalValue999[v-1]

	h := tcrit * (sd / math.Sqrt(float64(n)))

	return Interval{Lower: mean - h, Mean: mean, Upper: mean + h}, nil
}
