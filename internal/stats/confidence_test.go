package stats

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestIntervalKnownSample(t *testing.T) {
	acc := NewAccumulator(10)
	for _, v := range []float64{100, 102, 98, 101, 99, 100, 103, 97, 100, 100} {
		acc.Add(v)
	}

	iv, err := acc.Interval()
	if err != nil {
		t.Fatalf("Interval() error: %v", err)
	}

	const wantMean = 100.0
	if !approxEqual(iv.Mean, wantMean, 1e-9) {
		t.Fatalf("mean = %v, want %v", iv.Mean, wantMean)
	}

	// Sum of squared deviations from the mean is 28 across these 10
	// samples, so the unbiased (n-1) sample variance is 28/9; h follows
	// from the tabulated t_{0.999,9} = 4.781.
	wantH := 4.781 * math.Sqrt((28.0/9.0)/10.0)
	if !approxEqual(iv.Upper-iv.Mean, wantH, 1e-3) {
		t.Fatalf("upper margin = %v, want ~%v", iv.Upper-iv.Mean, wantH)
	}
	if !approxEqual(iv.Mean-iv.Lower, wantH, 1e-3) {
		t.Fatalf("lower margin = %v, want ~%v", iv.Mean-iv.Lower, wantH)
	}
}

func TestIntervalRejectsSingleSample(t *testing.T) {
	acc := NewAccumulator(1)
	acc.Add(42)
	if _, err := acc.Interval(); err == nil {
		t.Fatal("expected an error for n=1, variance is undefined")
	}
}

func TestIntervalRejectsOverflow(t *testing.T) {
	acc := NewAccumulator(31)
	for i := 0; i < 31; i++ {
		acc.Add(float64(i))
	}
	if _, err := acc.Interval(); err == nil {
		t.Fatal("expected an error for n=31, beyond the t-table's range")
	}
}
