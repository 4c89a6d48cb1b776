package report

import "testing"

func TestFingerprintDeterministic(t *testing.T) {
	cfg := Config{
		BarrierClass: "centralized",
		Locality:     "good",
		MaxN:         8,
		Workloads:    []int{1, 10, 100},
		Trials:       30,
		Seed:         1337,
	}

	a := Fingerprint(cfg)
	b := Fingerprint(cfg)
	if a != b {
		t.Fatalf("identical configs produced different fingerprints: %s != %s", a, b)
	}
}

func TestFingerprintDiffersOnWorkloadChange(t *testing.T) {
	base := Config{BarrierClass: "centralized", Locality: "good", MaxN: 8, Workloads: []int{1, 10, 100}, Trials: 30, Seed: 1337}
	changed := base
	changed.Workloads = []int{1, 10, 1000}

	if Fingerprint(base) == Fingerprint(changed) {
		t.Fatal("changing the workload list must change the fingerprint")
	}
}
