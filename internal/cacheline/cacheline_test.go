package cacheline

import "testing"

func TestPad64Size(t *testing.T) {
	var p Pad64
	if len(p) != Size {
		t.Fatalf("Pad64 has length %d, want %d", len(p), Size)
	}
}
