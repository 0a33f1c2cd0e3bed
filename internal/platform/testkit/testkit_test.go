package testkit

import "testing"

var seam = "real"

func TestSwap(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &seam, "fake")
		if seam != "fake" {
			t.Fatalf("seam = %q", seam)
		}
	})
	if seam != "real" {
		t.Fatalf("seam not restored: %q", seam)
	}
}

func TestMustHelpers(t *testing.T) {
	MustPanic(t, func() { panic("x") })
	MustContain(t, "invalid yaml in a.yaml", "a.yaml")
}
