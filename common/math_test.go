package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"inverted_bounds_pin_to_lo", 7, 0, -40, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v,%v,%v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(1000, 0, 999); got != 999 {
		t.Fatalf("expected 999, got %d", got)
	}
	if got := ClampInt(-1, 0, 999); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestFinite(t *testing.T) {
	if Finite(math.NaN()) || Finite(math.Inf(1)) || Finite(math.Inf(-1)) {
		t.Fatalf("non-finite values reported as finite")
	}
	if !Finite(0.125) {
		t.Fatalf("0.125 should be finite")
	}
}
